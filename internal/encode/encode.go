package encode

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ECLevel selects how much error-correction redundancy the QR code carries.
// Higher levels tolerate more damage at the cost of lower data capacity.
type ECLevel int

const (
	LevelDefault ECLevel = iota
	LevelL
	LevelM
	LevelQ
	LevelH
)

// Levels lists every selectable level in display order.
var Levels = []ECLevel{LevelDefault, LevelL, LevelM, LevelQ, LevelH}

// String returns the short display label for the level.
func (l ECLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "Default"
	}
}

// Describe returns the label plus the damage tolerance for status display.
func (l ECLevel) Describe() string {
	switch l {
	case LevelL:
		return "L (7%)"
	case LevelM:
		return "M (15%)"
	case LevelQ:
		return "Q (25%)"
	case LevelH:
		return "H (30%)"
	default:
		return "Default (auto)"
	}
}

// ParseLevel maps a config or prefs value onto an ECLevel. Empty and
// unrecognized values fall back to LevelDefault.
func ParseLevel(value string) ECLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "l", "low":
		return LevelL
	case "m", "medium":
		return LevelM
	case "q", "quartile":
		return LevelQ
	case "h", "high":
		return LevelH
	default:
		return LevelDefault
	}
}

// Image is a rendered QR matrix. Modules is square and includes the quiet
// zone; true means a dark module.
type Image struct {
	Modules [][]bool
}

// Size returns the matrix width in modules.
func (img *Image) Size() int {
	return len(img.Modules)
}

// Request describes one generation handed to the encode worker. Seq orders
// overlapping generations so stale completions can be discarded.
type Request struct {
	Text  string
	Level ECLevel
	Seq   uint64
}

// Encoder converts text plus an EC level into a QR image or a failure
// reason. Failures are normal return values carrying a human-readable
// message, such as the payload exceeding the capacity of the level.
type Encoder interface {
	Encode(text string, level ECLevel) (*Image, error)
}

// QREncoder implements Encoder on top of go-qrcode.
type QREncoder struct{}

var _ Encoder = QREncoder{}

// Encode builds the QR matrix for text at level. text must be non-empty.
func (QREncoder) Encode(text string, level ECLevel) (*Image, error) {
	code, err := qrcode.New(text, recoveryLevel(level))
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &Image{Modules: code.Bitmap()}, nil
}

// EncodePNG renders text at level into PNG bytes, size pixels on a side.
func (QREncoder) EncodePNG(text string, level ECLevel, size int) ([]byte, error) {
	png, err := qrcode.Encode(text, recoveryLevel(level), size)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return png, nil
}

// recoveryLevel maps ECLevel onto go-qrcode's enum. LevelDefault delegates
// to Medium, the library's conventional choice.
func recoveryLevel(l ECLevel) qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
