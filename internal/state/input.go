package state

import "github.com/moonlitrapids/qr-app/internal/encode"

// Input holds the two user-controlled inputs: the raw text and the chosen
// error-correction level. It is owned by the UI event loop; only confirmed
// user edits mutate it, and all mutation happens on that single loop.
type Input struct {
	text     string
	level    encode.ECLevel
	onChange func()
}

// NewInput returns an Input starting with empty text at level. onChange runs
// after every stored change; nil means no downstream notification.
func NewInput(level encode.ECLevel, onChange func()) *Input {
	return &Input{level: level, onChange: onChange}
}

// SetText stores newText and triggers regeneration. Equal values are a
// no-op, so repeated edit notifications with unchanged content never reach
// the encoder.
func (in *Input) SetText(newText string) {
	if newText == in.text {
		return
	}
	in.text = newText
	in.notify()
}

// SetLevel stores the new error-correction level and triggers regeneration.
// Equal values are a no-op.
func (in *Input) SetLevel(level encode.ECLevel) {
	if level == in.level {
		return
	}
	in.level = level
	in.notify()
}

// Text returns the current text.
func (in *Input) Text() string {
	return in.text
}

// Level returns the current error-correction level.
func (in *Input) Level() encode.ECLevel {
	return in.level
}

func (in *Input) notify() {
	if in.onChange != nil {
		in.onChange()
	}
}
