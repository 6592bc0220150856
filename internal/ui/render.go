package ui

import (
	"strings"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

// renderBlocks converts the module matrix into half-block art, packing two
// module rows into each terminal line. With invert false the light modules
// are drawn as filled blocks, which scans correctly on dark terminals where
// the block glyphs are the bright cells; invert flips that for light
// terminals.
func renderBlocks(img *encode.Image, invert bool) string {
	size := img.Size()
	var b strings.Builder

	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			upper := filled(img, x, y, invert)
			lower := filled(img, x, y+1, invert)
			switch {
			case upper && lower:
				b.WriteRune('█')
			case upper:
				b.WriteRune('▀')
			case lower:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < size {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// filled reports whether the cell at (x, y) is drawn as part of a block.
// Rows past the matrix edge count as light modules, matching the quiet zone.
func filled(img *encode.Image, x, y int, invert bool) bool {
	dark := y < img.Size() && img.Modules[y][x]
	return dark == invert
}
