// Package ui renders the terminal interface with Bubble Tea.
//
// # Overview
//
// A single Model drives the whole screen: a text input (bubbles/textinput),
// a header showing the chosen EC level, the display area, and a command
// footer. The display area is a direct rendering of the tri-state result:
// a hint when there is nothing, half-block QR art on success, the encoder's
// message on failure.
//
// # Event Flow
//
// Keystrokes mutate the reactive core, never the result directly: edits go
// through Input.SetText / SetLevel, which makes the coordinator decide
// whether to regenerate. Outcomes come back as ResultMsg values posted onto
// the Bubble Tea loop by the result store subscription in Run, so the model
// only ever reads results that arrived as messages on its own loop.
//
// # Keys
//
//	typing    edit the encoded text (regenerates live)
//	up/down   cycle the error-correction level
//	ctrl+s    export the current code as PNG
//	ctrl+y    copy the block art to the clipboard
//	ctrl+r    invert dark/light rendering (for light terminals)
//	ctrl+t    cycle the color theme (persisted to prefs)
//	esc       clear the input
//	ctrl+c    quit
package ui
