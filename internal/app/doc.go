// Package app is the composition root: it wires configuration, the encoder,
// the reactive state core, the encode worker, and the UI into one process.
//
// # Startup Sequence
//
//  1. Load config from ~/.config/qrapp/config.toml (defaults when missing)
//  2. Load user prefs (theme, remembered EC level; always succeeds)
//  3. Start the encode worker goroutine with the go-qrcode encoder
//  4. Build the coordinator around a fresh empty input
//  5. Run the TUI, which blocks until quit or context cancellation
//
// # Wiring
//
//	Input ──(OnInputChanged)──> Coordinator ──(Dispatch)──> Worker
//	                                 ▲                        │
//	                                 └──────(Complete)────────┘
//	Coordinator ──> ResultStore ──(Subscribe → p.Send)──> UI loop
//
// The coordinator and worker reference each other, so the worker's
// completion callback closes over the coordinator variable assigned right
// after; no request can be dispatched before the UI starts, which is after
// both exist.
//
// # Error Policy
//
// Fatal before the UI starts: an unparseable config file. Everything after
// that is recoverable and surfaced inside the UI: encode failures become the
// error display state, export and clipboard failures become transient
// notices, prefs persistence failures are ignored.
package app
