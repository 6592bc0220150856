// Package worker runs QR encodes off the UI loop.
//
// # Overview
//
// One goroutine, one request channel, one completion callback. The UI loop
// dispatches generation requests and keeps rendering; the worker picks them
// up, encodes, and reports each outcome through the callback.
//
// # Coalescing
//
// Typing produces edits faster than encoding large payloads can keep up
// with. Before each encode the worker drains whatever has queued behind the
// request in hand and keeps only the newest one. Intermediate requests are
// dropped without encoding; their results would be discarded as stale by the
// coordinator anyway, so skipping them only saves work, it never changes
// what the display ends up showing.
//
// # Shutdown
//
// Stop closes the request channel and waits for the goroutine to finish the
// encode in progress and exit. Dispatch must not be called after Stop; in
// the application both happen on the UI loop, which enforces the ordering.
package worker
