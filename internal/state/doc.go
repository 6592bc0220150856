// Package state is the reactive core of the application: it decides when to
// (re)invoke the QR encoder and holds the tri-state result the display reads.
//
// # Overview
//
// Three pieces compose into one reactive loop:
//
//   - Input: the two user-controlled values (text, EC level), mutated only
//     by confirmed user edits on the UI loop.
//   - Coordinator: observes input changes, applies the trigger policy, and
//     dispatches generation requests to the encode worker.
//   - ResultStore: the outcome of the most recent generation; the sole
//     source the display renders from.
//
// # Data Flow
//
//	UI edit ──> Input.SetText / SetLevel
//	                │ (value-equal edits stop here)
//	                ▼
//	        Coordinator.OnInputChanged
//	                │ empty text ──> ResultStore.Clear
//	                ▼
//	        dispatch(Request{text, level, seq})
//	                │ (encode worker, background goroutine)
//	                ▼
//	        Coordinator.Complete(seq, image, err)
//	                │ (stale seq discarded)
//	                ▼
//	        ResultStore.SetImage / SetError ──> subscribers ──> display
//
// # Trigger Policy
//
// Every stored input change runs the policy exactly once:
//
//  1. Empty text: result becomes StatusNone, the encoder is not called, and
//     any prior image or error is dropped.
//  2. Non-empty text: a request for the current (text, level) pair is
//     dispatched. Success yields StatusImage with the image; failure yields
//     StatusError with the encoder's message.
//
// There is no retry, no debounce, no caching of prior results, and no
// cancellation of an in-flight encode. A failed generation is re-attempted
// only on the next input change.
//
// # Tri-State Invariant
//
// Exactly one of {none, image, error} is active at any time. Every write to
// the store replaces the whole Result, so an image can never survive a
// transition to error or none. StatusNone holds iff the input text is empty.
//
// # Staleness
//
// Requests carry a monotonic sequence number. The coordinator remembers the
// latest number it issued and Complete discards any outcome tagged with an
// older one. Clearing the text also advances the sequence, so a slow encode
// for text the user has since deleted or replaced can never overwrite the
// current result. Overlapping generations are therefore latest-wins.
//
// The staleness check and the resulting store write share one critical
// section, as do the sequence advance and the clear. Without that, a
// completion could pass its check, lose the CPU to an input change that
// clears the store, and then land its image against empty input.
//
// # Concurrency Model
//
// Input is confined to the UI loop and has no lock. ResultStore takes a
// RWMutex: the worker goroutine writes through the coordinator, the display
// reads snapshots. Subscriber callbacks run on the writer's goroutine after
// the update is fully stored, never mid-update; subscribers that need the UI
// loop forward the notification there themselves. Store writes issued by the
// coordinator run under its lock, so subscribers must not call back into the
// coordinator.
//
// # Testing
//
// Zero values work: a ResultStore is usable immediately and reports
// StatusNone. The dispatch function injected into NewCoordinator is the
// substitution point for tests: a fake can record requests, complete them
// synchronously, or hold them to simulate overlap.
package state
