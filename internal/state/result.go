package state

import (
	"sync"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

// Status describes what the display should show: nothing, a QR image, or an
// error message. Exactly one is active at any time.
type Status int

const (
	StatusNone Status = iota
	StatusImage
	StatusError
)

// String returns the status name for logs and tests.
func (s Status) String() string {
	switch s {
	case StatusImage:
		return "image"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// Result is an immutable view of the most recent generation outcome.
// Image is non-nil iff Status is StatusImage; ErrorMessage is non-empty iff
// Status is StatusError. Both are zero when Status is StatusNone.
type Result struct {
	Status       Status
	Image        *encode.Image
	ErrorMessage string
}

// ResultStore coordinates result updates between the encode worker and the
// display. Single writer (the coordinator's completion path), any number of
// readers. The zero value is ready to use and reports StatusNone.
type ResultStore struct {
	mu     sync.RWMutex
	result Result
	subs   []func(Result)
}

// Subscribe registers fn to run after every complete update. fn receives the
// fully-written result; it is never invoked mid-update. Subscriptions must
// be registered before the first update.
func (s *ResultStore) Subscribe(fn func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetImage records a successful generation.
func (s *ResultStore) SetImage(img *encode.Image) {
	s.publish(Result{Status: StatusImage, Image: img})
}

// SetError records a failed generation with the encoder's message.
func (s *ResultStore) SetError(message string) {
	s.publish(Result{Status: StatusError, ErrorMessage: message})
}

// Clear resets the store to StatusNone, dropping any prior image or error.
func (s *ResultStore) Clear() {
	s.publish(Result{Status: StatusNone})
}

// Snapshot returns the current result.
func (s *ResultStore) Snapshot() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// publish replaces the stored result wholesale, then notifies subscribers
// outside the lock. Writes are serialized by the single-writer discipline,
// so subscribers observe updates in order.
func (s *ResultStore) publish(r Result) {
	s.mu.Lock()
	s.result = r
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(r)
	}
}
