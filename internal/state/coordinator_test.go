package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

// fakeDispatch records requests and lets the test decide when and how each
// one completes, so overlap and staleness can be simulated.
type fakeDispatch struct {
	calls []encode.Request
}

func (f *fakeDispatch) dispatch(req encode.Request) {
	f.calls = append(f.calls, req)
}

func newTestCoordinator(level encode.ECLevel) (*Coordinator, *ResultStore, *fakeDispatch) {
	fake := &fakeDispatch{}
	results := &ResultStore{}
	c := NewCoordinator(level, results, fake.dispatch)
	return c, results, fake
}

func TestCoordinator_SuccessShowsImage(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("HELLO")
	if len(fake.calls) != 1 {
		t.Fatalf("dispatched %d requests, want 1", len(fake.calls))
	}
	req := fake.calls[0]
	if req.Text != "HELLO" || req.Level != encode.LevelDefault {
		t.Fatalf("request = %#v, want HELLO at Default", req)
	}

	img := testImage()
	c.Complete(req.Seq, img, nil)

	r := results.Snapshot()
	if r.Status != StatusImage || r.Image != img || r.ErrorMessage != "" {
		t.Fatalf("result = %#v, want image", r)
	}
}

func TestCoordinator_FailureShowsError(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelH)

	c.Input().SetText("way too much payload")
	c.Complete(fake.calls[0].Seq, nil, errors.New("data too long for ec level H"))

	r := results.Snapshot()
	if r.Status != StatusError || r.Image != nil {
		t.Fatalf("result = %#v, want error", r)
	}
	if r.ErrorMessage != "data too long for ec level H" {
		t.Fatalf("ErrorMessage = %q, want the encoder message", r.ErrorMessage)
	}
}

func TestCoordinator_EmptyTextClearsWithoutEncoding(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("HELLO")
	c.Complete(fake.calls[0].Seq, testImage(), nil)

	c.Input().SetText("")
	if len(fake.calls) != 1 {
		t.Fatalf("dispatched %d requests, want 1 (clearing must not encode)", len(fake.calls))
	}
	r := results.Snapshot()
	if r.Status != StatusNone || r.Image != nil || r.ErrorMessage != "" {
		t.Fatalf("result after clear = %#v, want none", r)
	}
}

func TestCoordinator_RoundTripIssuesFreshRequests(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("HELLO")
	c.Input().SetText("")
	if r := results.Snapshot(); r.Status != StatusNone {
		t.Fatalf("status between generations = %v, want %v", r.Status, StatusNone)
	}
	c.Input().SetText("HELLO")

	if len(fake.calls) != 2 {
		t.Fatalf("dispatched %d requests, want 2 (no caching of prior results)", len(fake.calls))
	}
	if fake.calls[0].Text != fake.calls[1].Text || fake.calls[0].Level != fake.calls[1].Level {
		t.Fatalf("requests differ: %#v vs %#v", fake.calls[0], fake.calls[1])
	}
	if fake.calls[1].Seq <= fake.calls[0].Seq {
		t.Fatalf("seq not monotonic: %d then %d", fake.calls[0].Seq, fake.calls[1].Seq)
	}
}

func TestCoordinator_LevelChangeRegeneratesUnchangedText(t *testing.T) {
	c, _, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("HELLO")
	c.Input().SetLevel(encode.LevelL)

	if len(fake.calls) != 2 {
		t.Fatalf("dispatched %d requests, want 2", len(fake.calls))
	}
	second := fake.calls[1]
	if second.Text != "HELLO" || second.Level != encode.LevelL {
		t.Fatalf("second request = %#v, want HELLO at L", second)
	}
}

func TestCoordinator_StaleCompletionDiscarded(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("first")
	c.Input().SetText("second")

	first, second := fake.calls[0], fake.calls[1]
	img2 := testImage()

	// Completions arrive out of order: the older one must lose even though
	// it finishes last.
	c.Complete(second.Seq, img2, nil)
	c.Complete(first.Seq, testImage(), nil)

	r := results.Snapshot()
	if r.Image != img2 {
		t.Fatalf("stale completion overwrote the newer result: %#v", r)
	}
}

func TestCoordinator_ClearWhileInFlightStaysNone(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("HELLO")
	req := fake.calls[0]
	c.Input().SetText("")

	// The encode for the deleted text finishes afterwards.
	c.Complete(req.Seq, testImage(), nil)

	r := results.Snapshot()
	if r.Status != StatusNone || r.Image != nil {
		t.Fatalf("result = %#v, want none after clear", r)
	}
}

func TestCoordinator_ConcurrentClearNeverResurrectsImage(t *testing.T) {
	// A completion racing an input clear must end at StatusNone in every
	// interleaving: either the image lands first and the clear replaces it,
	// or the clear advances the sequence first and the completion is
	// discarded. Nothing may land after the clear.
	for i := 0; i < 1000; i++ {
		c, results, fake := newTestCoordinator(encode.LevelDefault)

		c.Input().SetText("HELLO")
		req := fake.calls[0]

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Complete(req.Seq, testImage(), nil)
		}()
		c.Input().SetText("")
		wg.Wait()

		r := results.Snapshot()
		if r.Status != StatusNone || r.Image != nil {
			t.Fatalf("iteration %d: result = %#v, want none after clear", i, r)
		}
	}
}

func TestCoordinator_ErrorThenEditRecovers(t *testing.T) {
	c, results, fake := newTestCoordinator(encode.LevelDefault)

	c.Input().SetText("too long")
	c.Complete(fake.calls[0].Seq, nil, errors.New("data too long"))

	c.Input().SetText("short")
	c.Complete(fake.calls[1].Seq, testImage(), nil)

	r := results.Snapshot()
	if r.Status != StatusImage || r.ErrorMessage != "" {
		t.Fatalf("result = %#v, want image after recovery edit", r)
	}
}
