package state

import (
	"sync"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

// Coordinator applies the trigger policy to input changes and routes encoder
// outcomes into the result store. It owns the Input it watches and the
// request sequence used to discard stale completions.
type Coordinator struct {
	input    *Input
	results  *ResultStore
	dispatch func(encode.Request)

	mu  sync.Mutex
	seq uint64
}

// NewCoordinator builds a coordinator around a fresh empty Input at level.
// dispatch hands a request to whatever executes encodes; the executor must
// deliver the outcome back through Complete.
func NewCoordinator(level encode.ECLevel, results *ResultStore, dispatch func(encode.Request)) *Coordinator {
	c := &Coordinator{results: results, dispatch: dispatch}
	c.input = NewInput(level, c.OnInputChanged)
	return c
}

// Input returns the input the coordinator observes. The UI mutates it
// through its setters; the coordinator never writes to it.
func (c *Coordinator) Input() *Input {
	return c.input
}

// OnInputChanged runs the trigger policy after the input has been mutated to
// its new value. Empty text clears the result without calling the encoder;
// anything else dispatches a generation for the current text and level.
func (c *Coordinator) OnInputChanged() {
	text, level := c.input.Text(), c.input.Level()

	// Advance the sequence even when clearing, so an in-flight encode for
	// abandoned text can never resurrect a result. The clear happens inside
	// the same critical section that guards completions, so a completion
	// that already passed its staleness check cannot land after it.
	c.mu.Lock()
	c.seq++
	seq := c.seq
	if text == "" {
		c.results.Clear()
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// Dispatch outside the lock: the request channel may block briefly, and
	// the worker needs the lock to complete.
	c.dispatch(encode.Request{Text: text, Level: level, Seq: seq})
}

// Complete records the outcome of the request tagged with seq. Outcomes
// superseded by a later input change are discarded: whichever generation is
// current wins, not whichever finishes last. img and err follow the encoder
// contract (exactly one set).
func (c *Coordinator) Complete(seq uint64, img *encode.Image, err error) {
	// The staleness check and the store write form one critical section: an
	// input change arriving between them would otherwise let a completion
	// that passed the check overwrite the newer clear or request.
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}

	if err != nil {
		c.results.SetError(err.Error())
		return
	}
	c.results.SetImage(img)
}
