package worker

import (
	"github.com/moonlitrapids/qr-app/internal/encode"
)

const queueDepth = 16

// CompleteFunc receives the outcome of one request. Exactly one of img and
// err is set, following the encoder contract. It runs on the worker
// goroutine.
type CompleteFunc func(seq uint64, img *encode.Image, err error)

// Worker encodes requests on a background goroutine so the UI loop never
// blocks on a slow encode. Requests queue on a channel; before each encode
// the worker drains the queue and keeps only the newest request, so a burst
// of edits costs a single encode.
type Worker struct {
	requests chan encode.Request
	done     chan struct{}
}

// Start launches the worker goroutine. Outcomes are delivered through
// complete.
func Start(enc encode.Encoder, complete CompleteFunc) *Worker {
	w := &Worker{
		requests: make(chan encode.Request, queueDepth),
		done:     make(chan struct{}),
	}
	go w.run(enc, complete)
	return w
}

// Dispatch queues req for encoding. Must not be called after Stop.
func (w *Worker) Dispatch(req encode.Request) {
	w.requests <- req
}

// Stop lets the queue drain, ends the goroutine, and waits for it to exit.
func (w *Worker) Stop() {
	close(w.requests)
	<-w.done
}

func (w *Worker) run(enc encode.Encoder, complete CompleteFunc) {
	defer close(w.done)

	for req := range w.requests {
		// Keep only the newest queued request; older ones are already
		// superseded and their completions would be discarded anyway.
	latest:
		for {
			select {
			case next, ok := <-w.requests:
				if !ok {
					break latest
				}
				req = next
			default:
				break latest
			}
		}

		img, err := enc.Encode(req.Text, req.Level)
		complete(req.Seq, img, err)
	}
}
