package cpu

import (
	"context"
	"fmt"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// workerHandle is the coordinator's view of a running worker.
type workerHandle struct {
	id     int
	cancel context.CancelFunc
}

// worker generates candidates in fixed-size batches. It owns its generator
// and shares nothing with other workers; everything it learns goes out as
// events.
type worker struct {
	id        int
	chain     generator.Chain
	gen       generator.AddressGenerator
	matcher   *generator.Matcher
	batchSize int
	events    chan<- event
}

// run loops until the context is cancelled, a match is found or the
// generator fails. Cancellation is checked between batches only.
func (w *worker) run(ctx context.Context) {
	var local uint64
	for {
		if ctx.Err() != nil {
			return
		}

		n, cand, found, err := w.batch()
		local += n

		switch {
		case err != nil:
			w.send(ctx, event{kind: failedEvent, worker: w.id, attempts: n, err: err})
			return
		case found:
			w.send(ctx, event{kind: foundEvent, worker: w.id, attempts: n, local: local, candidate: cand})
			return
		default:
			if !w.send(ctx, event{kind: progressEvent, worker: w.id, attempts: n}) {
				return
			}
		}
	}
}

// batch runs up to batchSize attempts and returns how many were made.
// A failed attempt is not counted.
func (w *worker) batch() (n uint64, cand generator.Candidate, found bool, err error) {
	for i := 0; i < w.batchSize; i++ {
		cand, err = w.generate()
		if err != nil {
			return n, generator.Candidate{}, false, &generator.GenerationError{Chain: w.chain, Worker: w.id, Err: err}
		}
		n++
		if w.matcher.Matches(cand.Address) {
			return n, cand, true, nil
		}
	}
	return n, generator.Candidate{}, false, nil
}

// generate calls the generator and turns a panic into an error.
func (w *worker) generate() (cand generator.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	return w.gen.Generate()
}

// send delivers ev unless the worker has been cancelled first.
func (w *worker) send(ctx context.Context, ev event) bool {
	select {
	case w.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
