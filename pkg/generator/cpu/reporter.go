package cpu

import (
	"context"
	"sync"
	"time"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// DefaultProgressInterval is how often progress subscribers are sampled.
const DefaultProgressInterval = 100 * time.Millisecond

// Source is anything that exposes an aggregate attempt counter.
type Source interface {
	Progress() generator.Progress
}

// Compute derives throughput figures from a progress sample.
// Elapsed seconds are truncated; the rate stays 0 during the first second.
func Compute(p generator.Progress, now time.Time) generator.Stats {
	if p.StartTime.IsZero() {
		return generator.Stats{Attempts: p.TotalAttempts}
	}
	elapsed := now.Sub(p.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	secs := uint64(elapsed / time.Second)

	var rate uint64
	if secs > 0 {
		rate = p.TotalAttempts / secs
	}
	return generator.Stats{
		Attempts:       p.TotalAttempts,
		Elapsed:        elapsed,
		ElapsedSeconds: secs,
		HashRate:       rate,
	}
}

// Reporter samples a Source on a fixed interval and hands each sample to a
// callback. It only reads the source, so it can be started and stopped
// independently of the search it observes.
type Reporter struct {
	src      Source
	interval time.Duration
	now      func() time.Time
	fn       func(generator.Stats)

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewReporter creates a reporter. A non-positive interval means
// DefaultProgressInterval; a nil clock means time.Now.
func NewReporter(src Source, interval time.Duration, now func() time.Time, fn func(generator.Stats)) *Reporter {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Reporter{
		src:      src,
		interval: interval,
		now:      now,
		fn:       fn,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Sample computes the current statistics without notifying anyone.
func (r *Reporter) Sample() generator.Stats {
	return Compute(r.src.Progress(), r.now())
}

// Start launches the sampling goroutine. It ends on Stop or when ctx is done.
// Calling Start more than once has no effect.
func (r *Reporter) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		go r.loop(ctx)
	})
}

// Stop ends sampling and waits for the goroutine to exit. It is idempotent
// and safe to call on a reporter that was never started.
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	started := true
	r.startOnce.Do(func() { started = false; close(r.done) })
	if started {
		<-r.done
	}
}

func (r *Reporter) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.fn(r.Sample())
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
