// Package cpu implements the search engine on CPU goroutines.
//
// A Coordinator runs one search at a time. Workers generate candidates in
// batches and report to a single coordinator loop over a channel; the loop is
// the only writer of the attempt total and the only place a search outcome
// is decided.
package cpu

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Amr-9/vanityhunt/internal/logx"
	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// DefaultBatchSize is the number of attempts a worker makes between
// progress reports and stop checks.
const DefaultBatchSize = 100

// State is the lifecycle state of a Coordinator.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateFound
	StateStopped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a search.
func (s State) Terminal() bool {
	return s == StateFound || s == StateStopped || s == StateFailed
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithWorkers sets the number of workers. Zero or less means one per CPU.
func WithWorkers(n int) Option { return func(c *Coordinator) { c.workers = n } }

// WithBatchSize sets the attempts per batch. Values below 1 are ignored.
func WithBatchSize(n int) Option {
	return func(c *Coordinator) {
		if n >= 1 {
			c.batchSize = n
		}
	}
}

// WithProgressInterval sets how often progress subscribers are called.
func WithProgressInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logx.Logger) Option { return func(c *Coordinator) { c.log = l } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(c *Coordinator) { c.now = now } }

// Coordinator implements generator.Engine using goroutines.
type Coordinator struct {
	registry  *generator.Registry
	workers   int
	batchSize int
	interval  time.Duration
	now       func() time.Time
	log       logx.Logger

	mu    sync.Mutex
	state State
	run   *search // search whose outcome is not delivered yet
	last  *search // most recent search, kept for Stats after it ends

	progressSubs subscribers[generator.Stats]
	foundSubs    subscribers[generator.SearchResult]
}

var _ generator.Engine = (*Coordinator)(nil)

// NewCoordinator creates an idle coordinator resolving chains through reg.
func NewCoordinator(reg *generator.Registry, opts ...Option) *Coordinator {
	c := &Coordinator{
		registry:  reg,
		batchSize: DefaultBatchSize,
		interval:  DefaultProgressInterval,
		now:       time.Now,
		log:       logx.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the implementation name.
func (c *Coordinator) Name() string {
	return "CPU"
}

// Workers returns the number of workers a search will request.
func (c *Coordinator) Workers() int {
	if c.workers > 0 {
		return c.workers
	}
	return max(runtime.NumCPU(), 1)
}

// search is the state of one run. Everything except total, decided and the
// fields guarded by Coordinator.mu is fixed before the workers start.
type search struct {
	id      string
	cfg     generator.SearchConfig
	start   time.Time
	parent  context.Context
	cancel  context.CancelFunc
	handles []workerHandle
	events  chan event
	out     chan generator.Outcome
	log     logx.Logger

	reporter   *Reporter
	stopParent func() bool

	total   atomic.Uint64
	decided atomic.Bool

	// guarded by Coordinator.mu
	outcome generator.Outcome
	ended   time.Time
}

// Progress implements Source.
func (s *search) Progress() generator.Progress {
	return generator.Progress{TotalAttempts: s.total.Load(), StartTime: s.start}
}

func (s *search) cancelWorkers() {
	for _, h := range s.handles {
		h.cancel()
	}
	s.cancel()
}

// Start validates cfg, spawns the workers and returns a channel that
// receives exactly one Outcome once every worker has exited.
// Starting from a terminal state resets the coordinator first.
func (c *Coordinator) Start(ctx context.Context, cfg generator.SearchConfig) (<-chan generator.Outcome, error) {
	cfg, backend, err := c.registry.Prepare(cfg)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.run != nil {
		return nil, generator.ErrBusy
	}
	c.state, c.last = StateIdle, nil

	type spawned struct {
		id  int
		gen generator.AddressGenerator
	}
	requested := c.Workers()
	gens := make([]spawned, 0, requested)
	var spawnErrs []error
	for i := 0; i < requested; i++ {
		gen, err := backend.NewGenerator(cfg)
		if err != nil {
			spawnErrs = append(spawnErrs, fmt.Errorf("worker %d: %w", i, err))
			continue
		}
		gens = append(gens, spawned{id: i, gen: gen})
	}

	id := uuid.NewString()
	log := c.log.With("search", id, "chain", cfg.Chain.String())

	if len(gens) == 0 {
		c.state = StateFailed
		err := fmt.Errorf("%w: no %s worker started: %w", generator.ErrWorkerSpawn, cfg.Chain, errors.Join(spawnErrs...))
		log.Err(err, "requested", requested)
		return nil, err
	}
	if len(spawnErrs) > 0 {
		log.Warn("running with fewer workers", "requested", requested, "started", len(gens), "error", errors.Join(spawnErrs...))
	}

	searchCtx, cancel := context.WithCancel(ctx)
	s := &search{
		id:     id,
		cfg:    cfg,
		start:  c.now(),
		parent: ctx,
		cancel: cancel,
		events: make(chan event, len(gens)),
		out:    make(chan generator.Outcome, 1),
		log:    log,
	}

	matcher := generator.NewMatcher(cfg, backend)
	var wg sync.WaitGroup
	for _, sp := range gens {
		workerCtx, workerCancel := context.WithCancel(searchCtx)
		s.handles = append(s.handles, workerHandle{id: sp.id, cancel: workerCancel})

		w := &worker{
			id:        sp.id,
			chain:     cfg.Chain,
			gen:       sp.gen,
			matcher:   matcher,
			batchSize: c.batchSize,
			events:    s.events,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(workerCtx)
		}()
	}
	go func() {
		wg.Wait()
		close(s.events)
	}()

	s.stopParent = context.AfterFunc(ctx, func() {
		if c.finish(s, StateStopped, nil, stoppedErr(ctx)) {
			s.log.Info("search cancelled", "cause", ctx.Err(), "attempts", s.total.Load())
		}
	})
	s.reporter = NewReporter(s, c.interval, c.now, c.progressSubs.publish)
	s.reporter.Start(searchCtx)

	c.run, c.last, c.state = s, s, StateRunning
	log.Info("search started",
		"pattern", cfg.Pattern,
		"position", cfg.Position.String(),
		"case_sensitive", cfg.CaseSensitive,
		"workers", len(gens),
		"batch", c.batchSize)

	go c.loop(s)
	return s.out, nil
}

// loop aggregates worker events until every worker has exited, then
// delivers the outcome.
func (c *Coordinator) loop(s *search) {
	for ev := range s.events {
		if s.decided.Load() {
			continue
		}

		switch ev.kind {
		case progressEvent:
			s.total.Add(ev.attempts)

		case foundEvent:
			total := s.total.Add(ev.attempts)
			res := &generator.SearchResult{
				SearchID:      s.id,
				Chain:         s.cfg.Chain,
				Candidate:     ev.candidate,
				TotalAttempts: total,
				Elapsed:       c.now().Sub(s.start),
				WorkerID:      ev.worker,
			}
			if c.finish(s, StateFound, res, nil) {
				s.log.Info("match found",
					"address", res.Candidate.Address,
					"worker", ev.worker,
					"worker_attempts", ev.local,
					"attempts", total,
					"elapsed", res.Elapsed.Round(time.Millisecond))
				c.foundSubs.publish(*res)
			}

		case failedEvent:
			s.total.Add(ev.attempts)
			if c.finish(s, StateFailed, nil, ev.err) {
				s.log.Err(ev.err, "worker", ev.worker, "attempts", s.total.Load())
			}
		}
	}

	// Every worker has exited. A parent cancellation can get here before
	// its AfterFunc runs.
	if !s.decided.Load() {
		c.finish(s, StateStopped, nil, stoppedErr(s.parent))
	}
	s.stopParent()
	s.reporter.Stop()

	c.mu.Lock()
	c.run = nil
	out := s.outcome
	c.mu.Unlock()

	s.log.Debug("search finished", "attempts", s.total.Load())
	s.out <- out
	close(s.out)
}

// finish records the first decision for s and cancels its workers.
// It reports whether this call made the decision.
func (c *Coordinator) finish(s *search, state State, res *generator.SearchResult, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !s.decided.CompareAndSwap(false, true) {
		return false
	}
	s.outcome = generator.Outcome{Result: res, Err: err}
	s.ended = c.now()
	c.state = state
	s.cancelWorkers()
	return true
}

func stoppedErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", generator.ErrStopped, err)
	}
	return generator.ErrStopped
}

// Stop cancels the running search. It is idempotent and does nothing when
// no search is running or the running one is already decided.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	s := c.run
	c.mu.Unlock()
	if s == nil {
		return
	}
	if c.finish(s, StateStopped, nil, generator.ErrStopped) {
		s.log.Info("search stopped", "attempts", s.total.Load())
	}
}

// Reset returns a finished coordinator to StateIdle and clears its
// statistics. It does nothing while a search is still running or tearing down.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.run != nil {
		return
	}
	c.state, c.last = StateIdle, nil
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Progress returns the aggregate counter of the current or last search.
func (c *Coordinator) Progress() generator.Progress {
	c.mu.Lock()
	s := c.last
	c.mu.Unlock()
	if s == nil {
		return generator.Progress{}
	}
	return s.Progress()
}

// Stats returns the current performance statistics. For a finished search
// the figures are frozen at the moment it was decided.
func (c *Coordinator) Stats() generator.Stats {
	c.mu.Lock()
	s := c.last
	var ended time.Time
	if s != nil {
		ended = s.ended
	}
	c.mu.Unlock()

	if s == nil {
		return generator.Stats{}
	}
	now := ended
	if now.IsZero() {
		now = c.now()
	}
	return Compute(s.Progress(), now)
}

// SubscribeProgress registers fn to receive a Stats sample every progress
// interval while a search runs.
func (c *Coordinator) SubscribeProgress(fn func(generator.Stats)) (unsubscribe func()) {
	return c.progressSubs.add(fn)
}

// SubscribeFound registers fn to receive every accepted match.
func (c *Coordinator) SubscribeFound(fn func(generator.SearchResult)) (unsubscribe func()) {
	return c.foundSubs.add(fn)
}
