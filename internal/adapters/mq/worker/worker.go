// Package worker applies queued match events. A pool routes every event of a
// match to the same worker so one match's events are applied in arrival order.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/pkg/logger"
	"github.com/okian/pelada/pkg/metrics"
)

const (
	laneBuffer          = 64
	poolShutdownTimeout = 30 * time.Second
)

// Event abstracts what workers read off the queue.
type Event = model.Event

// Recorder applies one event to its match.
type Recorder interface {
	Apply(ctx context.Context, e Event) error
}

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Event
}

// Worker processes events from a source until it is drained or stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or the source closes.
	Run(ctx context.Context)

	// Shutdown stops the worker without draining its source.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker applies events through a Recorder.
type InMemoryWorker struct {
	source   Queue
	recorder Recorder
	name     string

	processed atomic.Int64
	failed    atomic.Int64

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(source Queue, recorder Recorder, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		source:   source,
		recorder: recorder,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	events := w.source.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := w.processEvent(ctx, event); err != nil {
				w.logger.Warn(ctx, "event rejected",
					logger.String("event_id", event.EventID),
					logger.String("match_id", event.MatchID.String()),
					logger.Error(err),
				)
			}
		}
	}
}

func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Processed and Failed count applied and rejected events.
func (w *InMemoryWorker) Processed() int64 { return w.processed.Load() }
func (w *InMemoryWorker) Failed() int64    { return w.failed.Load() }

func (w *InMemoryWorker) processEvent(ctx context.Context, event Event) error { //nolint:gocritic // hugeParam: Event is passed by value for channel semantics
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	if err := w.recorder.Apply(ctx, event); err != nil {
		w.failed.Add(1)
		metrics.RecordWorkerError()
		return fmt.Errorf("apply event %s: %w", event.EventID, err)
	}
	w.processed.Add(1)
	return nil
}

// lane is one worker's private event stream.
type lane chan Event

func (l lane) Dequeue(context.Context) <-chan Event { return l }

// LaneFor maps a match to one of n lanes.
func LaneFor(matchID string, n int) int {
	return int(xxhash.Sum64String(matchID) % uint64(n))
}

// Pool fans queued events out to workers by match id.
type Pool struct {
	workers []*InMemoryWorker
	lanes   []lane
	queue   Queue

	dispatched chan struct{}

	logger logger.Logger
}

// NewPool creates a pool of workerCount workers. A count below one means
// one worker per CPU.
func NewPool(workerCount int, queue Queue, recorder Recorder, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers:    make([]*InMemoryWorker, workerCount),
		lanes:      make([]lane, workerCount),
		queue:      queue,
		dispatched: make(chan struct{}),
	}
	for i := 0; i < workerCount; i++ {
		p.lanes[i] = make(lane, laneBuffer)
		workerOpts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		p.workers[i] = NewInMemoryWorker(p.lanes[i], recorder, workerOpts...)
	}
	p.logger = p.workers[0].logger.Named("pool")

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Start runs the dispatcher and all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
	go p.dispatch(ctx)
}

// dispatch moves events from the shared queue to their lanes. Lanes are
// closed once the queue is drained so workers finish what they hold.
func (p *Pool) dispatch(ctx context.Context) {
	defer close(p.dispatched)
	defer func() {
		for _, l := range p.lanes {
			close(l)
		}
	}()

	for event := range p.queue.Dequeue(ctx) {
		l := p.lanes[LaneFor(event.MatchID.String(), len(p.lanes))]
		select {
		case l <- event:
		case <-ctx.Done():
			return
		}
	}
}

// Processed and Failed sum the worker counters.
func (p *Pool) Processed() int64 {
	var n int64
	for _, w := range p.workers {
		n += w.Processed()
	}
	return n
}

func (p *Pool) Failed() int64 {
	var n int64
	for _, w := range p.workers {
		n += w.Failed()
	}
	return n
}

// Shutdown closes the queue, lets workers drain what was accepted and waits
// for them up to ctx or 30 seconds.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	select {
	case <-p.dispatched:
	case <-shutdownCtx.Done():
		return fmt.Errorf("dispatcher shutdown timed out: %w", shutdownCtx.Err())
	}
	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
			return fmt.Errorf("worker %d shutdown timed out: %w", i, shutdownCtx.Err())
		}
	}
	return nil
}
