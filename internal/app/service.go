// Package service runs match use cases on top of the domain aggregate and
// the match repository, and owns the async ingestion pipeline.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	eventqueue "github.com/okian/pelada/internal/adapters/mq/queue"
	workerpool "github.com/okian/pelada/internal/adapters/mq/worker"
	"github.com/okian/pelada/internal/adapters/repository"
	"github.com/okian/pelada/internal/domain/dedupe"
	"github.com/okian/pelada/pkg/logger"
	"github.com/okian/pelada/pkg/metrics"
)

const stopTimeout = 30 * time.Second

// Service implements the match use cases consumed by the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	repo       repository.MatchRepository
	locks      *matchLocks
	deduper    dedupe.Deduper
	eventQueue eventqueue.Queue
	workerPool *workerpool.Pool

	// Configuration
	workerCount  int
	queueSize    int
	dedupeSize   int
	maxBatchSize int

	// State
	started bool

	logger logger.Logger
}

// New constructs a Service with default configuration. Synchronous use cases
// work right away; Submit requires Start.
func New(opts ...Option) *Service {
	s := &Service{
		locks:        newMatchLocks(),
		workerCount:  runtime.NumCPU(),
		queueSize:    10_000,
		dedupeSize:   100_000,
		maxBatchSize: 500,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		s.repo = repository.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// Start builds the queue and worker pool used by Submit.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting match service...")

	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.eventQueue = eventqueue.NewInMemoryQueue(
		eventqueue.WithCapacity(s.queueSize),
	)
	s.workerPool = workerpool.NewPool(s.workerCount, s.eventQueue, s,
		workerpool.WithLogger(s.logger.Named("worker")),
	)
	s.workerPool.Start(context.WithoutCancel(ctx))

	s.started = true
	s.logger.Info(ctx, "match service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop closes the queue and waits for the workers to apply what was already
// accepted.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.logger.Info(ctx, "stopping match service...")

	stopCtx, cancel := context.WithTimeout(ctx, stopTimeout)
	defer cancel()

	err := s.workerPool.Shutdown(stopCtx)
	if err != nil {
		s.logger.Error(ctx, "worker pool shutdown failed", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "match service stopped")
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"workerCount":  s.workerCount,
		"queueSize":    s.queueSize,
		"dedupeSize":   s.dedupeSize,
		"maxBatchSize": s.maxBatchSize,
		"activeLocks":  s.locks.size(),
	}

	if count, err := s.repo.Count(ctx); err == nil {
		stats["totalMatches"] = count
	} else {
		s.logger.Warn(ctx, "count matches failed", logger.Error(err))
	}

	if s.started {
		queueLen := s.eventQueue.Len(ctx)
		stats["queueLength"] = queueLen
		stats["dedupeEntries"] = s.deduper.Size()
		stats["eventsApplied"] = s.workerPool.Processed()
		stats["eventsRejected"] = s.workerPool.Failed()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// MaxBatchSize returns the configured batch cap.
func (s *Service) MaxBatchSize() int { return s.maxBatchSize }
