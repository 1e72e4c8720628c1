package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	eventqueue "github.com/okian/pelada/internal/adapters/mq/queue"
	"github.com/okian/pelada/internal/domain/dedupe"
	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/rules"
	"github.com/okian/pelada/internal/domain/types"
	"github.com/okian/pelada/pkg/logger"
	"github.com/okian/pelada/pkg/metrics"
)

// RecordEvent applies one event synchronously and returns the stored effects
// with each player's resulting rating.
func (s *Service) RecordEvent(ctx context.Context, in RecordEventInput) ([]types.Effect, error) {
	e, err := in.event()
	if err != nil {
		return nil, s.fail(ctx, "record", err)
	}
	return s.apply(ctx, []model.Event{e})
}

// RecordEvents applies a batch that targets one match. Every event is
// validated before the first one is applied and the match is saved once, so
// a failing batch leaves the stored match untouched. An empty batch is a
// no-op.
func (s *Service) RecordEvents(ctx context.Context, ins []RecordEventInput) ([]types.Effect, error) {
	if len(ins) == 0 {
		return nil, nil
	}
	if len(ins) > s.maxBatchSize {
		return nil, s.fail(ctx, "record_batch",
			fmt.Errorf("%d events, limit %d: %w", len(ins), s.maxBatchSize, ErrBatchTooLarge))
	}

	events := make([]model.Event, 0, len(ins))
	for i, in := range ins {
		e, err := in.event()
		if err != nil {
			return nil, s.fail(ctx, "record_batch", fmt.Errorf("event %d: %w", i, err))
		}
		if len(events) > 0 && !e.MatchID.Equal(events[0].MatchID) {
			return nil, s.fail(ctx, "record_batch",
				fmt.Errorf("event %d targets %s, batch targets %s: %w", i, e.MatchID, events[0].MatchID, ErrBatchSpansMatches))
		}
		events = append(events, e)
	}

	metrics.RecordBatchSize(len(events))
	return s.apply(ctx, events)
}

// Apply records one queued event. The worker pool calls it.
func (s *Service) Apply(ctx context.Context, e model.Event) error { //nolint:gocritic // hugeParam: Event is passed by value
	_, err := s.apply(ctx, []model.Event{e})
	return err
}

// apply loads the match once, validates every event against it, records
// them in order and saves. events must share one match id.
func (s *Service) apply(ctx context.Context, events []model.Event) ([]types.Effect, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRecordingLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	matchID := events[0].MatchID
	release := s.locks.lock(matchID)
	defer release()

	m, err := s.repo.FindByID(ctx, matchID)
	if err != nil {
		return nil, s.fail(ctx, "record", err)
	}

	for i, e := range events {
		if _, ok := m.FindPlayer(e.PlayerID); !ok {
			return nil, s.fail(ctx, "record",
				fmt.Errorf("event %d: match %s, player %s: %w", i, matchID, e.PlayerID, match.ErrPlayerNotFoundInTeam))
		}
		if _, ok := rules.Lookup(e.StatType); !ok {
			return nil, s.fail(ctx, "record",
				fmt.Errorf("event %d: stat %q: %w", i, e.StatType, model.ErrUnknownStatType))
		}
	}

	var effects []types.Effect
	for i, e := range events {
		recs, err := m.RecordEvent(e.PlayerID, e.StatType, e.OpponentID, e.Position)
		if err != nil {
			return nil, s.fail(ctx, "record", fmt.Errorf("event %d: %w", i, err))
		}
		if rules.For(e.StatType).HasCounterpart() {
			metrics.RecordCounterpart(len(recs) > 1)
		}
		// Each effect carries the rating left by its own event.
		for _, r := range recs {
			eff := match.EffectOf(r)
			if p, ok := m.FindPlayer(r.PlayerID()); ok {
				score := p.Rating().Score()
				eff.Rating = &score
			}
			effects = append(effects, eff)
		}
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, s.fail(ctx, "record", err)
	}

	for _, eff := range effects {
		metrics.RecordEventRecorded(eff.StatType, eff.Impact)
		metrics.ObserveRatingDelta(eff.Delta)
	}

	s.logger.Debug(ctx, "events recorded",
		logger.String("match_id", matchID.String()),
		logger.Int("events", len(events)),
		logger.Int("records", len(effects)),
	)
	return effects, nil
}

// Submit validates the input and queues it for a worker. Resubmitting an
// event id already accepted for the same match reports duplicate without
// queueing it again. A full queue returns ErrBackpressure and forgets the id
// so the client can retry.
func (s *Service) Submit(ctx context.Context, in RecordEventInput) (eventID string, duplicate bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return "", false, s.fail(ctx, "submit", ErrNotStarted)
	}

	e, err := in.event()
	if err != nil {
		return "", false, s.fail(ctx, "submit", err)
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}

	key := dedupe.Key(e.MatchID.String(), e.EventID)
	if s.deduper.SeenAndRecord(ctx, key) {
		metrics.RecordEventDuplicate()
		s.logger.Debug(ctx, "duplicate event detected, skipping",
			logger.String("event_id", e.EventID),
			logger.String("match_id", e.MatchID.String()),
			logger.Bool("duplicate", true),
		)
		return e.EventID, true, nil
	}

	if err := s.eventQueue.Enqueue(ctx, e); err != nil {
		s.deduper.Unrecord(ctx, key)
		if errors.Is(err, eventqueue.ErrFull) {
			err = fmt.Errorf("submit %s: %w", e.EventID, ErrBackpressure)
		}
		return "", false, s.fail(ctx, "submit", err)
	}

	s.logger.Debug(ctx, "event queued",
		logger.String("event_id", e.EventID),
		logger.String("match_id", e.MatchID.String()),
		logger.String("stat_type", string(e.StatType)),
		logger.Bool("duplicate", false),
	)
	return e.EventID, false, nil
}
