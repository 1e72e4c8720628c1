package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
)

// MemoryStore keeps match snapshots in memory. Every read rebuilds a fresh
// aggregate, so callers never share state with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]snapshot
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory repository.
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := newOptions(opts)
	return &MemoryStore{
		matches: make(map[string]snapshot),
		now:     o.now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, m *match.Match) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer observe("save", time.Now(), &err)

	snap := toSnapshot(m, toMillis(s.now()))

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.matches[snap.match.ID]; ok {
		snap.match.CreatedAt = prev.match.CreatedAt
	}
	s.matches[snap.match.ID] = snap
	return nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id model.MatchID) (m *match.Match, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer observe("find_by_id", time.Now(), &err)

	s.mu.RLock()
	snap, ok := s.matches[id.String()]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrMatchNotFound)
	}
	return fromSnapshot(snap)
}

func (s *MemoryStore) FindByDate(ctx context.Context, groupID model.GroupID, day time.Time) (out []*match.Match, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer observe("find_by_date", time.Now(), &err)

	start, end := dayBounds(day)
	from, to := toMillis(start), toMillis(end)

	s.mu.RLock()
	var hits []snapshot
	for _, snap := range s.matches {
		if snap.match.GroupID == groupID.String() && snap.match.PlayedAt >= from && snap.match.PlayedAt < to {
			hits = append(hits, snap)
		}
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].match.PlayedAt != hits[j].match.PlayedAt {
			return hits[i].match.PlayedAt < hits[j].match.PlayedAt
		}
		return hits[i].match.ID < hits[j].match.ID
	})

	out = make([]*match.Match, 0, len(hits))
	for _, snap := range hits {
		m, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches), nil
}
