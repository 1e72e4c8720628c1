// Package repository persists match aggregates.
package repository

import (
	"context"
	"time"

	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
)

// MatchRepository loads and stores whole match aggregates. Implementations
// must be safe for concurrent use; callers serialize writes per match.
type MatchRepository interface {
	// Save inserts or replaces the match, its rosters and its event log.
	Save(ctx context.Context, m *match.Match) error

	// FindByID returns ErrMatchNotFound for an unknown id.
	FindByID(ctx context.Context, id model.MatchID) (*match.Match, error)

	// FindByDate returns the group's matches played on the calendar day of
	// day, in day's location, ordered by kick-off.
	FindByDate(ctx context.Context, groupID model.GroupID, day time.Time) ([]*match.Match, error)

	// Count returns the number of stored matches.
	Count(ctx context.Context) (int, error)
}

// dayBounds returns [start, end) of the calendar day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
