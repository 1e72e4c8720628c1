// Package model contains domain values passed between layers.
package model

import "time"

// Event is a request to record one in-match occurrence.
// It flows from the HTTP layer through the queue to the match service.
type Event struct {
	EventID    string    // idempotency key, unique within a match
	MatchID    MatchID   // target aggregate
	PlayerID   PlayerID  // acting player
	StatType   StatType  // what happened
	OpponentID PlayerID  // zero when no opponent is involved
	Position   Position  // position used for weighting; may be unspecified
	TS         time.Time // when the event was reported
}
