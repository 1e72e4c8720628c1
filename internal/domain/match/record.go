package match

import (
	"fmt"

	"github.com/okian/pelada/internal/domain/model"
)

// EventRecord is one immutable entry of a match's event log.
type EventRecord struct {
	playerID model.PlayerID
	statType model.StatType
	value    int
	weight   model.StatWeight
	impact   model.Impact
}

// NewEventRecord validates and builds a record.
func NewEventRecord(playerID model.PlayerID, st model.StatType, value int, weight model.StatWeight, impact model.Impact) (EventRecord, error) {
	if value <= 0 {
		return EventRecord{}, fmt.Errorf("%d: %w", value, ErrNonPositiveValue)
	}
	return EventRecord{
		playerID: playerID,
		statType: st,
		value:    value,
		weight:   weight,
		impact:   impact,
	}, nil
}

func (r EventRecord) PlayerID() model.PlayerID { return r.playerID }
func (r EventRecord) Type() model.StatType     { return r.statType }
func (r EventRecord) Value() int               { return r.value }
func (r EventRecord) Weight() model.StatWeight { return r.weight }
func (r EventRecord) Impact() model.Impact     { return r.impact }

// ImpactValue is the signed rating delta the record stands for.
func (r EventRecord) ImpactValue() float64 {
	return float64(r.value) * r.weight.Value() * r.impact.Multiplier()
}
