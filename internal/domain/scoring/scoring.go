// Package scoring defines how much a recorded stat moves a player's rating
// depending on the position the player occupies.
package scoring

import "github.com/okian/pelada/internal/domain/model"

// Weights maps stat types to weight magnitudes.
type Weights map[model.StatType]float64

// Policy resolves weights from a default table plus per-position overrides.
type Policy struct {
	defaults  Weights
	positions map[model.Position]Weights
}

// Standard returns the policy every match is scored with.
func Standard() *Policy {
	return standard
}

var standard = &Policy{
	defaults: defaultWeights,
	positions: map[model.Position]Weights{
		model.PositionGoalkeeper: goalkeeperWeights,
		model.PositionDefender:   defenderWeights,
		model.PositionMidfielder: midfielderWeights,
		model.PositionForward:    forwardWeights,
	},
}

// WeightFor returns the position override for st when one exists, else the
// default weight, else 0. An unspecified position reads the default table.
func (p *Policy) WeightFor(st model.StatType, pos model.Position) float64 {
	if overrides, ok := p.positions[pos]; ok {
		if w, ok := overrides[st]; ok {
			return w
		}
	}
	return p.defaults[st]
}

// WeightFor resolves st against the standard policy.
func WeightFor(st model.StatType, pos model.Position) float64 {
	return standard.WeightFor(st, pos)
}
