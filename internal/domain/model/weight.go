package model

import "fmt"

// StatWeight is the magnitude of one recorded event's effect on a rating.
type StatWeight struct {
	value float64
}

// NewStatWeight rejects zero, negative and NaN weights.
func NewStatWeight(v float64) (StatWeight, error) {
	if !(v > 0) {
		return StatWeight{}, fmt.Errorf("%v: %w", v, ErrNonPositiveWeight)
	}
	return StatWeight{value: v}, nil
}

// Value returns the weight magnitude.
func (w StatWeight) Value() float64 { return w.value }

// Equal reports value equality.
func (w StatWeight) Equal(other StatWeight) bool { return w.value == other.value }
