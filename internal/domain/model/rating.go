package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	minScore     = 0
	maxScore     = 10
	initialScore = 6
	scorePlaces  = 2
)

var (
	minScoreDec = decimal.NewFromInt(minScore)
	maxScoreDec = decimal.NewFromInt(maxScore)
)

// Rating is a player's performance score in [0, 10], kept at two decimal places.
// Ratings are values: Add returns a new Rating.
type Rating struct {
	score decimal.Decimal
}

// InitialRating is the score every player starts a match with.
func InitialRating() Rating {
	return Rating{score: decimal.NewFromInt(initialScore)}
}

// NewRating validates v and rounds it to two decimals.
func NewRating(v float64) (Rating, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rating{}, fmt.Errorf("%v: %w", v, ErrOutOfRangeScore)
	}
	return ratingFromDecimal(decimal.NewFromFloat(v))
}

func ratingFromDecimal(d decimal.Decimal) (Rating, error) {
	if d.LessThan(minScoreDec) || d.GreaterThan(maxScoreDec) {
		return Rating{}, fmt.Errorf("%s: %w", d.String(), ErrOutOfRangeScore)
	}
	return Rating{score: d.Round(scorePlaces)}, nil
}

// Add applies delta and clamps the result into [0, 10]. It never fails:
// infinite deltas saturate and NaN leaves the rating unchanged.
func (r Rating) Add(delta float64) Rating {
	switch {
	case math.IsNaN(delta):
		return r
	case math.IsInf(delta, 1):
		return Rating{score: maxScoreDec}
	case math.IsInf(delta, -1):
		return Rating{score: minScoreDec}
	}
	updated := r.score.Add(decimal.NewFromFloat(delta))
	clamped := decimal.Min(maxScoreDec, decimal.Max(minScoreDec, updated))
	next, err := ratingFromDecimal(clamped)
	if err != nil {
		// clamped is within bounds by construction
		panic(err)
	}
	return next
}

// Score returns the rating as a float64.
func (r Rating) Score() float64 {
	f, _ := r.score.Float64()
	return f
}

// Equal reports value equality.
func (r Rating) Equal(other Rating) bool {
	return r.score.Equal(other.score)
}

func (r Rating) String() string {
	return r.score.StringFixed(scorePlaces)
}
