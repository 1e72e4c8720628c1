package model

import "errors"

// Sentinel kinds for domain value errors. Callers match them with errors.Is.
var (
	ErrEmptyID           = errors.New("identifier cannot be empty")
	ErrOutOfRangeScore   = errors.New("score must be between 0 and 10")
	ErrNonPositiveWeight = errors.New("weight must be positive")
	ErrUnknownStatType   = errors.New("unknown stat type")
	ErrUnknownPosition   = errors.New("unknown player position")
	ErrUnknownPresence   = errors.New("unknown player presence")
	ErrUnknownImpact     = errors.New("unknown impact")
)
