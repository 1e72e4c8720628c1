package match

import "errors"

// Sentinel kinds for roster and aggregate errors.
var (
	ErrPlayerNotFoundInTeam = errors.New("player not found in team")
	ErrPlayerAlreadyInTeam  = errors.New("player already in team")
	ErrNonPositiveValue     = errors.New("stat value must be positive")
	ErrInvalidRoster        = errors.New("invalid roster")
	ErrInvalidSide          = errors.New("invalid team side")
	ErrInvalidRestore       = errors.New("invalid persisted match")
)
