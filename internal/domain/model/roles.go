package model

import (
	"fmt"
	"strings"
)

// Position is a player's on-field role. The empty Position means unspecified.
type Position string

const (
	PositionUnspecified Position = ""
	PositionGoalkeeper  Position = "GOALKEEPER"
	PositionDefender    Position = "DEFENDER"
	PositionMidfielder  Position = "MIDFIELDER"
	PositionForward     Position = "FORWARD"
)

// ParsePosition accepts an empty string as PositionUnspecified.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionUnspecified, PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return p, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPosition)
	}
}

// Presence is a player's participation state within one match.
type Presence string

const (
	PresenceStarter        Presence = "STARTER"
	PresenceSubstitutedIn  Presence = "SUBSTITUTED_IN"
	PresenceSubstitutedOut Presence = "SUBSTITUTED_OUT"
)

// ParsePresence converts the stored representation back to a Presence.
func ParsePresence(s string) (Presence, error) {
	p := Presence(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PresenceStarter, PresenceSubstitutedIn, PresenceSubstitutedOut:
		return p, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPresence)
	}
}
