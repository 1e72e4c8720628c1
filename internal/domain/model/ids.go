package model

import (
	"fmt"
	"strings"
)

func newID(kind, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s: %w", kind, ErrEmptyID)
	}
	return value, nil
}

// PlayerID identifies a player inside a match roster.
// The zero value means "no player" where an identifier is optional.
type PlayerID struct{ value string }

// NewPlayerID validates and wraps a player identifier.
func NewPlayerID(value string) (PlayerID, error) {
	v, err := newID("player id", value)
	if err != nil {
		return PlayerID{}, err
	}
	return PlayerID{value: v}, nil
}

// MustPlayerID is NewPlayerID for fixtures and literals; it panics on empty input.
func MustPlayerID(value string) PlayerID {
	id, err := NewPlayerID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id PlayerID) String() string {
	return id.value
}

func (id PlayerID) IsZero() bool {
	return id.value == ""
}

func (id PlayerID) Equal(other PlayerID) bool {
	return id.value == other.value
}

// TeamID identifies one side of a match.
type TeamID struct{ value string }

// NewTeamID validates and wraps a team identifier.
func NewTeamID(value string) (TeamID, error) {
	v, err := newID("team id", value)
	if err != nil {
		return TeamID{}, err
	}
	return TeamID{value: v}, nil
}

func (id TeamID) String() string {
	return id.value
}

func (id TeamID) IsZero() bool {
	return id.value == ""
}

func (id TeamID) Equal(other TeamID) bool {
	return id.value == other.value
}

// MatchID identifies a match aggregate.
type MatchID struct{ value string }

// NewMatchID validates and wraps a match identifier.
func NewMatchID(value string) (MatchID, error) {
	v, err := newID("match id", value)
	if err != nil {
		return MatchID{}, err
	}
	return MatchID{value: v}, nil
}

func (id MatchID) String() string {
	return id.value
}

func (id MatchID) IsZero() bool {
	return id.value == ""
}

func (id MatchID) Equal(other MatchID) bool {
	return id.value == other.value
}

// GroupID identifies the pelada group a match belongs to.
type GroupID struct{ value string }

// NewGroupID validates and wraps a group identifier.
func NewGroupID(value string) (GroupID, error) {
	v, err := newID("group id", value)
	if err != nil {
		return GroupID{}, err
	}
	return GroupID{value: v}, nil
}

func (id GroupID) String() string {
	return id.value
}

func (id GroupID) IsZero() bool {
	return id.value == ""
}

func (id GroupID) Equal(other GroupID) bool {
	return id.value == other.value
}
