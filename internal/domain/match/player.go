// Package match holds the match aggregate: two rosters, the recorded event
// log and the rating updates derived from it.
package match

import "github.com/okian/pelada/internal/domain/model"

// Player is a roster member for the duration of one match.
type Player struct {
	id       model.PlayerID
	name     string
	rating   model.Rating
	position model.Position
	presence model.Presence
}

// NewPlayer creates a starter with the initial rating.
func NewPlayer(id model.PlayerID, name string, position model.Position) *Player {
	return &Player{
		id:       id,
		name:     name,
		rating:   model.InitialRating(),
		position: position,
		presence: model.PresenceStarter,
	}
}

// RestorePlayer rebuilds a persisted player with its stored rating and presence.
func RestorePlayer(id model.PlayerID, name string, position model.Position, presence model.Presence, rating model.Rating) *Player {
	return &Player{
		id:       id,
		name:     name,
		rating:   rating,
		position: position,
		presence: presence,
	}
}

func (p *Player) ID() model.PlayerID       { return p.id }
func (p *Player) Name() string             { return p.name }
func (p *Player) Rating() model.Rating     { return p.rating }
func (p *Player) Position() model.Position { return p.position }
func (p *Player) Presence() model.Presence { return p.presence }

// Equals compares players by identity.
func (p *Player) Equals(other *Player) bool {
	if p == nil || other == nil {
		return false
	}
	return p == other || p.id.Equal(other.id)
}

// UpdateScore replaces the held rating.
func (p *Player) UpdateScore(r model.Rating) {
	p.rating = r
}

// ChangePresence moves the player to a new participation state.
func (p *Player) ChangePresence(presence model.Presence) {
	p.presence = presence
}
