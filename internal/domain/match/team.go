package match

import (
	"fmt"

	"github.com/okian/pelada/internal/domain/model"
)

// Team is one side of a match with an ordered roster.
type Team struct {
	id      model.TeamID
	players []*Player
}

// NewTeam creates an empty team.
func NewTeam(id model.TeamID) *Team {
	return &Team{id: id}
}

// ID returns the team identifier.
func (t *Team) ID() model.TeamID { return t.id }

// Players returns the roster in insertion order. The slice is a copy; the
// players are shared.
func (t *Team) Players() []*Player {
	out := make([]*Player, len(t.players))
	copy(out, t.players)
	return out
}

// Len returns the roster size.
func (t *Team) Len() int { return len(t.players) }

// Find returns the roster member with the given id.
func (t *Team) Find(id model.PlayerID) (*Player, bool) {
	for _, p := range t.players {
		if p.id.Equal(id) {
			return p, true
		}
	}
	return nil, false
}

// AddPlayer appends p unless a player with the same identity is present.
func (t *Team) AddPlayer(p *Player) error {
	if _, ok := t.Find(p.id); ok {
		return fmt.Errorf("team %s, player %s: %w", t.id, p.id, ErrPlayerAlreadyInTeam)
	}
	t.players = append(t.players, p)
	return nil
}

// RemovePlayer drops p from the roster.
func (t *Team) RemovePlayer(p *Player) error {
	for i, existing := range t.players {
		if existing.Equals(p) {
			t.players = append(t.players[:i], t.players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("team %s, player %s: %w", t.id, p.id, ErrPlayerNotFoundInTeam)
}
