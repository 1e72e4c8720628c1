package service

import (
	"fmt"
	"time"

	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
)

// PlayerInput describes a roster member. Position may be empty.
type PlayerInput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// TeamInput describes one side. An empty ID gets a generated one.
type TeamInput struct {
	ID      string        `json:"id,omitempty"`
	Players []PlayerInput `json:"players"`
}

// CreateMatchInput describes a new match. Empty ID and zero PlayedAt are
// filled in by the service.
type CreateMatchInput struct {
	ID       string    `json:"id,omitempty"`
	GroupID  string    `json:"group_id"`
	PlayedAt time.Time `json:"played_at"`
	TeamA    TeamInput `json:"team_a"`
	TeamB    TeamInput `json:"team_b"`
}

// RecordEventInput is one reported occurrence. OpponentID and Position are
// optional; EventID is only used by Submit for deduplication.
type RecordEventInput struct {
	EventID    string `json:"event_id,omitempty"`
	MatchID    string `json:"match_id"`
	PlayerID   string `json:"player_id"`
	StatType   string `json:"stat_type"`
	OpponentID string `json:"opponent_id,omitempty"`
	Position   string `json:"position,omitempty"`
}

// SubstitutionInput swaps Out for In on the given side.
type SubstitutionInput struct {
	MatchID string      `json:"match_id"`
	Side    string      `json:"side"`
	Out     string      `json:"out"`
	In      PlayerInput `json:"in"`
}

func (in PlayerInput) build() (*match.Player, error) {
	id, err := model.NewPlayerID(in.ID)
	if err != nil {
		return nil, err
	}
	pos, err := model.ParsePosition(in.Position)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", in.ID, err)
	}
	return match.NewPlayer(id, in.Name, pos), nil
}

func (in TeamInput) build(fallbackID string) (*match.Team, error) {
	raw := in.ID
	if raw == "" {
		raw = fallbackID
	}
	id, err := model.NewTeamID(raw)
	if err != nil {
		return nil, err
	}
	team := match.NewTeam(id)
	for _, pi := range in.Players {
		p, err := pi.build()
		if err != nil {
			return nil, err
		}
		if err := team.AddPlayer(p); err != nil {
			return nil, err
		}
	}
	return team, nil
}

// event parses the input into a queueable event.
func (in RecordEventInput) event() (model.Event, error) {
	matchID, err := model.NewMatchID(in.MatchID)
	if err != nil {
		return model.Event{}, err
	}
	playerID, err := model.NewPlayerID(in.PlayerID)
	if err != nil {
		return model.Event{}, err
	}
	st, err := model.ParseStatType(in.StatType)
	if err != nil {
		return model.Event{}, err
	}
	pos, err := model.ParsePosition(in.Position)
	if err != nil {
		return model.Event{}, err
	}
	var opponentID model.PlayerID
	if in.OpponentID != "" {
		if opponentID, err = model.NewPlayerID(in.OpponentID); err != nil {
			return model.Event{}, err
		}
	}
	return model.Event{
		EventID:    in.EventID,
		MatchID:    matchID,
		PlayerID:   playerID,
		StatType:   st,
		OpponentID: opponentID,
		Position:   pos,
		TS:         time.Now().UTC(),
	}, nil
}
