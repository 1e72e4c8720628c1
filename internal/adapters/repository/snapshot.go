package repository

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
)

type matchRow struct {
	ID        string `db:"id"`
	GroupID   string `db:"group_id"`
	TeamAID   string `db:"team_a_id"`
	TeamBID   string `db:"team_b_id"`
	PlayedAt  int64  `db:"played_at"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

type playerRow struct {
	ID          string  `db:"id"`
	MatchID     string  `db:"match_id"`
	Side        string  `db:"side"`
	RosterOrder int     `db:"roster_order"`
	PlayerID    string  `db:"player_id"`
	Name        string  `db:"name"`
	Position    string  `db:"position"`
	Presence    string  `db:"presence"`
	Rating      float64 `db:"rating"`
}

type statRow struct {
	ID       string  `db:"id"`
	MatchID  string  `db:"match_id"`
	Seq      int     `db:"seq"`
	PlayerID string  `db:"player_id"`
	Type     string  `db:"type"`
	Value    int     `db:"value"`
	Weight   float64 `db:"weight"`
	Impact   int     `db:"impact"`
}

// snapshot is the flat, storage-neutral form of a match.
type snapshot struct {
	match   matchRow
	players []playerRow
	stats   []statRow
}

// playerRowID is stable for a (match, player) pair so re-saving a match
// keeps row identities.
func playerRowID(matchID, playerID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("pelada:"+matchID+"/"+playerID)).String()
}

func statRowID(matchID string, seq int) string {
	return matchID + "-stat-" + strconv.Itoa(seq)
}

func toSnapshot(m *match.Match, nowMillis int64) snapshot {
	id := m.ID().String()
	s := snapshot{
		match: matchRow{
			ID:        id,
			GroupID:   m.GroupID().String(),
			TeamAID:   m.TeamA().ID().String(),
			TeamBID:   m.TeamB().ID().String(),
			PlayedAt:  toMillis(m.PlayedAt()),
			CreatedAt: nowMillis,
			UpdatedAt: nowMillis,
		},
	}
	for _, side := range []match.Side{match.SideA, match.SideB} {
		team, _ := m.Team(side)
		for i, p := range team.Players() {
			s.players = append(s.players, playerRow{
				ID:          playerRowID(id, p.ID().String()),
				MatchID:     id,
				Side:        string(side),
				RosterOrder: i,
				PlayerID:    p.ID().String(),
				Name:        p.Name(),
				Position:    string(p.Position()),
				Presence:    string(p.Presence()),
				Rating:      p.Rating().Score(),
			})
		}
	}
	for i, r := range m.Records() {
		s.stats = append(s.stats, statRow{
			ID:       statRowID(id, i),
			MatchID:  id,
			Seq:      i,
			PlayerID: r.PlayerID().String(),
			Type:     string(r.Type()),
			Value:    r.Value(),
			Weight:   r.Weight().Value(),
			Impact:   int(r.Impact()),
		})
	}
	return s
}

// fromSnapshot rebuilds the aggregate. Players come back with their stored
// rating and presence and records are replayed without touching ratings.
// players must be ordered by side then roster order, stats by seq.
func fromSnapshot(s snapshot) (*match.Match, error) {
	id, err := model.NewMatchID(s.match.ID)
	if err != nil {
		return nil, corrupt(s.match.ID, err)
	}
	groupID, err := model.NewGroupID(s.match.GroupID)
	if err != nil {
		return nil, corrupt(s.match.ID, err)
	}
	teamAID, err := model.NewTeamID(s.match.TeamAID)
	if err != nil {
		return nil, corrupt(s.match.ID, err)
	}
	teamBID, err := model.NewTeamID(s.match.TeamBID)
	if err != nil {
		return nil, corrupt(s.match.ID, err)
	}
	teams := map[match.Side]*match.Team{
		match.SideA: match.NewTeam(teamAID),
		match.SideB: match.NewTeam(teamBID),
	}

	for _, row := range s.players {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, corrupt(s.match.ID, err)
		}
		team, ok := teams[match.Side(row.Side)]
		if !ok {
			return nil, corrupt(s.match.ID, fmt.Errorf("player %s: side %q", row.PlayerID, row.Side))
		}
		if err := team.AddPlayer(p); err != nil {
			return nil, corrupt(s.match.ID, err)
		}
	}

	records := make([]match.EventRecord, 0, len(s.stats))
	for _, row := range s.stats {
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, corrupt(s.match.ID, err)
		}
		records = append(records, rec)
	}

	m, err := match.Restore(id, groupID, teams[match.SideA], teams[match.SideB], fromMillis(s.match.PlayedAt), records)
	if err != nil {
		return nil, corrupt(s.match.ID, err)
	}
	return m, nil
}

func playerFromRow(row playerRow) (*match.Player, error) {
	pid, err := model.NewPlayerID(row.PlayerID)
	if err != nil {
		return nil, err
	}
	pos, err := model.ParsePosition(row.Position)
	if err != nil {
		return nil, err
	}
	presence, err := model.ParsePresence(row.Presence)
	if err != nil {
		return nil, err
	}
	rating, err := model.NewRating(row.Rating)
	if err != nil {
		return nil, err
	}
	return match.RestorePlayer(pid, row.Name, pos, presence, rating), nil
}

func recordFromRow(row statRow) (match.EventRecord, error) {
	pid, err := model.NewPlayerID(row.PlayerID)
	if err != nil {
		return match.EventRecord{}, err
	}
	st, err := model.ParseStatType(row.Type)
	if err != nil {
		return match.EventRecord{}, err
	}
	weight, err := model.NewStatWeight(row.Weight)
	if err != nil {
		return match.EventRecord{}, err
	}
	impact, err := model.ParseImpact(row.Impact)
	if err != nil {
		return match.EventRecord{}, err
	}
	return match.NewEventRecord(pid, st, row.Value, weight, impact)
}

func corrupt(id string, err error) error {
	return fmt.Errorf("%w: match %s: %w", ErrCorruptRecord, id, err)
}
