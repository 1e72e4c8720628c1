package match

import (
	"cmp"
	"slices"

	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/types"
)

// Ratings ranks every roster member by rating, highest first. Ties keep
// roster order, team A before team B.
func Ratings(m *Match) []types.RatingEntry {
	entries := make([]types.RatingEntry, 0, m.teamA.Len()+m.teamB.Len())
	for _, side := range []Side{SideA, SideB} {
		team, _ := m.Team(side)
		for _, p := range team.players {
			entries = append(entries, types.RatingEntry{
				PlayerID: p.id.String(),
				Name:     p.name,
				Side:     string(side),
				TeamID:   team.id.String(),
				Position: string(p.position),
				Presence: string(p.presence),
				Rating:   p.rating.Score(),
			})
		}
	}
	slices.SortStableFunc(entries, func(a, b types.RatingEntry) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func scores(st model.StatType) bool {
	switch st {
	case model.StatGoalFromInsideBox, model.StatGoalFromOutsideBox,
		model.StatFreeKickScored, model.StatPenaltyScored:
		return true
	}
	return false
}

// Summarize builds the scoreline and per-player goal and assist counts. An
// own goal counts for the other side.
func Summarize(m *Match) types.Summary {
	s := types.Summary{
		MatchID:  m.id.String(),
		GroupID:  m.groupID.String(),
		PlayedAt: m.playedAt,
		TeamA:    types.TeamScore{Side: string(SideA), TeamID: m.teamA.id.String()},
		TeamB:    types.TeamScore{Side: string(SideB), TeamID: m.teamB.id.String()},
		Events:   len(m.records),
	}

	tallies := make(map[string]*types.PlayerTally)
	for _, side := range []Side{SideA, SideB} {
		team, _ := m.Team(side)
		for _, p := range team.players {
			s.Players = append(s.Players, types.PlayerTally{
				PlayerID: p.id.String(),
				Name:     p.name,
				Side:     string(side),
			})
		}
	}
	for i := range s.Players {
		tallies[s.Players[i].PlayerID] = &s.Players[i]
	}

	for _, r := range m.records {
		side, ok := m.TeamOf(r.playerID)
		if !ok {
			continue
		}
		tally := tallies[r.playerID.String()]
		switch {
		case scores(r.statType):
			tally.Goals++
			addGoal(&s, side)
		case r.statType == model.StatOwnGoal:
			addGoal(&s, other(side))
		case r.statType == model.StatAssist:
			tally.Assists++
		}
	}
	s.Winner = winner(s.TeamA, s.TeamB)
	return s
}

func winner(a, b types.TeamScore) string {
	switch {
	case a.Goals > b.Goals:
		return a.Side
	case b.Goals > a.Goals:
		return b.Side
	default:
		return ""
	}
}

func addGoal(s *types.Summary, side Side) {
	if side == SideA {
		s.TeamA.Goals++
		return
	}
	s.TeamB.Goals++
}

func other(side Side) Side {
	if side == SideA {
		return SideB
	}
	return SideA
}

// EffectOf converts a record without the resulting rating.
func EffectOf(r EventRecord) types.Effect {
	return types.Effect{
		PlayerID: r.playerID.String(),
		StatType: string(r.statType),
		Impact:   r.impact.String(),
		Weight:   r.weight.Value(),
		Delta:    r.ImpactValue(),
	}
}

// View returns the full read model of m.
func View(m *Match) types.MatchView {
	v := types.MatchView{
		MatchID:  m.id.String(),
		GroupID:  m.groupID.String(),
		PlayedAt: m.playedAt,
		TeamA:    teamView(SideA, m.teamA),
		TeamB:    teamView(SideB, m.teamB),
		Records:  make([]types.Effect, 0, len(m.records)),
	}
	for _, r := range m.records {
		v.Records = append(v.Records, EffectOf(r))
	}
	return v
}

func teamView(side Side, t *Team) types.TeamView {
	tv := types.TeamView{
		Side:    string(side),
		TeamID:  t.id.String(),
		Players: make([]types.PlayerView, 0, len(t.players)),
	}
	for _, p := range t.players {
		tv.Players = append(tv.Players, types.PlayerView{
			PlayerID: p.id.String(),
			Name:     p.name,
			Position: string(p.position),
			Presence: string(p.presence),
			Rating:   p.rating.Score(),
		})
	}
	return tv
}
