package match

import (
	"fmt"
	"time"

	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/rules"
	"github.com/okian/pelada/internal/domain/scoring"
)

// Side names one of the two teams of a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// ParseSide accepts "A" or "B" in any case.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideA, "a":
		return SideA, nil
	case SideB, "b":
		return SideB, nil
	default:
		return "", fmt.Errorf("side %q: %w", s, ErrInvalidSide)
	}
}

// Match is the aggregate root. It is not safe for concurrent use; callers
// serialize access per match.
type Match struct {
	id       model.MatchID
	groupID  model.GroupID
	playedAt time.Time
	teamA    *Team
	teamB    *Team
	records  []EventRecord
}

// New creates a match with an empty event log. A player may appear in only
// one of the two rosters.
func New(id model.MatchID, groupID model.GroupID, teamA, teamB *Team, playedAt time.Time) (*Match, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("match: %w", model.ErrEmptyID)
	}
	if teamA == nil || teamB == nil {
		return nil, fmt.Errorf("match %s: both teams are required: %w", id, ErrInvalidRoster)
	}
	if teamA.id.Equal(teamB.id) {
		return nil, fmt.Errorf("match %s: team ids must differ: %w", id, ErrInvalidRoster)
	}
	for _, p := range teamA.players {
		if _, ok := teamB.Find(p.id); ok {
			return nil, fmt.Errorf("match %s, player %s: %w", id, p.id, ErrPlayerAlreadyInTeam)
		}
	}
	return &Match{
		id:       id,
		groupID:  groupID,
		playedAt: playedAt,
		teamA:    teamA,
		teamB:    teamB,
	}, nil
}

// Restore rebuilds a persisted match. Records are appended as stored and
// player ratings are left untouched.
func Restore(id model.MatchID, groupID model.GroupID, teamA, teamB *Team, playedAt time.Time, records []EventRecord) (*Match, error) {
	m, err := New(id, groupID, teamA, teamB, playedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRestore, err)
	}
	m.records = append(m.records, records...)
	return m, nil
}

func (m *Match) ID() model.MatchID      { return m.id }
func (m *Match) GroupID() model.GroupID { return m.groupID }
func (m *Match) PlayedAt() time.Time    { return m.playedAt }
func (m *Match) TeamA() *Team           { return m.teamA }
func (m *Match) TeamB() *Team           { return m.teamB }

// Team returns the team on the given side.
func (m *Match) Team(side Side) (*Team, error) {
	switch side {
	case SideA:
		return m.teamA, nil
	case SideB:
		return m.teamB, nil
	default:
		return nil, fmt.Errorf("side %q: %w", side, ErrInvalidSide)
	}
}

// Records returns a copy of the event log.
func (m *Match) Records() []EventRecord {
	out := make([]EventRecord, len(m.records))
	copy(out, m.records)
	return out
}

// FindPlayer resolves id against team A, then team B.
func (m *Match) FindPlayer(id model.PlayerID) (*Player, bool) {
	if p, ok := m.teamA.Find(id); ok {
		return p, true
	}
	return m.teamB.Find(id)
}

// TeamOf returns the side id plays for.
func (m *Match) TeamOf(id model.PlayerID) (Side, bool) {
	if _, ok := m.teamA.Find(id); ok {
		return SideA, true
	}
	if _, ok := m.teamB.Find(id); ok {
		return SideB, true
	}
	return "", false
}

type pendingEffect struct {
	player *Player
	record EventRecord
}

// RecordEvent records st for playerID and applies the rating change. When
// the stat has a counterpart and opponentID resolves to a roster member, the
// counterpart is recorded against the opponent as well, weighted for the same
// position. An absent or unknown opponent is skipped. Nothing is mutated when
// an error is returned. The appended records are returned in order.
func (m *Match) RecordEvent(playerID model.PlayerID, st model.StatType, opponentID model.PlayerID, pos model.Position) ([]EventRecord, error) {
	player, ok := m.FindPlayer(playerID)
	if !ok {
		return nil, fmt.Errorf("match %s, player %s: %w", m.id, playerID, ErrPlayerNotFoundInTeam)
	}
	rule, ok := rules.Lookup(st)
	if !ok {
		return nil, fmt.Errorf("match %s, stat %q: %w", m.id, st, model.ErrUnknownStatType)
	}

	primary, err := newEffectRecord(playerID, rule.Primary, pos)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", m.id, err)
	}
	pending := []pendingEffect{{player: player, record: primary}}

	if rule.HasCounterpart() && !opponentID.IsZero() {
		if opponent, found := m.FindPlayer(opponentID); found {
			counter, err := newEffectRecord(opponentID, *rule.Counterpart, pos)
			if err != nil {
				return nil, fmt.Errorf("match %s: %w", m.id, err)
			}
			pending = append(pending, pendingEffect{player: opponent, record: counter})
		}
	}

	out := make([]EventRecord, 0, len(pending))
	for _, pe := range pending {
		m.records = append(m.records, pe.record)
		pe.player.UpdateScore(pe.player.Rating().Add(pe.record.ImpactValue()))
		out = append(out, pe.record)
	}
	return out, nil
}

func newEffectRecord(playerID model.PlayerID, eff rules.Effect, pos model.Position) (EventRecord, error) {
	weight, err := model.NewStatWeight(scoring.WeightFor(eff.Type, pos))
	if err != nil {
		return EventRecord{}, fmt.Errorf("stat %s, position %q: %w", eff.Type, pos, err)
	}
	return NewEventRecord(playerID, eff.Type, 1, weight, eff.Impact)
}

// SubstitutePlayerInTeamA swaps out for in on team A.
func (m *Match) SubstitutePlayerInTeamA(out, in *Player) error {
	return m.substitute(m.teamA, out, in)
}

// SubstitutePlayerInTeamB swaps out for in on team B.
func (m *Match) SubstitutePlayerInTeamB(out, in *Player) error {
	return m.substitute(m.teamB, out, in)
}

// Substitute swaps out for in on the given side.
func (m *Match) Substitute(side Side, out, in *Player) error {
	team, err := m.Team(side)
	if err != nil {
		return err
	}
	return m.substitute(team, out, in)
}

// substitute keeps out on the roster as SUBSTITUTED_OUT and appends in as
// SUBSTITUTED_IN. Ratings are not touched.
func (m *Match) substitute(team *Team, out, in *Player) error {
	if out == nil || in == nil {
		return fmt.Errorf("match %s: %w", m.id, ErrPlayerNotFoundInTeam)
	}
	current, ok := team.Find(out.id)
	if !ok {
		return fmt.Errorf("match %s, team %s, player %s: %w", m.id, team.id, out.id, ErrPlayerNotFoundInTeam)
	}
	if _, taken := m.FindPlayer(in.id); taken {
		return fmt.Errorf("match %s, player %s: %w", m.id, in.id, ErrPlayerAlreadyInTeam)
	}
	if err := team.AddPlayer(in); err != nil {
		return fmt.Errorf("match %s: %w", m.id, err)
	}
	current.ChangePresence(model.PresenceSubstitutedOut)
	in.ChangePresence(model.PresenceSubstitutedIn)
	return nil
}
