package model

import (
	"fmt"
	"strings"
)

// StatType is a fixed category of in-match occurrence. Values are stored
// in the database and sent over the wire; don't change them.
type StatType string

// Attacking.
const (
	StatAssist             StatType = "ASSIST"
	StatPreAssist          StatType = "PRE_ASSIST"
	StatBigChanceCreated   StatType = "BIG_CHANCE_CREATED"
	StatBigChanceMissed    StatType = "BIG_CHANCE_MISSED"
	StatShotOnTarget       StatType = "SHOT_ON_TARGET"
	StatShotOffTarget      StatType = "SHOT_OFF_TARGET"
	StatShotBlocked        StatType = "SHOT_BLOCKED"
	StatShotHitPost        StatType = "SHOT_HIT_POST"
	StatGoalFromInsideBox  StatType = "GOAL_FROM_INSIDE_BOX"
	StatGoalFromOutsideBox StatType = "GOAL_FROM_OUTSIDE_BOX"
	StatDribbleSuccess     StatType = "DRIBBLE_SUCCESS"
	StatDribbleFailed      StatType = "DRIBBLE_FAILED"
)

// Passing.
const (
	StatPassCompleted     StatType = "PASS_COMPLETED"
	StatPassFailed        StatType = "PASS_FAILED"
	StatLongPassCompleted StatType = "LONG_PASS_COMPLETED"
	StatLongPassFailed    StatType = "LONG_PASS_FAILED"
	StatCrossCompleted    StatType = "CROSS_COMPLETED"
	StatCrossFailed       StatType = "CROSS_FAILED"
	StatKeyPass           StatType = "KEY_PASS"
	StatProgressivePass   StatType = "PROGRESSIVE_PASS"
)

// Defensive.
const (
	StatTackle         StatType = "TACKLE"
	StatInterception   StatType = "INTERCEPTION"
	StatBlock          StatType = "BLOCK"
	StatClearance      StatType = "CLEARANCE"
	StatDuelWon        StatType = "DUEL_WON"
	StatDuelLost       StatType = "DUEL_LOST"
	StatAerialDuelWon  StatType = "AERIAL_DUEL_WON"
	StatAerialDuelLost StatType = "AERIAL_DUEL_LOST"
	StatPossessionLost StatType = "POSSESSION_LOST"
	StatBallRecovery   StatType = "BALL_RECOVERY"
)

// Goalkeeping.
const (
	StatSave           StatType = "SAVE"
	StatSaveInsideBox  StatType = "SAVE_INSIDE_BOX"
	StatSaveOutsideBox StatType = "SAVE_OUTSIDE_BOX"
	StatPenaltySave    StatType = "PENALTY_SAVE"
	StatGoalConceded   StatType = "GOAL_CONCEDED"
)

// Discipline.
const (
	StatFoulCommitted    StatType = "FOUL_COMMITTED"
	StatFoulSuffered     StatType = "FOUL_SUFFERED"
	StatYellowCard       StatType = "YELLOW_CARD"
	StatSecondYellowCard StatType = "SECOND_YELLOW_CARD"
	StatRedCard          StatType = "RED_CARD"
)

// Advanced and set pieces.
const (
	StatErrorLeadingToShot StatType = "ERROR_LEADING_TO_SHOT"
	StatErrorLeadingToGoal StatType = "ERROR_LEADING_TO_GOAL"
	StatPenaltyWon         StatType = "PENALTY_WON"
	StatPenaltyMissed      StatType = "PENALTY_MISSED"
	StatPenaltyScored      StatType = "PENALTY_SCORED"
	StatFreeKickScored     StatType = "FREE_KICK_SCORED"
	StatPenaltyConceded    StatType = "PENALTY_CONCEDED"
	StatOwnGoal            StatType = "OWN_GOAL"
)

// Skill moves.
const (
	StatNutmeg         StatType = "NUTMEG"
	StatNutmegReceived StatType = "NUTMEG_RECEIVED"
	StatLob            StatType = "LOB"
	StatLobReceived    StatType = "LOB_RECEIVED"
)

var allStatTypes = []StatType{
	StatAssist, StatPreAssist, StatBigChanceCreated, StatBigChanceMissed,
	StatShotOnTarget, StatShotOffTarget, StatShotBlocked, StatShotHitPost,
	StatGoalFromInsideBox, StatGoalFromOutsideBox, StatDribbleSuccess, StatDribbleFailed,
	StatPassCompleted, StatPassFailed, StatLongPassCompleted, StatLongPassFailed,
	StatCrossCompleted, StatCrossFailed, StatKeyPass, StatProgressivePass,
	StatTackle, StatInterception, StatBlock, StatClearance,
	StatDuelWon, StatDuelLost, StatAerialDuelWon, StatAerialDuelLost,
	StatPossessionLost, StatBallRecovery,
	StatSave, StatSaveInsideBox, StatSaveOutsideBox, StatPenaltySave, StatGoalConceded,
	StatFoulCommitted, StatFoulSuffered, StatYellowCard, StatSecondYellowCard, StatRedCard,
	StatErrorLeadingToShot, StatErrorLeadingToGoal,
	StatPenaltyWon, StatPenaltyMissed, StatPenaltyScored, StatFreeKickScored,
	StatPenaltyConceded, StatOwnGoal,
	StatNutmeg, StatNutmegReceived, StatLob, StatLobReceived,
}

var statTypeSet = func() map[StatType]struct{} {
	m := make(map[StatType]struct{}, len(allStatTypes))
	for _, st := range allStatTypes {
		m[st] = struct{}{}
	}
	return m
}()

// AllStatTypes returns every recognized stat type in declaration order.
func AllStatTypes() []StatType {
	out := make([]StatType, len(allStatTypes))
	copy(out, allStatTypes)
	return out
}

// Valid reports whether st is a recognized stat type.
func (st StatType) Valid() bool {
	_, ok := statTypeSet[st]
	return ok
}

// ParseStatType accepts the stored representation, case-insensitively.
func ParseStatType(s string) (StatType, error) {
	st := StatType(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStatType)
	}
	return st, nil
}

// Impact is the sign of an event's effect on a rating.
type Impact int

const ( // stored in the database as integers
	ImpactNegative Impact = -1
	ImpactPositive Impact = 1
)

// Multiplier returns +1 or -1.
func (i Impact) Multiplier() float64 {
	return float64(i)
}

// ParseImpact converts a stored integer back to an Impact.
func ParseImpact(v int) (Impact, error) {
	switch Impact(v) {
	case ImpactPositive, ImpactNegative:
		return Impact(v), nil
	default:
		return 0, fmt.Errorf("%d: %w", v, ErrUnknownImpact)
	}
}

func (i Impact) String() string {
	switch i {
	case ImpactPositive:
		return "positive"
	case ImpactNegative:
		return "negative"
	default:
		return "unknown"
	}
}
