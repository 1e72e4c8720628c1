package rules

import "github.com/okian/pelada/internal/domain/model"

const (
	pos = model.ImpactPositive
	neg = model.ImpactNegative
)

func primary(st model.StatType, i model.Impact) Rule {
	return Rule{Primary: Effect{Type: st, Impact: i}}
}

func paired(st model.StatType, i model.Impact, cst model.StatType, ci model.Impact) Rule {
	return Rule{Primary: Effect{Type: st, Impact: i}, Counterpart: &Effect{Type: cst, Impact: ci}}
}

// table is authored entry by entry. Paired actions mirror each other but
// nothing enforces the symmetry; SAVE credits the shooter on purpose.
var table = map[model.StatType]Rule{
	// Attacking
	model.StatAssist:             primary(model.StatAssist, pos),
	model.StatPreAssist:          primary(model.StatPreAssist, pos),
	model.StatBigChanceCreated:   primary(model.StatBigChanceCreated, pos),
	model.StatBigChanceMissed:    primary(model.StatBigChanceMissed, neg),
	model.StatShotOnTarget:       primary(model.StatShotOnTarget, pos),
	model.StatShotOffTarget:      primary(model.StatShotOffTarget, neg),
	model.StatShotBlocked:        paired(model.StatShotBlocked, neg, model.StatBlock, pos),
	model.StatShotHitPost:        primary(model.StatShotHitPost, pos),
	model.StatGoalFromInsideBox:  paired(model.StatGoalFromInsideBox, pos, model.StatGoalConceded, neg),
	model.StatGoalFromOutsideBox: paired(model.StatGoalFromOutsideBox, pos, model.StatGoalConceded, neg),
	model.StatDribbleSuccess:     primary(model.StatDribbleSuccess, pos),
	model.StatDribbleFailed:      paired(model.StatDribbleFailed, neg, model.StatBallRecovery, pos),

	// Passing
	model.StatPassCompleted:     primary(model.StatPassCompleted, pos),
	model.StatPassFailed:        paired(model.StatPassFailed, neg, model.StatInterception, pos),
	model.StatLongPassCompleted: primary(model.StatLongPassCompleted, pos),
	model.StatLongPassFailed:    paired(model.StatLongPassFailed, neg, model.StatInterception, pos),
	model.StatCrossCompleted:    primary(model.StatCrossCompleted, pos),
	model.StatCrossFailed:       paired(model.StatCrossFailed, neg, model.StatClearance, pos),
	model.StatKeyPass:           primary(model.StatKeyPass, pos),
	model.StatProgressivePass:   primary(model.StatProgressivePass, pos),

	// Defensive
	model.StatTackle:         paired(model.StatTackle, pos, model.StatPossessionLost, neg),
	model.StatInterception:   paired(model.StatInterception, pos, model.StatPossessionLost, neg),
	model.StatBlock:          primary(model.StatBlock, pos),
	model.StatClearance:      primary(model.StatClearance, pos),
	model.StatDuelWon:        paired(model.StatDuelWon, pos, model.StatDuelLost, neg),
	model.StatDuelLost:       paired(model.StatDuelLost, neg, model.StatDuelWon, pos),
	model.StatAerialDuelWon:  paired(model.StatAerialDuelWon, pos, model.StatAerialDuelLost, neg),
	model.StatAerialDuelLost: paired(model.StatAerialDuelLost, neg, model.StatAerialDuelWon, pos),
	model.StatPossessionLost: paired(model.StatPossessionLost, neg, model.StatBallRecovery, pos),
	model.StatBallRecovery:   paired(model.StatBallRecovery, pos, model.StatPossessionLost, neg),

	// Goalkeeping
	model.StatSave:           paired(model.StatSave, pos, model.StatShotOnTarget, pos),
	model.StatSaveInsideBox:  paired(model.StatSaveInsideBox, pos, model.StatShotOnTarget, pos),
	model.StatSaveOutsideBox: paired(model.StatSaveOutsideBox, pos, model.StatShotOnTarget, pos),
	model.StatPenaltySave:    paired(model.StatPenaltySave, pos, model.StatPenaltyMissed, neg),
	model.StatGoalConceded:   primary(model.StatGoalConceded, neg),

	// Discipline
	model.StatFoulCommitted:    paired(model.StatFoulCommitted, neg, model.StatFoulSuffered, pos),
	model.StatFoulSuffered:     paired(model.StatFoulSuffered, pos, model.StatFoulCommitted, neg),
	model.StatYellowCard:       primary(model.StatYellowCard, neg),
	model.StatSecondYellowCard: primary(model.StatSecondYellowCard, neg),
	model.StatRedCard:          primary(model.StatRedCard, neg),

	// Advanced and set pieces
	model.StatErrorLeadingToShot: primary(model.StatErrorLeadingToShot, neg),
	model.StatErrorLeadingToGoal: primary(model.StatErrorLeadingToGoal, neg),
	model.StatPenaltyWon:         paired(model.StatPenaltyWon, pos, model.StatPenaltyConceded, neg),
	model.StatPenaltyMissed:      primary(model.StatPenaltyMissed, neg),
	model.StatPenaltyScored:      primary(model.StatPenaltyScored, pos),
	model.StatFreeKickScored:     primary(model.StatFreeKickScored, pos),
	model.StatPenaltyConceded:    paired(model.StatPenaltyConceded, neg, model.StatPenaltyWon, pos),
	model.StatOwnGoal:            primary(model.StatOwnGoal, neg),

	// Skill moves
	model.StatNutmeg:         paired(model.StatNutmeg, pos, model.StatNutmegReceived, neg),
	model.StatNutmegReceived: paired(model.StatNutmegReceived, neg, model.StatNutmeg, pos),
	model.StatLob:            paired(model.StatLob, pos, model.StatLobReceived, neg),
	model.StatLobReceived:    paired(model.StatLobReceived, neg, model.StatLob, pos),
}
