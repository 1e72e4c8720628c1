package scoring

import "github.com/okian/pelada/internal/domain/model"

// Baseline weights for every stat type.
var defaultWeights = Weights{
	// Attacking
	model.StatAssist:             0.8,
	model.StatPreAssist:          0.4,
	model.StatBigChanceCreated:   0.5,
	model.StatBigChanceMissed:    0.4,
	model.StatShotOnTarget:       0.2,
	model.StatShotOffTarget:      0.1,
	model.StatShotBlocked:        0.05,
	model.StatShotHitPost:        0.2,
	model.StatGoalFromInsideBox:  1.2,
	model.StatGoalFromOutsideBox: 1.5,
	model.StatDribbleSuccess:     0.3,
	model.StatDribbleFailed:      0.15,

	// Passing
	model.StatPassCompleted:     0.05,
	model.StatPassFailed:        0.05,
	model.StatLongPassCompleted: 0.15,
	model.StatLongPassFailed:    0.15,
	model.StatCrossCompleted:    0.2,
	model.StatCrossFailed:       0.1,
	model.StatKeyPass:           0.4,
	model.StatProgressivePass:   0.2,

	// Defensive
	model.StatTackle:         0.4,
	model.StatInterception:   0.4,
	model.StatBlock:          0.3,
	model.StatClearance:      0.2,
	model.StatDuelWon:        0.15,
	model.StatDuelLost:       0.15,
	model.StatAerialDuelWon:  0.2,
	model.StatAerialDuelLost: 0.15,
	model.StatPossessionLost: 0.25,
	model.StatBallRecovery:   0.3,

	// Goalkeeping
	model.StatSave:           1.0,
	model.StatSaveInsideBox:  0.6,
	model.StatSaveOutsideBox: 0.3,
	model.StatPenaltySave:    1.2,
	model.StatGoalConceded:   0.8,

	// Discipline
	model.StatFoulCommitted:    0.15,
	model.StatFoulSuffered:     0.1,
	model.StatYellowCard:       0.5,
	model.StatSecondYellowCard: 1.0,
	model.StatRedCard:          1.5,

	// Advanced
	model.StatErrorLeadingToShot: 0.5,
	model.StatErrorLeadingToGoal: 1.0,
	model.StatPenaltyWon:         0.7,
	model.StatPenaltyMissed:      1.0,
	model.StatPenaltyScored:      1.2,
	model.StatFreeKickScored:     1.4,
	model.StatPenaltyConceded:    0.8,
	model.StatOwnGoal:            1.0,

	// Skill moves
	model.StatNutmeg:         0.6,
	model.StatNutmegReceived: 0.25,
	model.StatLob:            0.8,
	model.StatLobReceived:    0.4,
}

// Overrides for goalkeepers; distribution and shot stopping weigh more.
var goalkeeperWeights = Weights{
	// Goalkeeping
	model.StatSave:           0.6,
	model.StatSaveInsideBox:  0.9,
	model.StatSaveOutsideBox: 0.5,
	model.StatPenaltySave:    1.8,
	model.StatGoalConceded:   1.2,

	// Passing
	model.StatPassCompleted:     0.08,
	model.StatPassFailed:        0.1,
	model.StatLongPassCompleted: 0.25,
	model.StatLongPassFailed:    0.2,

	// Defensive
	model.StatClearance:    0.3,
	model.StatInterception: 0.5,

	// Advanced
	model.StatErrorLeadingToShot: 0.8,
	model.StatErrorLeadingToGoal: 1.5,
}

// Overrides for defenders.
var defenderWeights = Weights{
	// Defensive
	model.StatTackle:         0.6,
	model.StatInterception:   0.6,
	model.StatBlock:          0.5,
	model.StatClearance:      0.4,
	model.StatDuelWon:        0.25,
	model.StatDuelLost:       0.25,
	model.StatAerialDuelWon:  0.35,
	model.StatAerialDuelLost: 0.25,
	model.StatBallRecovery:   0.4,
	model.StatPossessionLost: 0.35,

	// Passing
	model.StatPassCompleted:     0.08,
	model.StatPassFailed:        0.1,
	model.StatLongPassCompleted: 0.25,
	model.StatProgressivePass:   0.3,

	// Attacking
	model.StatGoalFromInsideBox:  1.5,
	model.StatGoalFromOutsideBox: 1.8,

	// Advanced
	model.StatErrorLeadingToShot: 0.7,
	model.StatErrorLeadingToGoal: 1.3,
}

var midfielderWeights = Weights{
	// Passing
	model.StatPassCompleted:     0.08,
	model.StatPassFailed:        0.08,
	model.StatKeyPass:           0.6,
	model.StatProgressivePass:   0.35,
	model.StatLongPassCompleted: 0.25,

	// Attacking
	model.StatAssist:             1.0,
	model.StatPreAssist:          0.6,
	model.StatBigChanceCreated:   0.7,
	model.StatGoalFromInsideBox:  1.3,
	model.StatGoalFromOutsideBox: 1.6,
	model.StatShotOnTarget:       0.3,
	model.StatDribbleSuccess:     0.4,

	// Defensive
	model.StatTackle:         0.45,
	model.StatInterception:   0.45,
	model.StatBallRecovery:   0.35,
	model.StatDuelWon:        0.2,
	model.StatPossessionLost: 0.3,

	// Advanced
	model.StatErrorLeadingToShot: 0.6,
	model.StatErrorLeadingToGoal: 1.1,
}

// Overrides for forwards.
var forwardWeights = Weights{
	// Attacking
	model.StatGoalFromInsideBox:  1.5,
	model.StatGoalFromOutsideBox: 1.8,
	model.StatAssist:             1.0,
	model.StatPreAssist:          0.5,
	model.StatShotOnTarget:       0.35,
	model.StatShotOffTarget:      0.15,
	model.StatShotHitPost:        0.3,
	model.StatBigChanceCreated:   0.6,
	model.StatBigChanceMissed:    0.6,
	model.StatDribbleSuccess:     0.5,
	model.StatDribbleFailed:      0.2,

	// Passing
	model.StatKeyPass:       0.5,
	model.StatPassCompleted: 0.05,

	// Defensive
	model.StatBallRecovery:   0.25,
	model.StatTackle:         0.25,
	model.StatPossessionLost: 0.2,

	// Advanced
	model.StatPenaltyScored: 1.4,
	model.StatPenaltyMissed: 1.2,
	model.StatPenaltyWon:    0.9,
}
