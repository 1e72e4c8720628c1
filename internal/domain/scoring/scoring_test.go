package scoring_test

import (
	"testing"

	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

var positions = []model.Position{
	model.PositionUnspecified,
	model.PositionGoalkeeper,
	model.PositionDefender,
	model.PositionMidfielder,
	model.PositionForward,
}

func TestWeightFor(t *testing.T) {
	Convey("Given the standard weight policy", t, func() {
		Convey("When no position is given", func() {
			Convey("Then the default table is used", func() {
				So(scoring.WeightFor(model.StatGoalFromInsideBox, model.PositionUnspecified), ShouldEqual, 1.2)
				So(scoring.WeightFor(model.StatTackle, model.PositionUnspecified), ShouldEqual, 0.4)
				So(scoring.WeightFor(model.StatRedCard, model.PositionUnspecified), ShouldEqual, 1.5)
			})
		})

		Convey("When the position overrides the stat", func() {
			Convey("Then the override wins", func() {
				So(scoring.WeightFor(model.StatGoalFromInsideBox, model.PositionForward), ShouldEqual, 1.5)
				So(scoring.WeightFor(model.StatGoalFromInsideBox, model.PositionDefender), ShouldEqual, 1.5)
				So(scoring.WeightFor(model.StatGoalFromInsideBox, model.PositionMidfielder), ShouldEqual, 1.3)
				So(scoring.WeightFor(model.StatSave, model.PositionGoalkeeper), ShouldEqual, 0.6)
				So(scoring.WeightFor(model.StatPenaltySave, model.PositionGoalkeeper), ShouldEqual, 1.8)
				So(scoring.WeightFor(model.StatTackle, model.PositionDefender), ShouldEqual, 0.6)
				So(scoring.WeightFor(model.StatTackle, model.PositionForward), ShouldEqual, 0.25)
			})
		})

		Convey("When the position has no override for the stat", func() {
			Convey("Then it falls back to the default table", func() {
				So(scoring.WeightFor(model.StatYellowCard, model.PositionGoalkeeper), ShouldEqual, 0.5)
				So(scoring.WeightFor(model.StatNutmeg, model.PositionForward), ShouldEqual, 0.6)
				So(scoring.WeightFor(model.StatLongPassFailed, model.PositionDefender), ShouldEqual, 0.15)
			})
		})

		Convey("When the stat is unknown", func() {
			So(scoring.WeightFor("BICYCLE_KICK", model.PositionForward), ShouldEqual, 0.0)
		})

		Convey("Every stat type has a positive weight for every position", func() {
			for _, st := range model.AllStatTypes() {
				for _, pos := range positions {
					So(scoring.WeightFor(st, pos), ShouldBeGreaterThan, 0)
				}
			}
		})

		Convey("Lookups are pure", func() {
			for i := 0; i < 3; i++ {
				So(scoring.Standard().WeightFor(model.StatKeyPass, model.PositionMidfielder), ShouldEqual, 0.6)
			}
		})
	})
}
