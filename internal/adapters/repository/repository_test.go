package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/pelada/internal/adapters/repository"
	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var kickoff = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

func newMatch(id, group string, playedAt time.Time) *match.Match {
	a := match.NewTeam(mustTeam(id + "-a"))
	b := match.NewTeam(mustTeam(id + "-b"))
	_ = a.AddPlayer(match.NewPlayer(model.MustPlayerID("ana"), "Ana", model.PositionForward))
	_ = a.AddPlayer(match.NewPlayer(model.MustPlayerID("bia"), "Bia", model.PositionUnspecified))
	_ = b.AddPlayer(match.NewPlayer(model.MustPlayerID("caio"), "Caio", model.PositionGoalkeeper))
	_ = b.AddPlayer(match.NewPlayer(model.MustPlayerID("duda"), "Duda", model.PositionDefender))

	mid, _ := model.NewMatchID(id)
	gid, _ := model.NewGroupID(group)
	m, err := match.New(mid, gid, a, b, playedAt)
	if err != nil {
		panic(err)
	}
	return m
}

func mustTeam(s string) model.TeamID {
	id, err := model.NewTeamID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustMatchID(s string) model.MatchID {
	id, _ := model.NewMatchID(s)
	return id
}

func mustGroupID(s string) model.GroupID {
	id, _ := model.NewGroupID(s)
	return id
}

type storeFactory func(t *testing.T) repository.MatchRepository

func stores() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(*testing.T) repository.MatchRepository {
			return repository.NewMemoryStore()
		},
		"sqlite": func(t *testing.T) repository.MatchRepository {
			s, err := repository.OpenSQL(context.Background(), repository.DriverSQLite, filepath.Join(t.TempDir(), "pelada.db"))
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func TestMatchRepository(t *testing.T) {
	for name, factory := range stores() {
		Convey("Given a "+name+" match repository", t, func() {
			ctx := context.Background()
			repo := factory(t)

			Convey("When an unknown match is requested", func() {
				_, err := repo.FindByID(ctx, mustMatchID("missing"))

				Convey("Then ErrMatchNotFound is returned", func() {
					So(errors.Is(err, repository.ErrMatchNotFound), ShouldBeTrue)
				})
			})

			Convey("When a played match is saved and loaded", func() {
				m := newMatch("m-1", "g-1", kickoff)
				ana, _ := m.FindPlayer(model.MustPlayerID("ana"))
				duda, _ := m.FindPlayer(model.MustPlayerID("duda"))
				_, err := m.RecordEvent(ana.ID(), model.StatGoalFromInsideBox, model.MustPlayerID("caio"), model.PositionForward)
				So(err, ShouldBeNil)
				_, err = m.RecordEvent(duda.ID(), model.StatTackle, ana.ID(), model.PositionDefender)
				So(err, ShouldBeNil)
				sub := match.NewPlayer(model.MustPlayerID("edu"), "Edu", model.PositionMidfielder)
				So(m.SubstitutePlayerInTeamA(ana, sub), ShouldBeNil)

				So(repo.Save(ctx, m), ShouldBeNil)
				got, err := repo.FindByID(ctx, m.ID())

				Convey("Then the aggregate round-trips", func() {
					So(err, ShouldBeNil)
					So(got.ID().Equal(m.ID()), ShouldBeTrue)
					So(got.GroupID().Equal(m.GroupID()), ShouldBeTrue)
					So(got.PlayedAt().Equal(kickoff), ShouldBeTrue)
					So(got.TeamA().ID().Equal(m.TeamA().ID()), ShouldBeTrue)
					So(got.TeamA().Len(), ShouldEqual, 3)
					So(got.TeamB().Len(), ShouldEqual, 2)

					gotAna, ok := got.FindPlayer(ana.ID())
					So(ok, ShouldBeTrue)
					So(gotAna.Rating().Equal(ana.Rating()), ShouldBeTrue)
					So(gotAna.Presence(), ShouldEqual, model.PresenceSubstitutedOut)
					So(gotAna.Position(), ShouldEqual, model.PositionForward)

					gotEdu, ok := got.FindPlayer(sub.ID())
					So(ok, ShouldBeTrue)
					So(gotEdu.Presence(), ShouldEqual, model.PresenceSubstitutedIn)

					want := m.Records()
					recs := got.Records()
					So(recs, ShouldHaveLength, len(want))
					for i := range want {
						So(recs[i].PlayerID().Equal(want[i].PlayerID()), ShouldBeTrue)
						So(recs[i].Type(), ShouldEqual, want[i].Type())
						So(recs[i].Impact(), ShouldEqual, want[i].Impact())
						So(recs[i].Weight().Equal(want[i].Weight()), ShouldBeTrue)
						So(recs[i].Value(), ShouldEqual, 1)
					}
				})

				Convey("Then a loaded copy is independent of the store", func() {
					So(err, ShouldBeNil)
					_, err := got.RecordEvent(model.MustPlayerID("bia"), model.StatAssist, model.PlayerID{}, model.PositionUnspecified)
					So(err, ShouldBeNil)
					again, err := repo.FindByID(ctx, m.ID())
					So(err, ShouldBeNil)
					So(again.Records(), ShouldHaveLength, len(m.Records()))
				})

				Convey("Then saving again replaces the event log", func() {
					_, err := m.RecordEvent(model.MustPlayerID("bia"), model.StatYellowCard, model.PlayerID{}, model.PositionUnspecified)
					So(err, ShouldBeNil)
					So(repo.Save(ctx, m), ShouldBeNil)

					again, err := repo.FindByID(ctx, m.ID())
					So(err, ShouldBeNil)
					So(again.Records(), ShouldHaveLength, len(m.Records()))
					n, err := repo.Count(ctx)
					So(err, ShouldBeNil)
					So(n, ShouldEqual, 1)
				})
			})

			Convey("When matches are listed by day", func() {
				So(repo.Save(ctx, newMatch("late", "g-1", kickoff.Add(8*time.Hour))), ShouldBeNil)
				So(repo.Save(ctx, newMatch("early", "g-1", kickoff)), ShouldBeNil)
				So(repo.Save(ctx, newMatch("next-day", "g-1", kickoff.Add(24*time.Hour))), ShouldBeNil)
				So(repo.Save(ctx, newMatch("other-group", "g-2", kickoff)), ShouldBeNil)

				got, err := repo.FindByDate(ctx, mustGroupID("g-1"), kickoff)

				Convey("Then only the group's matches of that day come back in kick-off order", func() {
					So(err, ShouldBeNil)
					So(got, ShouldHaveLength, 2)
					So(got[0].ID().String(), ShouldEqual, "early")
					So(got[1].ID().String(), ShouldEqual, "late")
				})

				Convey("Then an empty day yields no matches", func() {
					none, err := repo.FindByDate(ctx, mustGroupID("g-1"), kickoff.AddDate(0, 1, 0))
					So(err, ShouldBeNil)
					So(none, ShouldBeEmpty)
				})
			})
		})
	}
}

func TestOpenSQL(t *testing.T) {
	Convey("Given an unsupported driver", t, func() {
		_, err := repository.OpenSQL(context.Background(), "mysql", "dsn")
		So(errors.Is(err, repository.ErrUnsupportedDriver), ShouldBeTrue)
	})

	Convey("Given a sqlite database opened twice", t, func() {
		path := filepath.Join(t.TempDir(), "twice.db")
		first, err := repository.OpenSQL(context.Background(), repository.DriverSQLite, path)
		So(err, ShouldBeNil)
		So(first.Save(context.Background(), newMatch("m-1", "g-1", kickoff)), ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		second, err := repository.OpenSQL(context.Background(), repository.DriverSQLite, path)

		Convey("Then migrations are not reapplied and data survives", func() {
			So(err, ShouldBeNil)
			defer second.Close()
			n, err := second.Count(context.Background())
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})
	})
}
