package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/pelada/internal/adapters/repository"
	"github.com/okian/pelada/internal/config"
	"github.com/okian/pelada/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestOpenRepository(t *testing.T) {
	convey.Convey("Given a configuration", t, func() {
		ctx := context.Background()
		cfg := config.New()

		convey.Convey("When the memory driver is selected", func() {
			repo, closer, err := openRepository(ctx, cfg)

			convey.Convey("Then an in-memory store is returned", func() {
				convey.So(err, convey.ShouldBeNil)
				_, ok := repo.(*repository.MemoryStore)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(closer.Close(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the sqlite driver is selected", func() {
			cfg.StorageDriver = config.StorageSQLite
			cfg.StorageDSN = filepath.Join(t.TempDir(), "pelada.db")
			repo, closer, err := openRepository(ctx, cfg)

			convey.Convey("Then a migrated SQL store is returned", func() {
				convey.So(err, convey.ShouldBeNil)
				n, err := repo.Count(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 0)
				convey.So(closer.Close(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the driver is unknown", func() {
			cfg.StorageDriver = "mongo"
			_, _, err := openRepository(ctx, cfg)

			convey.Convey("Then it is rejected", func() {
				convey.So(errors.Is(err, repository.ErrUnsupportedDriver), convey.ShouldBeTrue)
			})
		})
	})
}

func TestRouterWiring(t *testing.T) {
	convey.Convey("Given a service built from the defaults", t, func() {
		cfg := config.New()
		svc := newService(cfg, repository.NewMemoryStore(), logger.Nop())
		router := newRouter(svc, logger.Nop())

		convey.Convey("When a match is created over HTTP", func() {
			body := `{"id": "m-1", "group_id": "g-1",
				"team_a": {"players": [{"id": "p-1", "name": "One"}]},
				"team_b": {"players": [{"id": "p-2", "name": "Two"}]}}`
			req := httptest.NewRequest(http.MethodPost, "/matches", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			convey.Convey("Then it is stored", func() {
				convey.So(rec.Code, convey.ShouldEqual, http.StatusCreated)
				m, err := svc.GetMatch(context.Background(), "m-1")
				convey.So(err, convey.ShouldBeNil)
				convey.So(m.TeamA().Len(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When system metrics are refreshed", func() {
			updateSystemMetrics()

			convey.Convey("Then health exposes them", func() {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(rec.Body.String(), convey.ShouldContainSubstring, "goroutine")
			})
		})
	})
}
