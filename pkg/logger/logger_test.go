package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized with the default format", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get and Named return usable loggers", func() {
				So(Get(), ShouldNotBeNil)
				So(Named("test"), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
				So(func() { Get().Info(context.Background(), "test message", String("k", "v")) }, ShouldNotPanic)
			})
		})

		Convey("When it is initialized with json", func() {
			So(InitWithFormat("json"), ShouldBeNil)
			So(Get(), ShouldNotBeNil)
		})

		Convey("When the format is unknown", func() {
			err := InitWithFormat("xml")
			So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a json logger on a buffer", t, func() {
		var buf bytes.Buffer
		l, err := New(&buf, "json", slog.LevelDebug)
		So(err, ShouldBeNil)

		Convey("When a structured entry is logged", func() {
			l.Named("svc").Info(context.Background(), "event recorded",
				String("match_id", "m-1"),
				Int("records", 2),
				Bool("counterpart", true),
				Duration("took", 3*time.Millisecond),
				Error(errors.New("boom")),
			)

			Convey("Then fields are grouped under the name", func() {
				var entry map[string]any
				So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
				So(entry["msg"], ShouldEqual, "event recorded")
				group, ok := entry["svc"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(group["match_id"], ShouldEqual, "m-1")
				So(group["counterpart"], ShouldEqual, true)
				So(group["source"], ShouldContainSubstring, "logger_test.go")
			})
		})
	})

	Convey("Given a text logger at warn level", t, func() {
		var buf bytes.Buffer
		l, err := New(&buf, "text", slog.LevelWarn)
		So(err, ShouldBeNil)

		l.Debug(context.Background(), "hidden")
		l.Warn(context.Background(), "shown")

		So(strings.Contains(buf.String(), "hidden"), ShouldBeFalse)
		So(strings.Contains(buf.String(), "shown"), ShouldBeTrue)
	})

	Convey("Given the nop logger", t, func() {
		So(func() { Nop().Error(context.Background(), "dropped") }, ShouldNotPanic)
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		for _, lvl := range []string{"debug", "info", "", "WARN", "warning", "error"} {
			So(SetLevelString(lvl), ShouldBeNil)
		}
		So(errors.Is(SetLevelString("loud"), ErrUnknownLevel), ShouldBeTrue)
		So(SetLevelString("info"), ShouldBeNil)
	})
}
