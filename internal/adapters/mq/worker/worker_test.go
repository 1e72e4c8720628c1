package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	queue "github.com/okian/pelada/internal/adapters/mq/queue"
	worker "github.com/okian/pelada/internal/adapters/mq/worker"
	model "github.com/okian/pelada/internal/domain/model"
	logging "github.com/okian/pelada/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

var errRejected = errors.New("rejected")

// mockRecorder stores applied events per match in arrival order.
type mockRecorder struct {
	mu      sync.Mutex
	applied map[string][]string
	reject  map[string]bool
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{
		applied: make(map[string][]string),
		reject:  make(map[string]bool),
	}
}

func (r *mockRecorder) Apply(_ context.Context, e worker.Event) error { //nolint:gocritic // hugeParam: Event is passed by value
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reject[e.EventID] {
		return errRejected
	}
	r.applied[e.MatchID.String()] = append(r.applied[e.MatchID.String()], e.EventID)
	return nil
}

func (r *mockRecorder) events(matchID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.applied[matchID]...)
}

func (r *mockRecorder) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ids := range r.applied {
		n += len(ids)
	}
	return n
}

type mockQueue struct {
	eventChan chan worker.Event
}

func newMockQueue(size int) *mockQueue {
	return &mockQueue{eventChan: make(chan worker.Event, size)}
}

func (mq *mockQueue) Dequeue(context.Context) <-chan worker.Event { return mq.eventChan }

func (mq *mockQueue) Close() error {
	close(mq.eventChan)
	return nil
}

func event(matchID, eventID string) worker.Event {
	id, _ := model.NewMatchID(matchID)
	return worker.Event{
		EventID:  eventID,
		MatchID:  id,
		PlayerID: model.MustPlayerID("p1"),
		StatType: model.StatPassCompleted,
		TS:       time.Now(),
	}
}

func TestLaneFor(t *testing.T) {
	convey.Convey("LaneFor", t, func() {
		convey.Convey("is stable for a match id", func() {
			for i := 0; i < 10; i++ {
				convey.So(worker.LaneFor("match-42", 8), convey.ShouldEqual, worker.LaneFor("match-42", 8))
			}
		})

		convey.Convey("stays within the lane count", func() {
			for i := 0; i < 200; i++ {
				lane := worker.LaneFor(fmt.Sprintf("match-%d", i), 7)
				convey.So(lane, convey.ShouldBeBetweenOrEqual, 0, 6)
			}
		})

		convey.Convey("a single lane takes everything", func() {
			convey.So(worker.LaneFor("a", 1), convey.ShouldEqual, 0)
			convey.So(worker.LaneFor("b", 1), convey.ShouldEqual, 0)
		})
	})
}

func TestInMemoryWorker(t *testing.T) {
	convey.Convey("InMemoryWorker", t, func() {
		ctx := context.Background()
		q := newMockQueue(10)
		rec := newMockRecorder()
		w := worker.NewInMemoryWorker(q, rec, worker.WithName("test"), worker.WithLogger(logging.Nop()))

		convey.Convey("applies events until the source closes", func() {
			q.eventChan <- event("m1", "e1")
			q.eventChan <- event("m1", "e2")
			rec.reject["e3"] = true
			q.eventChan <- event("m1", "e3")
			_ = q.Close()

			w.Run(ctx)

			convey.So(rec.events("m1"), convey.ShouldResemble, []string{"e1", "e2"})
			convey.So(w.Processed(), convey.ShouldEqual, int64(2))
			convey.So(w.Failed(), convey.ShouldEqual, int64(1))
		})

		convey.Convey("stops on shutdown", func() {
			go w.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			convey.So(w.Shutdown(shutdownCtx), convey.ShouldBeNil)
		})

		convey.Convey("stops when the context is canceled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan struct{})
			go func() {
				w.Run(runCtx)
				close(done)
			}()
			cancel()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("worker did not stop")
			}
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Pool", t, func() {
		ctx := context.Background()
		q := queue.NewInMemoryQueue(queue.WithCapacity(1000))
		rec := newMockRecorder()
		pool := worker.NewPool(4, q, rec, worker.WithLogger(logging.Nop()))

		convey.So(pool.Size(), convey.ShouldEqual, 4)

		convey.Convey("keeps per-match arrival order", func() {
			pool.Start(ctx)

			matches := []string{"m-a", "m-b", "m-c", "m-d", "m-e"}
			for i := 0; i < 50; i++ {
				for _, m := range matches {
					convey.So(q.Enqueue(ctx, event(m, fmt.Sprintf("%s-%02d", m, i))), convey.ShouldBeNil)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			convey.So(pool.Shutdown(shutdownCtx), convey.ShouldBeNil)

			convey.So(rec.total(), convey.ShouldEqual, 250)
			convey.So(pool.Processed(), convey.ShouldEqual, int64(250))
			for _, m := range matches {
				got := rec.events(m)
				convey.So(len(got), convey.ShouldEqual, 50)
				for i, id := range got {
					convey.So(id, convey.ShouldEqual, fmt.Sprintf("%s-%02d", m, i))
				}
			}
		})

		convey.Convey("counts rejected events", func() {
			rec.reject["bad"] = true
			pool.Start(ctx)

			convey.So(q.Enqueue(ctx, event("m1", "good")), convey.ShouldBeNil)
			convey.So(q.Enqueue(ctx, event("m1", "bad")), convey.ShouldBeNil)

			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			convey.So(pool.Shutdown(shutdownCtx), convey.ShouldBeNil)

			convey.So(pool.Processed(), convey.ShouldEqual, int64(1))
			convey.So(pool.Failed(), convey.ShouldEqual, int64(1))
		})

		convey.Convey("a non-positive count falls back to one worker per CPU", func() {
			p := worker.NewPool(0, newMockQueue(1), rec, worker.WithLogger(logging.Nop()))
			convey.So(p.Size(), convey.ShouldBeGreaterThan, 0)
		})
	})
}
