package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/okian/pelada/internal/app"
	"github.com/okian/pelada/internal/domain/types"
)

// EventDependencies defines the interface for event processing dependencies.
type EventDependencies interface {
	RecordEvent(ctx context.Context, in service.RecordEventInput) ([]types.Effect, error)
	RecordEvents(ctx context.Context, ins []service.RecordEventInput) ([]types.Effect, error)
	Submit(ctx context.Context, in service.RecordEventInput) (string, bool, error)
}

// EventsHandler handles event requests.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

type batchRequest struct {
	Events []service.RecordEventInput `json:"events"`
}

type recordResponse struct {
	MatchID string         `json:"match_id"`
	Records []types.Effect `json:"records"`
}

type ackResponse struct {
	Status    string `json:"status"`
	EventID   string `json:"event_id"`
	Duplicate bool   `json:"duplicate"`
}

// bind pins in to the match named by the path.
func bind(op, matchID string, in *service.RecordEventInput) error {
	if in.MatchID != "" && in.MatchID != matchID {
		return WrapKind(op, ErrMismatch, fmt.Errorf("event targets %s", in.MatchID))
	}
	in.MatchID = matchID
	return nil
}

// HandleRecord handles POST /matches/{id}/events.
func (h *EventsHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_event"
	var req service.RecordEventInput
	if err := decode(w, r, op, &req); err != nil {
		writeFailure(w, err)
		return
	}
	id := mux.Vars(r)["id"]
	if err := bind(op, id, &req); err != nil {
		writeFailure(w, err)
		return
	}

	effects, err := h.deps.RecordEvent(r.Context(), req)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{MatchID: id, Records: effects})
}

// HandleRecordBatch handles POST /matches/{id}/events/batch.
func (h *EventsHandler) HandleRecordBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_batch"
	var req batchRequest
	if err := decode(w, r, op, &req); err != nil {
		writeFailure(w, err)
		return
	}
	id := mux.Vars(r)["id"]
	for i := range req.Events {
		if err := bind(op, id, &req.Events[i]); err != nil {
			writeFailure(w, err)
			return
		}
	}

	effects, err := h.deps.RecordEvents(r.Context(), req.Events)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	if effects == nil {
		effects = []types.Effect{}
	}
	writeJSON(w, http.StatusCreated, recordResponse{MatchID: id, Records: effects})
}

// HandleSubmit handles POST /matches/{id}/events/async.
func (h *EventsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_event"
	var req service.RecordEventInput
	if err := decode(w, r, op, &req); err != nil {
		writeFailure(w, err)
		return
	}
	if err := bind(op, mux.Vars(r)["id"], &req); err != nil {
		writeFailure(w, err)
		return
	}

	eventID, duplicate, err := h.deps.Submit(r.Context(), req)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	if duplicate {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", EventID: eventID, Duplicate: true})
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", EventID: eventID})
}
