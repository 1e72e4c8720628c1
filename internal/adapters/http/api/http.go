// Package api exposes the match service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/okian/pelada/internal/adapters/repository"
	service "github.com/okian/pelada/internal/app"
	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/types"
)

const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers.
type Dependencies interface {
	CreateMatch(ctx context.Context, in service.CreateMatchInput) (*match.Match, error)
	GetMatch(ctx context.Context, matchID string) (*match.Match, error)
	MatchesOnDate(ctx context.Context, groupID string, day time.Time) ([]*match.Match, error)
	Substitute(ctx context.Context, in service.SubstitutionInput) (*match.Match, error)

	RecordEvent(ctx context.Context, in service.RecordEventInput) ([]types.Effect, error)
	RecordEvents(ctx context.Context, ins []service.RecordEventInput) ([]types.Effect, error)

	// Submit queues an event for async processing. It reports duplicate for
	// an event id already accepted and fails with ErrBackpressure when full.
	Submit(ctx context.Context, in service.RecordEventInput) (eventID string, duplicate bool, err error)

	PlayerRatings(ctx context.Context, matchID string) ([]types.RatingEntry, error)
	Summary(ctx context.Context, matchID string) (types.Summary, error)
}

// Server wires HTTP routes for the match API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	matchesHandler *MatchesHandler
	eventsHandler  *EventsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		matchesHandler: NewMatchesHandler(deps),
		eventsHandler:  NewEventsHandler(deps),
	}
}

// Register attaches all HTTP routes to router.
func (s *Server) Register(router *mux.Router) {
	router.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	router.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	router.HandleFunc("/matches", MetricsMiddleware(s.matchesHandler.HandleCreate, "create_match")).Methods(http.MethodPost)
	router.HandleFunc("/matches/{id}", MetricsMiddleware(s.matchesHandler.HandleGet, "get_match")).Methods(http.MethodGet)
	router.HandleFunc("/groups/{groupID}/matches", MetricsMiddleware(s.matchesHandler.HandleListByDate, "list_matches")).Methods(http.MethodGet)
	router.HandleFunc("/matches/{id}/substitutions", MetricsMiddleware(s.matchesHandler.HandleSubstitute, "substitute")).Methods(http.MethodPost)
	router.HandleFunc("/matches/{id}/ratings", MetricsMiddleware(s.matchesHandler.HandleRatings, "ratings")).Methods(http.MethodGet)
	router.HandleFunc("/matches/{id}/summary", MetricsMiddleware(s.matchesHandler.HandleSummary, "summary")).Methods(http.MethodGet)

	router.HandleFunc("/matches/{id}/events", MetricsMiddleware(s.eventsHandler.HandleRecord, "record_event")).Methods(http.MethodPost)
	router.HandleFunc("/matches/{id}/events/batch", MetricsMiddleware(s.eventsHandler.HandleRecordBatch, "record_batch")).Methods(http.MethodPost)
	router.HandleFunc("/matches/{id}/events/async", MetricsMiddleware(s.eventsHandler.HandleSubmit, "submit_event")).Methods(http.MethodPost)
}

// NewRouter returns a router with every route registered.
func NewRouter(deps Dependencies, statsProvider StatsProvider) *mux.Router {
	router := mux.NewRouter()
	NewServer(deps, statsProvider).Register(router)
	return router
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps err to its status and code.
func writeFailure(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrMatchNotFound):
		return http.StatusNotFound, "match_not_found"
	case errors.Is(err, match.ErrPlayerNotFoundInTeam):
		return http.StatusNotFound, "player_not_found"
	case errors.Is(err, match.ErrPlayerAlreadyInTeam):
		return http.StatusConflict, "player_already_in_team"
	case errors.Is(err, service.ErrMatchExists):
		return http.StatusConflict, "match_exists"
	case errors.Is(err, service.ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrMismatch),
		errors.Is(err, model.ErrEmptyID), errors.Is(err, model.ErrUnknownStatType),
		errors.Is(err, model.ErrUnknownPosition), errors.Is(err, match.ErrInvalidRoster),
		errors.Is(err, match.ErrInvalidSide), errors.Is(err, service.ErrBatchSpansMatches),
		errors.Is(err, service.ErrBatchTooLarge):
		return http.StatusBadRequest, "invalid_input"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// decode reads a JSON body of at most maxBodyBytes into v.
func decode(w http.ResponseWriter, r *http.Request, op string, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return WrapKind(op, ErrBadRequest, err)
	}
	return nil
}
