package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	service "github.com/okian/pelada/internal/app"
	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/types"
)

const dateLayout = "2006-01-02"

// MatchDependencies defines the match read and roster operations.
type MatchDependencies interface {
	CreateMatch(ctx context.Context, in service.CreateMatchInput) (*match.Match, error)
	GetMatch(ctx context.Context, matchID string) (*match.Match, error)
	MatchesOnDate(ctx context.Context, groupID string, day time.Time) ([]*match.Match, error)
	Substitute(ctx context.Context, in service.SubstitutionInput) (*match.Match, error)
	PlayerRatings(ctx context.Context, matchID string) ([]types.RatingEntry, error)
	Summary(ctx context.Context, matchID string) (types.Summary, error)
}

// MatchesHandler handles match requests.
type MatchesHandler struct {
	deps MatchDependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchDependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

type listResponse struct {
	Matches []types.MatchView `json:"matches"`
}

type ratingsResponse struct {
	MatchID string              `json:"match_id"`
	Ratings []types.RatingEntry `json:"ratings"`
}

// HandleCreate handles POST /matches.
func (h *MatchesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_match"
	var req service.CreateMatchInput
	if err := decode(w, r, op, &req); err != nil {
		writeFailure(w, err)
		return
	}
	m, err := h.deps.CreateMatch(r.Context(), req)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, match.View(m))
}

// HandleGet handles GET /matches/{id}.
func (h *MatchesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.deps.GetMatch(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, Wrap("api.get_match", err))
		return
	}
	writeJSON(w, http.StatusOK, match.View(m))
}

// HandleListByDate handles GET /groups/{groupID}/matches?date=YYYY-MM-DD.
func (h *MatchesHandler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_matches"
	raw := r.URL.Query().Get("date")
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	ms, err := h.deps.MatchesOnDate(r.Context(), mux.Vars(r)["groupID"], day)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	resp := listResponse{Matches: make([]types.MatchView, 0, len(ms))}
	for _, m := range ms {
		resp.Matches = append(resp.Matches, match.View(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSubstitute handles POST /matches/{id}/substitutions.
func (h *MatchesHandler) HandleSubstitute(w http.ResponseWriter, r *http.Request) {
	const op = "api.substitute"
	var req service.SubstitutionInput
	if err := decode(w, r, op, &req); err != nil {
		writeFailure(w, err)
		return
	}
	id := mux.Vars(r)["id"]
	if req.MatchID != "" && req.MatchID != id {
		writeFailure(w, NewKind(op, ErrMismatch))
		return
	}
	req.MatchID = id

	m, err := h.deps.Substitute(r.Context(), req)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, match.View(m))
}

// HandleRatings handles GET /matches/{id}/ratings.
func (h *MatchesHandler) HandleRatings(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entries, err := h.deps.PlayerRatings(r.Context(), id)
	if err != nil {
		writeFailure(w, Wrap("api.ratings", err))
		return
	}
	writeJSON(w, http.StatusOK, ratingsResponse{MatchID: id, Ratings: entries})
}

// HandleSummary handles GET /matches/{id}/summary.
func (h *MatchesHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Summary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeFailure(w, Wrap("api.summary", err))
		return
	}
	writeJSON(w, http.StatusOK, s)
}
