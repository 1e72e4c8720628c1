package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pelada/internal/adapters/repository"
	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
	"github.com/okian/pelada/internal/domain/types"
	"github.com/okian/pelada/pkg/logger"
	"github.com/okian/pelada/pkg/metrics"
)

// CreateMatch builds both rosters and stores a new match.
func (s *Service) CreateMatch(ctx context.Context, in CreateMatchInput) (*match.Match, error) {
	rawID := in.ID
	if rawID == "" {
		rawID = uuid.NewString()
	}
	id, err := model.NewMatchID(rawID)
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}
	groupID, err := model.NewGroupID(in.GroupID)
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}
	teamA, err := in.TeamA.build(uuid.NewString())
	if err != nil {
		return nil, s.fail(ctx, "create", fmt.Errorf("team A: %w", err))
	}
	teamB, err := in.TeamB.build(uuid.NewString())
	if err != nil {
		return nil, s.fail(ctx, "create", fmt.Errorf("team B: %w", err))
	}
	playedAt := in.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	m, err := match.New(id, groupID, teamA, teamB, playedAt.UTC())
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}

	release := s.locks.lock(id)
	defer release()

	if _, err := s.repo.FindByID(ctx, id); err == nil {
		return nil, s.fail(ctx, "create", fmt.Errorf("match %s: %w", id, ErrMatchExists))
	} else if !errors.Is(err, repository.ErrMatchNotFound) {
		return nil, s.fail(ctx, "create", err)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, s.fail(ctx, "create", err)
	}

	metrics.RecordMatchCreated()
	s.logger.Info(ctx, "match created",
		logger.String("match_id", id.String()),
		logger.String("group_id", groupID.String()),
		logger.Int("team_a", teamA.Len()),
		logger.Int("team_b", teamB.Len()),
	)
	return m, nil
}

// GetMatch loads one match.
func (s *Service) GetMatch(ctx context.Context, matchID string) (*match.Match, error) {
	id, err := model.NewMatchID(matchID)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	return m, nil
}

// MatchesOnDate lists a group's matches played on day's calendar date.
func (s *Service) MatchesOnDate(ctx context.Context, groupID string, day time.Time) ([]*match.Match, error) {
	gid, err := model.NewGroupID(groupID)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	ms, err := s.repo.FindByDate(ctx, gid, day)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	return ms, nil
}

// Substitute swaps a roster member for a new player on one side.
func (s *Service) Substitute(ctx context.Context, in SubstitutionInput) (*match.Match, error) {
	id, err := model.NewMatchID(in.MatchID)
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	side, err := match.ParseSide(in.Side)
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	outID, err := model.NewPlayerID(in.Out)
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	incoming, err := in.In.build()
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}

	release := s.locks.lock(id)
	defer release()

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	team, err := m.Team(side)
	if err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	outgoing, ok := team.Find(outID)
	if !ok {
		return nil, s.fail(ctx, "substitute",
			fmt.Errorf("match %s, side %s, player %s: %w", id, side, outID, match.ErrPlayerNotFoundInTeam))
	}
	if err := m.Substitute(side, outgoing, incoming); err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, s.fail(ctx, "substitute", err)
	}

	metrics.RecordSubstitution()
	s.logger.Info(ctx, "player substituted",
		logger.String("match_id", id.String()),
		logger.String("side", string(side)),
		logger.String("out", outID.String()),
		logger.String("in", incoming.ID().String()),
	)
	return m, nil
}

// PlayerRatings ranks every player of the match by rating.
func (s *Service) PlayerRatings(ctx context.Context, matchID string) ([]types.RatingEntry, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return match.Ratings(m), nil
}

// Summary returns the scoreline and goal contributions of the match.
func (s *Service) Summary(ctx context.Context, matchID string) (types.Summary, error) {
	m, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return types.Summary{}, err
	}
	return match.Summarize(m), nil
}

// fail counts and logs err under op and returns it unchanged.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	kind := errorKind(err)
	metrics.RecordDomainError(kind)
	s.logger.Debug(ctx, "operation failed",
		logger.String("op", op),
		logger.String("kind", kind),
		logger.Error(err),
	)
	return err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, repository.ErrMatchNotFound):
		return "match_not_found"
	case errors.Is(err, match.ErrPlayerNotFoundInTeam):
		return "player_not_found"
	case errors.Is(err, match.ErrPlayerAlreadyInTeam):
		return "player_already_in_team"
	case errors.Is(err, ErrMatchExists):
		return "match_exists"
	case errors.Is(err, ErrBackpressure):
		return "backpressure"
	case errors.Is(err, model.ErrUnknownStatType):
		return "unknown_stat_type"
	case errors.Is(err, ErrBatchSpansMatches), errors.Is(err, ErrBatchTooLarge),
		errors.Is(err, model.ErrEmptyID), errors.Is(err, model.ErrUnknownPosition),
		errors.Is(err, match.ErrInvalidRoster), errors.Is(err, match.ErrInvalidSide):
		return "invalid_input"
	default:
		return "internal"
	}
}
