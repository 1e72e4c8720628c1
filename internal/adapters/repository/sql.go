package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/okian/pelada/internal/domain/match"
	"github.com/okian/pelada/internal/domain/model"
)

// Driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// insertChunk keeps multi-row inserts under sqlite's bound-variable limit.
const insertChunk = 500

// SQLStore persists matches in sqlite or postgres. A match is written as one
// transaction that upserts the match row and replaces its players and stats.
type SQLStore struct {
	db  *sqlx.DB
	sq  squirrel.StatementBuilderType
	now func() time.Time
}

// OpenSQL connects to driver/dsn and applies the schema.
func OpenSQL(ctx context.Context, driver, dsn string, opts ...Option) (*SQLStore, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("%q: %w", driver, ErrUnsupportedDriver)
	}
	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// sqlite allows a single writer; a shared connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	s, err := NewSQLStore(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open connection and applies the schema.
func NewSQLStore(ctx context.Context, db *sqlx.DB, opts ...Option) (*SQLStore, error) {
	o := newOptions(opts)
	s := &SQLStore{db: db, now: o.now}
	switch db.DriverName() {
	case DriverPostgres:
		s.sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	case DriverSQLite:
		s.sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	default:
		return nil, fmt.Errorf("%q: %w", db.DriverName(), ErrUnsupportedDriver)
	}
	if err := s.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// Close closes the database handle.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type transactionCallback func(*sqlx.Tx) error

func (s *SQLStore) transaction(ctx context.Context, cb transactionCallback) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			return fmt.Errorf("rollback error: %s\noriginal error: %w", err2, err)
		}
		return err
	}

	return tx.Commit()
}

func (s *SQLStore) Save(ctx context.Context, m *match.Match) (err error) {
	defer observe("save", time.Now(), &err)

	snap := toSnapshot(m, toMillis(s.now()))
	return s.transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.upsertMatch(ctx, tx, snap.match); err != nil {
			return err
		}
		if err := s.replacePlayers(ctx, tx, snap.match.ID, snap.players); err != nil {
			return err
		}
		return s.replaceStats(ctx, tx, snap.match.ID, snap.stats)
	})
}

func (s *SQLStore) upsertMatch(ctx context.Context, tx *sqlx.Tx, row matchRow) error {
	query, args, err := s.sq.Insert("matches").
		Columns("id", "group_id", "team_a_id", "team_b_id", "played_at", "created_at", "updated_at").
		Values(row.ID, row.GroupID, row.TeamAID, row.TeamBID, row.PlayedAt, row.CreatedAt, row.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			group_id = excluded.group_id,
			team_a_id = excluded.team_a_id,
			team_b_id = excluded.team_b_id,
			played_at = excluded.played_at,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match %s: %w", row.ID, err)
	}
	return nil
}

func (s *SQLStore) replacePlayers(ctx context.Context, tx *sqlx.Tx, matchID string, rows []playerRow) error {
	if err := s.deleteChildren(ctx, tx, "match_players", matchID); err != nil {
		return err
	}
	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		b := s.sq.Insert("match_players").
			Columns("id", "match_id", "side", "roster_order", "player_id", "name", "position", "presence", "rating")
		for _, r := range rows[start:end] {
			b = b.Values(r.ID, r.MatchID, r.Side, r.RosterOrder, r.PlayerID, r.Name, r.Position, r.Presence, r.Rating)
		}
		query, args, err := b.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert players of %s: %w", matchID, err)
		}
	}
	return nil
}

func (s *SQLStore) replaceStats(ctx context.Context, tx *sqlx.Tx, matchID string, rows []statRow) error {
	if err := s.deleteChildren(ctx, tx, "match_stats", matchID); err != nil {
		return err
	}
	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		b := s.sq.Insert("match_stats").
			Columns("id", "match_id", "seq", "player_id", "type", "value", "weight", "impact")
		for _, r := range rows[start:end] {
			b = b.Values(r.ID, r.MatchID, r.Seq, r.PlayerID, r.Type, r.Value, r.Weight, r.Impact)
		}
		query, args, err := b.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert stats of %s: %w", matchID, err)
		}
	}
	return nil
}

func (s *SQLStore) deleteChildren(ctx context.Context, tx *sqlx.Tx, table, matchID string) error {
	query, args, err := s.sq.Delete(table).Where(squirrel.Eq{"match_id": matchID}).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s of %s: %w", table, matchID, err)
	}
	return nil
}

func (s *SQLStore) FindByID(ctx context.Context, id model.MatchID) (m *match.Match, err error) {
	defer observe("find_by_id", time.Now(), &err)

	snap, err := s.loadSnapshot(ctx, id.String())
	if err != nil {
		return nil, err
	}
	return fromSnapshot(snap)
}

func (s *SQLStore) loadSnapshot(ctx context.Context, id string) (snapshot, error) {
	var snap snapshot

	query, args, err := s.sq.Select("id", "group_id", "team_a_id", "team_b_id", "played_at", "created_at", "updated_at").
		From("matches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return snap, err
	}
	if err := s.db.GetContext(ctx, &snap.match, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snap, fmt.Errorf("%s: %w", id, ErrMatchNotFound)
		}
		return snap, fmt.Errorf("load match %s: %w", id, err)
	}

	query, args, err = s.sq.Select("id", "match_id", "side", "roster_order", "player_id", "name", "position", "presence", "rating").
		From("match_players").
		Where(squirrel.Eq{"match_id": id}).
		OrderBy("side", "roster_order").
		ToSql()
	if err != nil {
		return snap, err
	}
	if err := s.db.SelectContext(ctx, &snap.players, query, args...); err != nil {
		return snap, fmt.Errorf("load players of %s: %w", id, err)
	}

	query, args, err = s.sq.Select("id", "match_id", "seq", "player_id", "type", "value", "weight", "impact").
		From("match_stats").
		Where(squirrel.Eq{"match_id": id}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return snap, err
	}
	if err := s.db.SelectContext(ctx, &snap.stats, query, args...); err != nil {
		return snap, fmt.Errorf("load stats of %s: %w", id, err)
	}
	return snap, nil
}

func (s *SQLStore) FindByDate(ctx context.Context, groupID model.GroupID, day time.Time) (out []*match.Match, err error) {
	defer observe("find_by_date", time.Now(), &err)

	start, end := dayBounds(day)
	query, args, err := s.sq.Select("id").
		From("matches").
		Where(squirrel.Eq{"group_id": groupID.String()}).
		Where(squirrel.GtOrEq{"played_at": toMillis(start)}).
		Where(squirrel.Lt{"played_at": toMillis(end)}).
		OrderBy("played_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := s.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list matches of %s: %w", groupID, err)
	}

	out = make([]*match.Match, 0, len(ids))
	for _, id := range ids {
		snap, err := s.loadSnapshot(ctx, id)
		if err != nil {
			return nil, err
		}
		m, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	query, args, err := s.sq.Select("COUNT(*)").From("matches").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}
