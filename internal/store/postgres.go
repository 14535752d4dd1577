package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"PointsSentinel/internal/model"
)

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Compile-time interface check.
var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to Postgres and ensures the schema exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("[INFO] postgres store ready")
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS points_data (
			holder_address      TEXT PRIMARY KEY,
			total_points        DOUBLE PRECISION,
			season1_points      DOUBLE PRECISION,
			season2_points      DOUBLE PRECISION,
			rank                INTEGER,
			points_to_next_rank DOUBLE PRECISION,
			longest_streak      INTEGER,
			unique_vault_count  INTEGER,
			top_vault           TEXT,
			top_vault_points    DOUBLE PRECISION,
			last_updated        TIMESTAMP WITH TIME ZONE
		)
	`)
	return err
}

// UpsertStats fully replaces the row for stats.Address.
func (s *PostgresStore) UpsertStats(ctx context.Context, stats *model.AccountStats) error {
	if stats == nil || stats.Address == "" {
		return ErrInvalidInput
	}

	query := `
		INSERT INTO points_data
		(holder_address, total_points, season1_points, season2_points,
		 rank, points_to_next_rank, longest_streak, unique_vault_count,
		 top_vault, top_vault_points, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (holder_address) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			season1_points = EXCLUDED.season1_points,
			season2_points = EXCLUDED.season2_points,
			rank = EXCLUDED.rank,
			points_to_next_rank = EXCLUDED.points_to_next_rank,
			longest_streak = EXCLUDED.longest_streak,
			unique_vault_count = EXCLUDED.unique_vault_count,
			top_vault = EXCLUDED.top_vault,
			top_vault_points = EXCLUDED.top_vault_points,
			last_updated = EXCLUDED.last_updated
	`
	_, err := s.pool.Exec(ctx, query,
		strings.ToLower(stats.Address),
		stats.TotalPoints,
		stats.Season1Points,
		stats.Season2Points,
		stats.CurrentRank,
		stats.PointsToNextRank,
		stats.LongestStreak,
		stats.UniqueVaultCount,
		stats.TopVault.Label,
		stats.TopVault.Points,
		stats.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stats: %w", err)
	}
	return nil
}

// GetStats retrieves the stats row for an address. Returns ErrNotFound
// when no row exists.
func (s *PostgresStore) GetStats(ctx context.Context, address string) (*model.AccountStats, error) {
	query := `
		SELECT holder_address, total_points, season1_points, season2_points,
		       rank, points_to_next_rank, longest_streak, unique_vault_count,
		       top_vault, top_vault_points, last_updated
		FROM points_data
		WHERE holder_address = $1
	`
	row := s.pool.QueryRow(ctx, query, strings.ToLower(address))

	var st model.AccountStats
	err := row.Scan(
		&st.Address,
		&st.TotalPoints,
		&st.Season1Points,
		&st.Season2Points,
		&st.CurrentRank,
		&st.PointsToNextRank,
		&st.LongestStreak,
		&st.UniqueVaultCount,
		&st.TopVault.Label,
		&st.TopVault.Points,
		&st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return &st, nil
}

// LastUpdated returns the most recent last_updated across all rows.
func (s *PostgresStore) LastUpdated(ctx context.Context) (time.Time, error) {
	var last *time.Time
	err := s.pool.QueryRow(ctx, `SELECT MAX(last_updated) FROM points_data`).Scan(&last)
	if err != nil {
		return time.Time{}, fmt.Errorf("last updated: %w", err)
	}
	if last == nil {
		return time.Time{}, ErrNotFound
	}
	return *last, nil
}

func (s *PostgresStore) Close() {
	log.Println("[INFO] closing postgres store")
	s.pool.Close()
}
