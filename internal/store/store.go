// Package store persists per-account stats snapshots keyed by lowercased
// holder address.
package store

import (
	"context"
	"errors"
	"time"

	"PointsSentinel/internal/model"
)

// ErrNotFound is returned when no stats exist for an address, or when the
// store has never been written to.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned for nil or unkeyed stats records.
var ErrInvalidInput = errors.New("invalid input")

// Store persists AccountStats snapshots. Each sync run fully replaces an
// account's row; there is no merging of old and new stats.
type Store interface {
	// UpsertStats inserts or replaces the stats row for stats.Address.
	UpsertStats(ctx context.Context, stats *model.AccountStats) error
	// GetStats returns the stored stats for an address (case-insensitive).
	// Returns ErrNotFound when the address has no row.
	GetStats(ctx context.Context, address string) (*model.AccountStats, error)
	// LastUpdated returns the most recent update instant across all rows,
	// for cache-age display. Returns ErrNotFound on an empty store.
	LastUpdated(ctx context.Context) (time.Time, error)
	Close()
}
