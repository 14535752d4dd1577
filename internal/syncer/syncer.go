// Package syncer drives one full sync pass: fetch the complete allocation
// snapshot, rank all accounts once, aggregate each account, persist.
package syncer

import (
	"context"
	"fmt"
	"log"
	"time"

	"PointsSentinel/internal/collector"
	"PointsSentinel/internal/model"
	"PointsSentinel/internal/stats"
	"PointsSentinel/internal/store"
)

// Syncer runs sync passes. It assumes the caller guarantees at most one
// concurrent run; the scheduler holds the single-flight guard.
type Syncer struct {
	Fetcher    collector.Fetcher
	Store      store.Store
	Aggregator *stats.Aggregator
}

// New creates a Syncer.
func New(fetcher collector.Fetcher, st store.Store, agg *stats.Aggregator) *Syncer {
	return &Syncer{Fetcher: fetcher, Store: st, Aggregator: agg}
}

// Run executes one sync pass. A fetch failure aborts the run with nothing
// persisted. A failure on one account is recorded in the result and does
// not stop the remaining accounts.
func (s *Syncer) Run(ctx context.Context) (*model.SyncResult, error) {
	result := &model.SyncResult{StartedAt: time.Now().UTC()}

	fetched, err := s.Fetcher.FetchAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync aborted: %w", err)
	}
	result.Rejected = len(fetched.Rejected)
	records := fetched.Records
	log.Printf("[INFO] fetched %d records (%d rejected)", len(records), result.Rejected)

	// Ranking table is computed once over the full record set and is
	// read-only for the rest of the run.
	table := stats.Rank(records)

	byAccount := groupByAccount(records)
	for i, entry := range table {
		st, err := s.Aggregator.Aggregate(byAccount[entry.Address])
		if err != nil {
			result.Errors = append(result.Errors, model.AccountError{Address: entry.Address, Err: err})
			continue
		}
		st.CurrentRank = i + 1
		st.PointsToNextRank = stats.PointsToNextRank(st.CurrentRank, table, st.TotalPoints)
		st.UpdatedAt = time.Now().UTC()

		if err := s.Store.UpsertStats(ctx, st); err != nil {
			result.Errors = append(result.Errors, model.AccountError{Address: entry.Address, Err: err})
			continue
		}
		result.Processed++
	}

	result.FinishedAt = time.Now().UTC()
	log.Printf("[INFO] sync finished: %d accounts persisted, %d failed, took %s",
		result.Processed, len(result.Errors), result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))
	return result, nil
}

// groupByAccount partitions records by holder address. Addresses arrive
// already lowercased from the collector.
func groupByAccount(records []model.AllocationRecord) map[string][]model.AllocationRecord {
	groups := make(map[string][]model.AllocationRecord)
	for _, rec := range records {
		groups[rec.HolderAddress] = append(groups[rec.HolderAddress], rec)
	}
	return groups
}
