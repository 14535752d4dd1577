package stats

import (
	"errors"
	"sort"

	"PointsSentinel/internal/model"
	"PointsSentinel/internal/vault"
)

// ErrEmptyInput is returned when aggregation is invoked with zero records.
// The syncer only aggregates accounts with at least one record, so hitting
// this indicates an orchestration bug, not a data problem.
var ErrEmptyInput = errors.New("aggregate: no records for account")

// Aggregator computes per-account derived statistics. The vault-name
// registry and season tag sets are injected configuration, not constants.
type Aggregator struct {
	vaults  *vault.Registry
	seasons model.Seasons
}

// NewAggregator creates an Aggregator with the given vault registry and
// season configuration.
func NewAggregator(vaults *vault.Registry, seasons model.Seasons) *Aggregator {
	return &Aggregator{vaults: vaults, seasons: seasons}
}

// Aggregate computes everything for one account except CurrentRank and
// PointsToNextRank, which come from the shared ranking table. All records
// must belong to the same account.
func (a *Aggregator) Aggregate(records []model.AllocationRecord) (*model.AccountStats, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	st := &model.AccountStats{Address: records[0].HolderAddress}

	vaultTotals := make(map[string]float64)
	vaultOrder := make([]string, 0, 4)
	for _, rec := range records {
		st.TotalPoints += rec.Allocation
		if a.seasons.InSeason1(rec.PointsID) {
			st.Season1Points += rec.Allocation
		}
		if a.seasons.InSeason2(rec.PointsID) {
			st.Season2Points += rec.Allocation
		}
		if _, seen := vaultTotals[rec.TokenAddress]; !seen {
			vaultOrder = append(vaultOrder, rec.TokenAddress)
		}
		vaultTotals[rec.TokenAddress] += rec.Allocation
	}

	// Stable sort: vaults with equal sums keep first-seen order, so the
	// top vault is deterministic.
	sort.SliceStable(vaultOrder, func(i, j int) bool {
		return vaultTotals[vaultOrder[i]] > vaultTotals[vaultOrder[j]]
	})
	st.UniqueVaultCount = len(vaultOrder)

	top := vaultOrder[0]
	label := a.vaults.Resolve(top)
	if label == "" {
		label = top
	}
	st.TopVault = model.TopVault{Label: label, Points: vaultTotals[top]}

	st.LongestStreak = longestStreak(records)
	return st, nil
}
