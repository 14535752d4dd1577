// Package stats implements the aggregation and ranking core: pure,
// deterministic computation from allocation records to per-account
// statistics. No I/O happens here.
package stats

import (
	"sort"

	"PointsSentinel/internal/model"
)

// Rank builds the global ranking table from the complete record set:
// records are grouped by holder address, each group's allocations are
// summed, and the groups are ordered by total points descending. An
// account's rank is its 1-based position in the returned table.
//
// Accounts with equal totals keep their first-seen input order (stable
// sort, no secondary key invented). Computed once per sync run and
// shared by every per-account computation.
func Rank(records []model.AllocationRecord) []model.RankEntry {
	totals := make(map[string]float64, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		if _, seen := totals[rec.HolderAddress]; !seen {
			order = append(order, rec.HolderAddress)
		}
		totals[rec.HolderAddress] += rec.Allocation
	}

	table := make([]model.RankEntry, 0, len(order))
	for _, addr := range order {
		table = append(table, model.RankEntry{Address: addr, TotalPoints: totals[addr]})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].TotalPoints > table[j].TotalPoints
	})
	return table
}

// RankOf returns the 1-based rank of address in the table, or 0 when the
// address is absent (an account with no records has no rank).
func RankOf(table []model.RankEntry, address string) int {
	for i, e := range table {
		if e.Address == address {
			return i + 1
		}
	}
	return 0
}

// PointsToNextRank returns the non-negative gap between an account's
// total and the aggregate total of the account one rank above it in the
// table. Rank 1 has no account above and gets 0.
func PointsToNextRank(rank int, table []model.RankEntry, ownTotal float64) float64 {
	if rank <= 1 || rank-2 >= len(table) {
		return 0
	}
	gap := table[rank-2].TotalPoints - ownTotal
	if gap < 0 {
		return 0
	}
	return gap
}
