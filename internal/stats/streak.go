package stats

import (
	"sort"
	"time"

	"PointsSentinel/internal/model"
)

// longestStreak returns the length in days of the longest run of
// consecutive UTC calendar days on which the account has at least one
// record. Days are bucketed by UTC date regardless of the process
// timezone, so the result is environment-independent. A single active
// day yields 1.
func longestStreak(records []model.AllocationRecord) int {
	seen := make(map[int64]struct{}, len(records))
	days := make([]int64, 0, len(records))
	for _, rec := range records {
		d := utcDay(rec)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	// Count consecutive one-day gaps; the longest run of gaps plus one is
	// the longest run of days.
	longest, run := 0, 0
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest + 1
}

// utcDay returns the record's UTC calendar day as days since the Unix epoch.
func utcDay(rec model.AllocationRecord) int64 {
	t := rec.Timestamp.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / 86400
}
