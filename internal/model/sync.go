package model

import "time"

// AccountError records a failure while aggregating or persisting one account.
type AccountError struct {
	Address string
	Err     error
}

// SyncResult summarizes one sync run. Rejected counts records dropped by
// per-record validation; Errors lists per-account failures. Either can be
// non-zero on a run that is otherwise successful.
type SyncResult struct {
	Processed  int
	Rejected   int
	Errors     []AccountError
	StartedAt  time.Time
	FinishedAt time.Time
}

// Seasons maps points-id tags onto campaign seasons. Configured externally
// so season changes never touch aggregation logic.
type Seasons struct {
	Season1Tags []string
	Season2Tags []string
}

// InSeason1 reports whether tag belongs to season 1.
func (s Seasons) InSeason1(tag string) bool { return contains(s.Season1Tags, tag) }

// InSeason2 reports whether tag belongs to season 2.
func (s Seasons) InSeason2(tag string) bool { return contains(s.Season2Tags, tag) }

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
