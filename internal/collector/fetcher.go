package collector

import (
	"context"
	"fmt"

	"PointsSentinel/internal/model"
)

// RejectedRecord describes a single upstream record dropped by validation.
// The policy is skip-and-report: one bad record never aborts a run, but it
// is surfaced in the run summary rather than silently dropped.
type RejectedRecord struct {
	Index  int
	Reason string
}

// FetchResult is one complete upstream snapshot: the valid records plus
// whatever was rejected by per-record validation.
type FetchResult struct {
	Records  []model.AllocationRecord
	Rejected []RejectedRecord
}

// Fetcher defines the interface for fetching allocation records.
type Fetcher interface {
	FetchAllocations(ctx context.Context) (*FetchResult, error)
	Name() string
}

// FetchError indicates the upstream source was unreachable, returned a
// non-success status, or returned a malformed top-level payload. Fatal to
// the sync run: nothing is persisted.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
