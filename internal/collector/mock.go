package collector

import (
	"context"

	"PointsSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Records  []model.AllocationRecord
	Rejected []RejectedRecord
	Err      error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchAllocations(_ context.Context) (*FetchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &FetchResult{Records: m.Records, Rejected: m.Rejected}, nil
}
