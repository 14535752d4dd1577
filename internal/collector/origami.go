package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"PointsSentinel/internal/model"
)

// OrigamiFetcher implements Fetcher against the Origami points REST API.
type OrigamiFetcher struct {
	BaseURL      string
	HolderFilter string
	Client       *http.Client
}

// NewOrigamiFetcher creates a new fetcher with optional proxy support.
func NewOrigamiFetcher(baseURL, holderFilter, proxyURL string) *OrigamiFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &OrigamiFetcher{
		BaseURL:      baseURL,
		HolderFilter: holderFilter,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *OrigamiFetcher) Name() string { return "origami" }

// rawAllocation is the expected JSON shape of one upstream record.
// Pointer fields distinguish missing/null values from zero values.
type rawAllocation struct {
	HolderAddress *string  `json:"holder_address"`
	Allocation    *float64 `json:"allocation"`
	PointsID      *string  `json:"points_id"`
	TokenAddress  *string  `json:"token_address"`
	Timestamp     *string  `json:"timestamp"`
}

// FetchAllocations fetches the full allocation snapshot. A non-success
// status or a payload that is not a JSON array is a *FetchError; invalid
// individual records are skipped and reported in the result.
func (f *OrigamiFetcher) FetchAllocations(ctx context.Context) (*FetchResult, error) {
	endpoint := fmt.Sprintf("%s/points_allocation?holder_address=ilike.%s", f.BaseURL, f.HolderFilter)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: endpoint, Status: resp.StatusCode}
	}

	var raw []rawAllocation
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &FetchError{URL: endpoint, Err: fmt.Errorf("decode payload: %w", err)}
	}

	result := validateRecords(raw)
	if len(result.Rejected) > 0 {
		log.Printf("[WARN] %d of %d records rejected by validation", len(result.Rejected), len(raw))
	}
	return result, nil
}

// validateRecords converts raw upstream records into model records,
// skipping and reporting any record with missing or unparsable fields.
func validateRecords(raw []rawAllocation) *FetchResult {
	result := &FetchResult{Records: make([]model.AllocationRecord, 0, len(raw))}
	for i, r := range raw {
		rec, reason := validateRecord(r)
		if reason != "" {
			result.Rejected = append(result.Rejected, RejectedRecord{Index: i, Reason: reason})
			continue
		}
		result.Records = append(result.Records, rec)
	}
	return result
}

func validateRecord(r rawAllocation) (model.AllocationRecord, string) {
	if r.HolderAddress == nil || *r.HolderAddress == "" {
		return model.AllocationRecord{}, "missing holder_address"
	}
	if r.Allocation == nil {
		return model.AllocationRecord{}, "missing allocation"
	}
	if *r.Allocation < 0 {
		return model.AllocationRecord{}, "negative allocation"
	}
	if r.PointsID == nil || *r.PointsID == "" {
		return model.AllocationRecord{}, "missing points_id"
	}
	if r.TokenAddress == nil || *r.TokenAddress == "" {
		return model.AllocationRecord{}, "missing token_address"
	}
	if r.Timestamp == nil {
		return model.AllocationRecord{}, "missing timestamp"
	}
	ts, err := parseTimestamp(*r.Timestamp)
	if err != nil {
		return model.AllocationRecord{}, fmt.Sprintf("unparsable timestamp %q", *r.Timestamp)
	}
	return model.AllocationRecord{
		HolderAddress: strings.ToLower(*r.HolderAddress),
		Allocation:    *r.Allocation,
		PointsID:      *r.PointsID,
		TokenAddress:  *r.TokenAddress,
		Timestamp:     ts,
	}, ""
}

// parseTimestamp accepts RFC3339 timestamps, with a fallback for the
// zone-less form PostgREST emits for `timestamp` columns (taken as UTC).
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
