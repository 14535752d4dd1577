package stats

import (
	"errors"
	"testing"

	"PointsSentinel/internal/model"
	"PointsSentinel/internal/vault"
)

func testSeasons() model.Seasons {
	return model.Seasons{
		Season1Tags: []string{"P-1", "P-2"},
		Season2Tags: []string{"P-6"},
	}
}

func TestAggregate_SeasonsAndTotals(t *testing.T) {
	agg := NewAggregator(vault.NewRegistry(nil), testSeasons())
	st, err := agg.Aggregate([]model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xa", 5, "P-6", "V1", 2),
		rec("0xa", 3, "P-9", "V1", 2), // outside both seasons
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TotalPoints != 18 {
		t.Errorf("expected total 18, got %v", st.TotalPoints)
	}
	if st.Season1Points != 10 {
		t.Errorf("expected season1 10, got %v", st.Season1Points)
	}
	if st.Season2Points != 5 {
		t.Errorf("expected season2 5, got %v", st.Season2Points)
	}
	if st.Address != "0xa" {
		t.Errorf("expected address 0xa, got %s", st.Address)
	}
}

func TestAggregate_VaultBreakdown(t *testing.T) {
	registry := vault.NewRegistry(map[string]string{"V2": "lov-sUSDe-a"})
	agg := NewAggregator(registry, testSeasons())
	st, err := agg.Aggregate([]model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xa", 20, "P-1", "V2", 1),
		rec("0xa", 5, "P-1", "V2", 2),
		rec("0xa", 1, "P-1", "V3", 3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.UniqueVaultCount != 3 {
		t.Errorf("expected 3 unique vaults, got %d", st.UniqueVaultCount)
	}
	if st.TopVault.Label != "lov-sUSDe-a" || st.TopVault.Points != 25 {
		t.Errorf("expected top vault lov-sUSDe-a with 25, got %+v", st.TopVault)
	}
}

func TestAggregate_VaultTieFirstSeenWins(t *testing.T) {
	agg := NewAggregator(vault.NewRegistry(nil), testSeasons())
	st, err := agg.Aggregate([]model.AllocationRecord{
		rec("0xa", 10, "P-1", "VaultB", 1),
		rec("0xa", 10, "P-1", "VaultA", 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both vaults sum to 10; the first-encountered vault stays on top.
	if st.TopVault.Label != "VaultB" {
		t.Errorf("expected first-seen VaultB as top vault, got %s", st.TopVault.Label)
	}
}

func TestAggregate_UnknownVaultFallsBackToShortenedID(t *testing.T) {
	agg := NewAggregator(vault.NewRegistry(nil), testSeasons())
	st, err := agg.Aggregate([]model.AllocationRecord{
		rec("0xa", 10, "P-1", "0x1234567890abcdef", 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.TopVault.Label != "0x1234...cdef" {
		t.Errorf("expected shortened fallback, got %s", st.TopVault.Label)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := NewAggregator(vault.NewRegistry(nil), testSeasons())
	_, err := agg.Aggregate(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	agg := NewAggregator(vault.NewRegistry(nil), testSeasons())
	records := []model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xa", 5, "P-6", "V2", 2),
	}
	first, err := agg.Aggregate(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := agg.Aggregate(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *first != *second {
		t.Errorf("aggregation not idempotent: %+v vs %+v", first, second)
	}
}
