package stats

import (
	"testing"
	"time"

	"PointsSentinel/internal/model"
)

func rec(addr string, alloc float64, pointsID, token string, day int) model.AllocationRecord {
	return model.AllocationRecord{
		HolderAddress: addr,
		Allocation:    alloc,
		PointsID:      pointsID,
		TokenAddress:  token,
		Timestamp:     time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestRank_OrderingAndTotals(t *testing.T) {
	records := []model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xa", 5, "P-6", "V1", 2),
		rec("0xb", 100, "P-1", "V2", 1),
	}
	table := Rank(records)
	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}
	if table[0].Address != "0xb" || table[0].TotalPoints != 100 {
		t.Errorf("expected 0xb with 100 at rank 1, got %+v", table[0])
	}
	if table[1].Address != "0xa" || table[1].TotalPoints != 15 {
		t.Errorf("expected 0xa with 15 at rank 2, got %+v", table[1])
	}
}

func TestRank_Conservation(t *testing.T) {
	records := []model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xb", 3.5, "P-2", "V2", 1),
		rec("0xa", 1.25, "P-6", "V3", 2),
		rec("0xc", 7, "P-9", "V1", 3),
	}
	var inputSum float64
	for _, r := range records {
		inputSum += r.Allocation
	}
	var tableSum float64
	for _, e := range Rank(records) {
		tableSum += e.TotalPoints
	}
	if tableSum != inputSum {
		t.Errorf("total points not conserved: table %v, input %v", tableSum, inputSum)
	}
}

func TestRank_TieKeepsFirstSeenOrder(t *testing.T) {
	// 0xb appears first in the input, so it wins the tie at 50 points.
	records := []model.AllocationRecord{
		rec("0xb", 50, "P-1", "V1", 1),
		rec("0xc", 50, "P-1", "V1", 1),
		rec("0xa", 50, "P-1", "V1", 1),
	}
	table := Rank(records)
	want := []string{"0xb", "0xc", "0xa"}
	for i, addr := range want {
		if table[i].Address != addr {
			t.Errorf("position %d: expected %s, got %s", i+1, addr, table[i].Address)
		}
	}
}

func TestRank_Idempotent(t *testing.T) {
	records := []model.AllocationRecord{
		rec("0xa", 10, "P-1", "V1", 1),
		rec("0xb", 100, "P-1", "V2", 1),
	}
	first := Rank(records)
	second := Rank(records)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRank_EmptyInput(t *testing.T) {
	if table := Rank(nil); len(table) != 0 {
		t.Errorf("expected empty table, got %d entries", len(table))
	}
}

func TestRankOf(t *testing.T) {
	table := []model.RankEntry{
		{Address: "0xb", TotalPoints: 100},
		{Address: "0xa", TotalPoints: 15},
	}
	if r := RankOf(table, "0xb"); r != 1 {
		t.Errorf("expected rank 1 for 0xb, got %d", r)
	}
	if r := RankOf(table, "0xa"); r != 2 {
		t.Errorf("expected rank 2 for 0xa, got %d", r)
	}
	if r := RankOf(table, "0xmissing"); r != 0 {
		t.Errorf("expected 0 for unknown address, got %d", r)
	}
}

func TestPointsToNextRank(t *testing.T) {
	table := []model.RankEntry{
		{Address: "0xb", TotalPoints: 100},
		{Address: "0xa", TotalPoints: 15},
		{Address: "0xc", TotalPoints: 15},
	}
	tests := []struct {
		name     string
		rank     int
		ownTotal float64
		want     float64
	}{
		{"rank 1 has no gap", 1, 100, 0},
		{"rank 2 gap to rank 1", 2, 15, 85},
		{"tied totals give zero gap", 3, 15, 0},
	}
	for _, tt := range tests {
		if got := PointsToNextRank(tt.rank, table, tt.ownTotal); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
