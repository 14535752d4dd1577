package model

import "time"

// TopVault identifies the vault with the largest point sum for one account.
type TopVault struct {
	Label  string
	Points float64
}

// AccountStats holds all derived statistics for one account. Recomputed in
// full on every sync run and upserted by lowercased address, never merged.
type AccountStats struct {
	Address          string
	TotalPoints      float64
	Season1Points    float64
	Season2Points    float64
	CurrentRank      int
	PointsToNextRank float64
	LongestStreak    int
	UniqueVaultCount int
	TopVault         TopVault
	UpdatedAt        time.Time
}

// RankEntry is one row of the global ranking table: an account and its
// total points. Position in the table (1-based) is the account's rank.
type RankEntry struct {
	Address     string
	TotalPoints float64
}
