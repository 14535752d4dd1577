package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"PointsSentinel/internal/model"
	"PointsSentinel/internal/vault"
)

// FormatStats renders a stored stats record into a chat message. Purely
// presentational: numbers get thousands grouping with at most two
// fractional digits, and the footer shows how stale the snapshot is.
func FormatStats(st *model.AccountStats, lastUpdated, now time.Time) string {
	var b strings.Builder

	b.WriteString("📊 <b>Origami Points Stats</b>\n")
	b.WriteString(fmt.Sprintf("Stats for %s\n\n", vault.Shorten(st.Address)))

	b.WriteString(fmt.Sprintf("📊 Rank: #%d", st.CurrentRank))
	if st.PointsToNextRank > 0 {
		b.WriteString(fmt.Sprintf(" | +%s points until next rank", formatNumber(st.PointsToNextRank)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("💎 Total Points: %s\n", formatNumber(st.TotalPoints)))
	b.WriteString(fmt.Sprintf("🎖️ Season 1: %s\n", formatNumber(st.Season1Points)))
	b.WriteString(fmt.Sprintf("🏆 Season 2: %s\n", formatNumber(st.Season2Points)))
	b.WriteString(fmt.Sprintf("🔥 Longest Streak: %d days\n", st.LongestStreak))
	b.WriteString(fmt.Sprintf("🏦 Unique Vaults: %d\n", st.UniqueVaultCount))
	b.WriteString(fmt.Sprintf("⭐ Top Vault: %s (%s points)\n", st.TopVault.Label, formatNumber(st.TopVault.Points)))

	if !lastUpdated.IsZero() {
		b.WriteString(fmt.Sprintf("\nCache age: %d minutes", CacheAgeMinutes(lastUpdated, now)))
	}
	return b.String()
}

// CacheAgeMinutes returns the whole minutes elapsed between lastUpdated
// and now, floored, never negative.
func CacheAgeMinutes(lastUpdated, now time.Time) int {
	age := now.Sub(lastUpdated)
	if age < 0 {
		return 0
	}
	return int(age / time.Minute)
}

func formatNumber(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
