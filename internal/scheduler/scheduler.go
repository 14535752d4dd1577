package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"PointsSentinel/internal/notifier"
	"PointsSentinel/internal/store"
	"PointsSentinel/internal/syncer"
)

// Scheduler runs the periodic sync and dispatches chat commands. It also
// owns the at-most-one-concurrent-run guarantee: overlapping triggers
// (cron firing while a manual sync runs, or vice versa) are rejected here,
// not inside the syncer.
type Scheduler struct {
	Cron     *cron.Cron
	Syncer   *syncer.Syncer
	Store    store.Store
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context

	running atomic.Bool
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sy *syncer.Syncer, st store.Store, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Syncer:   sy,
		Store:    st,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the periodic sync task.
func (s *Scheduler) Register(syncCron string) error {
	if _, err := s.Cron.AddFunc(syncCron, s.syncTask); err != nil {
		return fmt.Errorf("register sync task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSyncNow executes a sync immediately (manual trigger / RUN_ON_START)
// and returns a human-readable summary.
func (s *Scheduler) RunSyncNow() string {
	if !s.running.CompareAndSwap(false, true) {
		return "A sync is already running, try again later."
	}
	defer s.running.Store(false)

	result, err := s.Syncer.Run(s.Ctx)
	if err != nil {
		return fmt.Sprintf("❌ Sync failed: %v", err)
	}
	summary := fmt.Sprintf("✅ Sync completed: %d accounts updated", result.Processed)
	if result.Rejected > 0 {
		summary += fmt.Sprintf(", %d records rejected", result.Rejected)
	}
	if len(result.Errors) > 0 {
		summary += fmt.Sprintf(", %d accounts failed", len(result.Errors))
		for _, ae := range result.Errors {
			log.Printf("[ERROR] account %s: %v", ae.Address, ae.Err)
		}
	}
	return summary
}

func (s *Scheduler) syncTask() {
	log.Println("[INFO] running scheduled sync")
	if !s.running.CompareAndSwap(false, true) {
		log.Println("[WARN] previous sync still running, skipping this trigger")
		return
	}
	defer s.running.Store(false)

	if _, err := s.Syncer.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] scheduled sync: %v", err)
		s.trySend(fmt.Sprintf("❌ Scheduled sync failed: %v", err))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/ping":
		return "pong!"
	case "/stats":
		if len(fields) != 2 {
			return "Please use the format: /stats <address>"
		}
		return s.statsReply(fields[1])
	case "/sync":
		return s.RunSyncNow()
	default:
		return "Available commands:\n• /stats <address>\n• /sync\n• /ping"
	}
}

func (s *Scheduler) statsReply(address string) string {
	st, err := s.Store.GetStats(s.Ctx, address)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "No data found for this address."
		}
		log.Printf("[ERROR] get stats for %s: %v", address, err)
		return "An error occurred while fetching the stats. Please try again later."
	}

	lastUpdated, err := s.Store.LastUpdated(s.Ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[ERROR] last updated: %v", err)
	}
	return notifier.FormatStats(st, lastUpdated, time.Now().UTC())
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
