package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PointsSentinel/internal/collector"
	"PointsSentinel/internal/config"
	"PointsSentinel/internal/notifier"
	"PointsSentinel/internal/scheduler"
	"PointsSentinel/internal/stats"
	"PointsSentinel/internal/store"
	"PointsSentinel/internal/syncer"
	"PointsSentinel/internal/vault"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PointsSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init fetcher
	fetcher := collector.NewOrigamiFetcher(cfg.DataSource.BaseURL, cfg.DataSource.HolderFilter, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init store
	var st store.Store
	if cfg.Database.PostgresDSN != "" {
		ps, err := store.NewPostgresStore(ctx, cfg.Database.PostgresDSN)
		if err != nil {
			log.Fatalf("[FATAL] init postgres store: %v", err)
		}
		st = ps
	} else {
		log.Println("[WARN] no postgres DSN configured, stats will not survive restarts")
		st = store.NewMemoryStore()
	}
	defer st.Close()

	// Init aggregation core
	agg := stats.NewAggregator(vault.NewRegistry(cfg.Vaults), cfg.SeasonTags())
	sy := syncer.New(fetcher, st, agg)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, sy, st, tn)
	if err := sched.Register(cfg.Schedule.SyncCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing sync now")
		go func() {
			log.Printf("[INFO] %s", sched.RunSyncNow())
		}()
	}

	log.Println("[INFO] PointsSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PointsSentinel stopped")
}
