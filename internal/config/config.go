package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"PointsSentinel/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL      string `yaml:"base_url"`
		HolderFilter string `yaml:"holder_filter"`
	} `yaml:"data_source"`
	Schedule struct {
		SyncCron string `yaml:"sync_cron"`
	} `yaml:"schedule"`
	Database struct {
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
	Seasons struct {
		Season1Tags []string `yaml:"season1_tags"`
		Season2Tags []string `yaml:"season2_tags"`
	} `yaml:"seasons"`
	// Vaults maps a vault token address to its human-friendly label.
	Vaults map[string]string `yaml:"vaults"`
	Proxy  string            `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("POINTS_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("CRON_SYNC"); v != "" {
		cfg.Schedule.SyncCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.HolderFilter == "" {
		cfg.DataSource.HolderFilter = "*"
	}
	if cfg.Schedule.SyncCron == "" {
		// Daily at 02:00 (cron-with-seconds format).
		cfg.Schedule.SyncCron = "0 0 2 * * *"
	}
	if len(cfg.Seasons.Season1Tags) == 0 {
		cfg.Seasons.Season1Tags = []string{"P-1", "P-2"}
	}
	if len(cfg.Seasons.Season2Tags) == 0 {
		cfg.Seasons.Season2Tags = []string{"P-6"}
	}
	if cfg.Vaults == nil {
		cfg.Vaults = map[string]string{}
	}

	return cfg, nil
}

// SeasonTags returns the configured season tag sets as a model value.
func (c *Config) SeasonTags() model.Seasons {
	return model.Seasons{
		Season1Tags: c.Seasons.Season1Tags,
		Season2Tags: c.Seasons.Season2Tags,
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	return nil
}
