// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"steam_sale_finder/internal/notifier"
)

// DefaultFeedURL is the UK Steam deals feed.
const DefaultFeedURL = "https://www.steamgamesales.com/rss/?region=uk&stores=steam"

// Config holds the application configuration.
type Config struct {
	FeedURL       string
	WatchlistPath string
	WatermarkPath string
	LogLevel      string
	DryRun        bool
	FullScan      bool
	Telegram      notifier.TelegramConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dryRun, err := boolEnv("DRY_RUN")
	if err != nil {
		return nil, err
	}
	fullScan, err := boolEnv("FULL_SCAN")
	if err != nil {
		return nil, err
	}

	tg := notifier.TelegramConfig{
		Token:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		Channel: os.Getenv("TELEGRAM_CHANNEL"),
	}
	if !dryRun {
		if tg.Token == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
		}
		if tg.Channel == "" {
			return nil, fmt.Errorf("TELEGRAM_CHANNEL is required")
		}
	}

	return &Config{
		FeedURL:       envOrDefault("FEED_URL", DefaultFeedURL),
		WatchlistPath: envOrDefault("WATCHLIST_PATH", "./wanted_steam_games.txt"),
		WatermarkPath: envOrDefault("WATERMARK_PATH", "./.last_update"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		DryRun:        dryRun,
		FullScan:      fullScan,
		Telegram:      tg,
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
