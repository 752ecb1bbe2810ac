package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"steam_sale_finder/internal/config"
	"steam_sale_finder/internal/fetcher"
	"steam_sale_finder/internal/matcher"
	"steam_sale_finder/internal/notifier"
	"steam_sale_finder/internal/watchlist"
	"steam_sale_finder/internal/watermark"
)

var rootCmd = &cobra.Command{
	Use:           "salefinder",
	Short:         "Post Steam sales for watched games",
	Long:          "Checks the Steam deals feed once, matches new sales against the watchlist and posts matches to Telegram.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("run failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)

	var n matcher.Notifier
	if cfg.DryRun {
		n = notifier.NewLog(log)
	} else {
		tg, err := notifier.NewTelegram(cfg.Telegram)
		if err != nil {
			return err
		}
		n = tg
	}

	client := &http.Client{Timeout: 30 * time.Second}
	src := fetcher.NewSource(fetcher.New(client), cfg.FeedURL, log)

	m := matcher.New(src, watchlist.NewFile(cfg.WatchlistPath), n, watermark.NewFileStore(cfg.WatermarkPath), log)
	m.SetFullScan(cfg.FullScan)

	res, err := m.Run(ctx)
	if err != nil {
		return err
	}

	log.Info("run complete", "entries_scanned", res.EntriesScanned, "matches_found", res.MatchesFound)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
