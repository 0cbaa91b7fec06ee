package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config")
	episodes := flag.Int("episodes", 0, "Number of games to play (overrides config)")
	width := flag.Int("width", 0, "Grid width (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed (overrides config)")
	dataDir := flag.String("data", "", "Data directory (overrides config)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *episodes, *width, *seed, *dataDir)
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("bad config", "error", err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error("bad log level", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := NewGameStats(cfg.StatsPath())
	if err != nil {
		logger.Error("failed to load stats", "error", err)
		os.Exit(1)
	}

	summary, err := Train(ctx, cfg, logger, stats)
	if err != nil {
		logger.Error("training failed", "error", err)
		os.Exit(1)
	}

	logger.Info("all time",
		"games", stats.GetGamesPlayed(),
		"wins", stats.GetWins(),
		"max_score", stats.GetMaxScore(),
		"average_score", stats.GetAverageScore(),
		"median_score", stats.GetMedianScore(),
		"session", summary.SessionID,
	)
}

// applyFlags lets non-zero command line values override the config file.
func applyFlags(cfg *Config, episodes, width int, seed uint64, dataDir string) {
	if episodes > 0 {
		cfg.Episodes = episodes
	}
	if width > 0 {
		cfg.Width = width
	}
	if seed > 0 {
		cfg.Seed = seed
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
}
