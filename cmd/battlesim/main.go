package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Antigono00/pvp21/internal/config"
	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/db"
	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/sim"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("PVP21_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattleSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("battlesim starting",
		"log_level", cfg.LogLevel,
		"difficulty", cfg.Battle.Difficulty,
		"matches", cfg.Battle.Matches,
		"concurrency", cfg.Battle.Concurrency)

	if err := data.LoadCatalog(); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var reports *db.ReportRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied", "version", version)
		reports = db.NewReportRepository(database.Pool())
	}

	results, err := sim.RunAll(ctx, cfg.Battle, formula.Default{}, slog.Default())
	if err != nil {
		return fmt.Errorf("running matches: %w", err)
	}

	tally := make(map[model.Outcome]int, 3)
	for _, rep := range results {
		tally[rep.Winner]++
	}
	slog.Info("simulation finished",
		"player", tally[model.OutcomePlayer],
		"enemy", tally[model.OutcomeEnemy],
		"draw", tally[model.OutcomeDraw])

	if reports != nil {
		if err := reports.SaveAll(ctx, results); err != nil {
			return fmt.Errorf("archiving reports: %w", err)
		}
		slog.Info("reports archived", "count", len(results))
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
