// Command amount_harness replays a golden CSV fixture of (input, expected)
// pairs through the cheque-amount converter.
//
// Usage:
//
//	amount_harness [fixture.csv]
//
// Without an argument the path comes from FIXTURE_PATH. Exit status is 0 when
// every row passes, 1 when any row fails and 2 when the fixture cannot be loaded.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/cheque_amount_app/internal/harness"
	"github.com/SscSPs/cheque_amount_app/internal/platform/config"
	"github.com/SscSPs/cheque_amount_app/internal/utils/chequetext"
)

const (
	exitFailures = 1
	exitLoad     = 2
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], logger))
}

func run(ctx context.Context, args []string, logger *slog.Logger) int {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Error("Failed to load config", slog.String("error", err.Error()))
			return exitLoad
		}
		path = cfg.FixturePath
	}

	cases, err := harness.LoadFixtureFile(path)
	if err != nil {
		logger.Error("Failed to load fixture", slog.String("path", path), slog.String("error", err.Error()))
		return exitLoad
	}
	logger.Info("Fixture loaded", slog.String("path", path), slog.Int("cases", len(cases)))

	report, err := harness.Run(ctx, cases, chequetext.Convert)
	if werr := report.Write(os.Stdout); werr != nil {
		logger.Error("Failed to write report", slog.String("error", werr.Error()))
	}
	if err != nil {
		logger.Error("Harness run interrupted", slog.String("error", err.Error()))
		return exitFailures
	}

	if !report.OK() {
		logger.Warn("Golden fixture has failures",
			slog.Int("failed", report.Failed),
			slog.Int("total", report.Total()),
			slog.Float64("pass_rate", report.PassRate()))
		return exitFailures
	}
	logger.Info("All golden rows passed", slog.Int("total", report.Total()))
	return 0
}
