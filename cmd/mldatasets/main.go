package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/app/dataset/pipeline"
	"github.com/light-bringer/mldatasets/internal/config"
	"github.com/light-bringer/mldatasets/internal/services"
)

// Exit codes: 1 for configuration or load failures, 2 when some tables could not be produced.
const (
	exitFatal   = 1
	exitPartial = 2
)

func main() {
	if err := run(); err != nil {
		log.Printf("Pipeline failed: %v", err)
		if errors.Is(err, domain.ErrEnginesFailed) {
			os.Exit(exitPartial)
		}
		os.Exit(exitFatal)
	}
}

func run() error {
	// 1. Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Command-line flags override the environment
	flag.StringVar(&cfg.InputDir, "input", cfg.InputDir, "Directory containing sales.csv, products.csv and waste_logs.csv")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory the derived tables are written to")
	flag.IntVar(&cfg.Forecast.LeadTimeDays, "lead-time", cfg.Forecast.LeadTimeDays, "Replenishment lead time in days")
	flag.Float64Var(&cfg.Forecast.SafetyFactor, "safety-factor", cfg.Forecast.SafetyFactor, "Safety stock multiplier applied to demand std")
	flag.StringVar(&cfg.Recommend.BasketKey, "basket-key", cfg.Recommend.BasketKey, "Basket reconstruction: timestamp_cashier or order_id")
	flag.IntVar(&cfg.Recommend.MinPairCount, "min-pair-count", cfg.Recommend.MinPairCount, "Drop product pairs bought together fewer times")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Maximum engines running at once")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("Starting dataset pipeline...")
	log.Printf("Input: %s", cfg.InputDir)
	log.Printf("Output: %s", cfg.OutputDir)
	log.Printf("Lead time: %d days, safety factor: %v", cfg.Forecast.LeadTimeDays, cfg.Forecast.SafetyFactor)
	log.Printf("Basket key: %s", cfg.Recommend.BasketKey)

	// 3. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize pipeline: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run
	summary, err := serviceOpts.Runner.Run(ctx)
	if err != nil {
		if pipeline.IsLoadError(err) {
			return fmt.Errorf("input could not be loaded, nothing was written: %w", err)
		}
		if summary == nil {
			return err
		}
	}

	log.Printf("Run %s finished in %s", summary.RunID, summary.FinishedAt.Sub(summary.StartedAt))
	for _, report := range summary.Tables {
		status := "ok"
		if report.Failed() {
			status = "FAILED"
		}
		log.Printf("  %-24s %6d rows  %s", report.Name, report.Rows, status)
	}

	return err
}
