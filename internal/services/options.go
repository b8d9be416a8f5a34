package services

import (
	"fmt"

	"github.com/light-bringer/mldatasets/internal/app/dataset/pipeline"
	"github.com/light-bringer/mldatasets/internal/app/dataset/repo"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/aggregate_sales"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/enrich_waste"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/forecast_inventory"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/recommend_products"
	"github.com/light-bringer/mldatasets/internal/config"
	"github.com/light-bringer/mldatasets/internal/pkg/clock"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Runner *pipeline.Runner
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(cfg *config.Config) (*ServiceOptions, error) {
	basketKey, err := recommend_products.KeyFuncByName(cfg.Recommend.BasketKey)
	if err != nil {
		return nil, fmt.Errorf("invalid recommendation config: %w", err)
	}

	// 1. Create infrastructure components
	clk := clock.NewRealClock()

	// 2. Create input and output boundaries
	loader := repo.NewCSVLoader(cfg.InputDir, repo.Files{
		Sales:    cfg.Files.Sales,
		Products: cfg.Files.Products,
		Waste:    cfg.Files.Waste,
	})
	sink := repo.NewCSVSink(cfg.OutputDir)

	// 3. Create engine use cases
	engines := pipeline.Engines{
		Sales:     aggregate_sales.NewInteractor(),
		Waste:     enrich_waste.NewInteractor(),
		Forecast:  forecast_inventory.NewInteractor(cfg.Forecast.LeadTimeDays, cfg.Forecast.SafetyFactor),
		Recommend: recommend_products.NewInteractor(basketKey, cfg.Recommend.MinPairCount),
	}

	// 4. Create the pipeline runner
	runner := pipeline.NewRunner(loader, sink, engines, clk, cfg.Workers)

	return &ServiceOptions{
		Runner: runner,
	}, nil
}
