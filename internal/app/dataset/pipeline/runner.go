package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/mldatasets/internal/app/dataset/contracts"
	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/aggregate_sales"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/enrich_waste"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/forecast_inventory"
	"github.com/light-bringer/mldatasets/internal/app/dataset/usecases/recommend_products"
	"github.com/light-bringer/mldatasets/internal/pkg/clock"
)

// maxLoggedWarnings bounds per-row warning output; the summary still carries the full count.
const maxLoggedWarnings = 20

// Engines groups the four derivation interactors of a run.
type Engines struct {
	Sales     *aggregate_sales.Interactor
	Waste     *enrich_waste.Interactor
	Forecast  *forecast_inventory.Interactor
	Recommend *recommend_products.Interactor
}

// Runner loads the snapshot once, derives every table concurrently and publishes the results.
type Runner struct {
	loader   contracts.SnapshotLoader
	sink     contracts.TableSink
	engines  Engines
	clock    clock.Clock
	workers  int
	newRunID func() string
}

// NewRunner creates a new pipeline runner.
func NewRunner(
	loader contracts.SnapshotLoader,
	sink contracts.TableSink,
	engines Engines,
	clk clock.Clock,
	workers int,
) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		loader:   loader,
		sink:     sink,
		engines:  engines,
		clock:    clk,
		workers:  workers,
		newRunID: uuid.NewString,
	}
}

// outcome is what one engine hands back to the publisher.
type outcome struct {
	table  *contracts.Table
	report contracts.TableReport
	err    error
}

type job struct {
	name string
	run  func(ctx context.Context, snap *contracts.Snapshot) (*contracts.Table, contracts.TableReport, error)
}

// Run executes one pipeline pass.
// A load failure returns before any engine runs and nothing is written.
// Engine failures are isolated: the other tables are still published, the summary is
// written, and the returned error wraps domain.ErrEnginesFailed.
func (r *Runner) Run(ctx context.Context) (*contracts.RunSummary, error) {
	summary := &contracts.RunSummary{
		RunID:     r.newRunID(),
		StartedAt: r.clock.Now(),
	}

	snap, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary.Inputs = contracts.InputCounts{
		Sales:    len(snap.Sales),
		Products: snap.Catalog.Len(),
		Waste:    len(snap.Waste),
		Warnings: len(snap.Warnings),
	}
	log.Printf("[%s] loaded %d sales, %d products, %d waste records",
		summary.RunID, summary.Inputs.Sales, summary.Inputs.Products, summary.Inputs.Waste)
	logWarnings(summary.RunID, snap.Warnings)

	jobs := r.jobs()
	outcomes := make([]outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for idx, j := range jobs {
		g.Go(func() error {
			outcomes[idx] = runJob(gctx, j, snap)
			// Engine failures are recorded, never propagated, so siblings keep running.
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	for _, out := range outcomes {
		report := out.report
		if out.err == nil {
			if err := r.sink.Write(ctx, out.table); err != nil {
				out.err = fmt.Errorf("publish: %w", err)
			}
		}
		if out.err != nil {
			report.Error = out.err.Error()
			failed = append(failed, report.Name)
			log.Printf("[%s] %s failed: %v", summary.RunID, report.Name, out.err)
		} else {
			logReport(summary.RunID, report)
		}
		summary.Tables = append(summary.Tables, report)
	}

	summary.FinishedAt = r.clock.Now()
	if err := r.sink.WriteSummary(ctx, summary); err != nil {
		return summary, fmt.Errorf("failed to write run summary: %w", err)
	}

	if len(failed) > 0 {
		return summary, fmt.Errorf("%w: %s", domain.ErrEnginesFailed, strings.Join(failed, ", "))
	}
	return summary, nil
}

// runJob converts an engine panic into a failure of that engine alone.
func runJob(ctx context.Context, j job, snap *contracts.Snapshot) (out outcome) {
	out.report.Name = j.name
	defer func() {
		if p := recover(); p != nil {
			out.table = nil
			out.err = fmt.Errorf("engine panicked: %v", p)
		}
	}()

	table, report, err := j.run(ctx, snap)
	report.Name = j.name
	return outcome{table: table, report: report, err: err}
}

func (r *Runner) jobs() []job {
	return []job{
		{
			name: domain.TableSalesAnalysis,
			run: func(ctx context.Context, snap *contracts.Snapshot) (*contracts.Table, contracts.TableReport, error) {
				res, err := r.engines.Sales.Execute(ctx, &aggregate_sales.Request{Sales: snap.Sales})
				if err != nil {
					return nil, contracts.TableReport{}, err
				}
				return contracts.NewTable(domain.TableSalesAnalysis, domain.SalesAggregateColumns, res.Rows),
					contracts.TableReport{Rows: len(res.Rows), EmptyInput: res.EmptyInput}, nil
			},
		},
		{
			name: domain.TableWastePrediction,
			run: func(ctx context.Context, snap *contracts.Snapshot) (*contracts.Table, contracts.TableReport, error) {
				res, err := r.engines.Waste.Execute(ctx, &enrich_waste.Request{Waste: snap.Waste, Catalog: snap.Catalog})
				if err != nil {
					return nil, contracts.TableReport{}, err
				}
				return contracts.NewTable(domain.TableWastePrediction, domain.WasteFeatureColumns, res.Rows),
					contracts.TableReport{Rows: len(res.Rows), JoinMisses: res.JoinMisses, EmptyInput: res.EmptyInput}, nil
			},
		},
		{
			name: domain.TableInventoryForecast,
			run: func(ctx context.Context, snap *contracts.Snapshot) (*contracts.Table, contracts.TableReport, error) {
				res, err := r.engines.Forecast.Execute(ctx, &forecast_inventory.Request{Catalog: snap.Catalog, Sales: snap.Sales})
				if err != nil {
					return nil, contracts.TableReport{}, err
				}
				return contracts.NewTable(domain.TableInventoryForecast, domain.InventoryForecastColumns, res.Rows),
					contracts.TableReport{Rows: len(res.Rows), JoinMisses: res.JoinMisses, EmptyInput: res.EmptyInput}, nil
			},
		},
		{
			name: domain.TableProductRecommendations,
			run: func(ctx context.Context, snap *contracts.Snapshot) (*contracts.Table, contracts.TableReport, error) {
				res, err := r.engines.Recommend.Execute(ctx, &recommend_products.Request{Sales: snap.Sales, Catalog: snap.Catalog})
				if err != nil {
					return nil, contracts.TableReport{}, err
				}
				return contracts.NewTable(domain.TableProductRecommendations, domain.CoPurchasePairColumns, res.Rows),
					contracts.TableReport{Rows: len(res.Rows), JoinMisses: res.JoinMisses, EmptyInput: res.EmptyInput}, nil
			},
		},
	}
}

func logWarnings(runID string, warnings []contracts.LoadWarning) {
	for i, w := range warnings {
		if i == maxLoggedWarnings {
			log.Printf("[%s] ... %d more row warnings", runID, len(warnings)-maxLoggedWarnings)
			return
		}
		log.Printf("[%s] skipped %s row %d: %s", runID, w.Table, w.Row, w.Message)
	}
}

func logReport(runID string, report contracts.TableReport) {
	log.Printf("[%s] %s: %d rows, %d join misses", runID, report.Name, report.Rows, report.JoinMisses)
	if report.EmptyInput {
		log.Printf("[%s] WARNING: %s derived from empty input", runID, report.Name)
	}
}

// IsLoadError reports whether err aborted the run before any engine executed.
func IsLoadError(err error) bool {
	var loadErr *domain.LoadError
	return errors.As(err, &loadErr)
}
