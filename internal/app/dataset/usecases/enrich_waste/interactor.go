package enrich_waste

import (
	"context"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

// Request contains the waste relation and the catalog to join against.
type Request struct {
	Waste   []domain.WasteRecord
	Catalog *domain.Catalog
}

// Result is one-to-one with the input waste records, in input order.
type Result struct {
	Rows       []domain.WasteFeatureRow
	JoinMisses int
	EmptyInput bool
}

// Interactor handles the waste enrichment use case.
type Interactor struct{}

// NewInteractor creates a new waste enrichment interactor.
func NewInteractor() *Interactor {
	return &Interactor{}
}

// Execute appends calendar features and left-joins catalog price, category and unit cost.
// A record whose product is not in the catalog keeps its own name and category;
// the joined fields stay unset.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Rows:       make([]domain.WasteFeatureRow, 0, len(req.Waste)),
		EmptyInput: len(req.Waste) == 0,
	}

	for _, w := range req.Waste {
		row := domain.WasteFeatureRow{
			ProductID:   w.ProductID,
			ProductName: w.ProductName,
			Category:    w.Category,
			Quantity:    w.Quantity,
			CostImpact:  w.CostImpact,
			Reason:      w.Reason,
			Calendar:    domain.NewCalendarFeatures(w.WastedAt),
		}

		if p, ok := lookup(req.Catalog, w.ProductID); ok {
			price, cost, category := p.Price, p.CostPerUnit, p.Category
			row.Price = &price
			row.CostPerUnit = &cost
			row.ProductCategory = &category
		} else {
			result.JoinMisses++
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func lookup(catalog *domain.Catalog, id string) (domain.ProductRecord, bool) {
	if catalog == nil {
		return domain.ProductRecord{}, false
	}
	return catalog.Lookup(id)
}
