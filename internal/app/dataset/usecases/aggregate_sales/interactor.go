package aggregate_sales

import (
	"context"
	"sort"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

// Request contains the raw sales relation.
type Request struct {
	Sales []domain.SaleRecord
}

// Result contains one row per (date, product) pair present in the input.
type Result struct {
	Rows       []domain.SalesAggregateRow
	EmptyInput bool
}

// Interactor handles the sales aggregation use case.
type Interactor struct{}

// NewInteractor creates a new sales aggregation interactor.
func NewInteractor() *Interactor {
	return &Interactor{}
}

type bucketKey struct {
	date      string
	productID string
}

// Execute buckets sale line items by day and product.
// Absent days are not zero-filled.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Sales) == 0 {
		return &Result{Rows: []domain.SalesAggregateRow{}, EmptyInput: true}, nil
	}

	buckets := make(map[bucketKey]*domain.SalesAggregateRow)
	for _, sale := range req.Sales {
		cal := domain.NewCalendarFeatures(sale.OrderedAt)
		key := bucketKey{date: cal.Date, productID: sale.ProductID}

		row, ok := buckets[key]
		if !ok {
			row = &domain.SalesAggregateRow{
				ProductID:    sale.ProductID,
				ProductName:  sale.ProductName,
				Category:     sale.Category,
				TotalRevenue: domain.ZeroMoney(),
				Calendar:     cal,
			}
			buckets[key] = row
		}

		row.TotalQuantity += sale.Quantity
		row.TotalRevenue = row.TotalRevenue.Add(sale.Revenue())
		row.TransactionCount++
	}

	rows := make([]domain.SalesAggregateRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Calendar.Date != rows[b].Calendar.Date {
			return rows[a].Calendar.Date < rows[b].Calendar.Date
		}
		return rows[a].ProductID < rows[b].ProductID
	})

	return &Result{Rows: rows}, nil
}
