package forecast_inventory

import (
	"context"
	"sort"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/pkg/stats"
)

// Defaults for the reorder formula.
const (
	DefaultLeadTimeDays = 2
	DefaultSafetyFactor = 1.5
)

// Request contains the catalog and the raw sales relation.
type Request struct {
	Catalog *domain.Catalog
	Sales   []domain.SaleRecord
}

// Result has exactly one row per catalog product, in catalog order.
type Result struct {
	Rows []domain.InventoryForecastRow
	// JoinMisses counts sale records whose product is not in the catalog; they are ignored.
	JoinMisses int
	EmptyInput bool
}

// Interactor handles the inventory forecast use case.
type Interactor struct {
	leadTimeDays int
	safetyFactor float64
}

// NewInteractor creates a new inventory forecast interactor.
func NewInteractor(leadTimeDays int, safetyFactor float64) *Interactor {
	return &Interactor{
		leadTimeDays: leadTimeDays,
		safetyFactor: safetyFactor,
	}
}

// Execute derives demand statistics and reorder points for every catalog product.
//
//	safety_stock        = round(std * safetyFactor)
//	reorder_point       = round(avg * leadTimeDays + safety_stock)
//	days_until_stockout = round(on_hand / max(avg, 1))
//
// The stockout horizon divides by 1 for products that never sold. This keeps the value finite
// for dead stock but is an approximation: it reports on-hand units as days, not a real horizon.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i.leadTimeDays < 0 {
		return nil, domain.ErrInvalidLeadTime
	}
	if i.safetyFactor < 0 {
		return nil, domain.ErrInvalidSafetyFactor
	}

	var products []domain.ProductRecord
	if req.Catalog != nil {
		products = req.Catalog.Products()
	}

	result := &Result{
		Rows:       make([]domain.InventoryForecastRow, 0, len(products)),
		EmptyInput: len(products) == 0,
	}

	demand := dailyDemand(req.Sales)
	for _, sale := range req.Sales {
		if req.Catalog == nil {
			result.JoinMisses++
			continue
		}
		if _, ok := req.Catalog.Lookup(sale.ProductID); !ok {
			result.JoinMisses++
		}
	}

	for _, p := range products {
		s := stats.Describe(demand[p.ID])
		safetyStock := stats.Round(s.Std * i.safetyFactor)

		effectiveAvg := s.Mean
		if effectiveAvg <= 0 {
			effectiveAvg = 1
		}

		result.Rows = append(result.Rows, domain.InventoryForecastRow{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Category:          p.Category,
			QuantityOnHand:    p.QuantityOnHand,
			WarehouseStock:    p.WarehouseStock,
			DisplayStock:      p.DisplayStock,
			Price:             p.Price,
			AvgDailySales:     s.Mean,
			StdDailySales:     s.Std,
			MinDailySales:     s.Min,
			MaxDailySales:     s.Max,
			LeadTimeDays:      i.leadTimeDays,
			SafetyStock:       safetyStock,
			ReorderPoint:      stats.Round(s.Mean*float64(i.leadTimeDays) + float64(safetyStock)),
			DaysUntilStockout: stats.Round(float64(p.QuantityOnHand) / effectiveAvg),
		})
	}

	return result, nil
}

// dailyDemand sums quantity per product per day. Each series is ordered by date
// so the statistics are reproducible bit for bit.
func dailyDemand(sales []domain.SaleRecord) map[string][]int {
	perDay := make(map[string]map[string]int)
	for _, sale := range sales {
		date := sale.OrderedAt.Format(domain.DateLayout)
		days, ok := perDay[sale.ProductID]
		if !ok {
			days = make(map[string]int)
			perDay[sale.ProductID] = days
		}
		days[date] += sale.Quantity
	}

	series := make(map[string][]int, len(perDay))
	for productID, days := range perDay {
		dates := make([]string, 0, len(days))
		for d := range days {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		values := make([]int, len(dates))
		for j, d := range dates {
			values[j] = days[d]
		}
		series[productID] = values
	}
	return series
}
