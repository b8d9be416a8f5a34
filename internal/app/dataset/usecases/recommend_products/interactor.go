package recommend_products

import (
	"context"
	"sort"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/pkg/stats"
)

// Request contains the raw sales relation and the catalog used for product names.
type Request struct {
	Sales   []domain.SaleRecord
	Catalog *domain.Catalog
}

// Result contains scored product pairs sorted by count (desc), then product ids.
type Result struct {
	Rows []domain.CoPurchasePairRow
	// Baskets is the number of reconstructed transactions.
	Baskets int
	// JoinMisses counts pair members whose name could not be found in the catalog.
	JoinMisses int
	EmptyInput bool
}

// Interactor handles the co-purchase recommendation use case.
type Interactor struct {
	basketKey BasketKeyFunc
	minCount  int
}

// NewInteractor creates a new co-purchase interactor.
// Pairs seen fewer than minCount times are dropped from the output.
func NewInteractor(basketKey BasketKeyFunc, minCount int) *Interactor {
	if basketKey == nil {
		basketKey = TimestampCashierKey
	}
	if minCount < 1 {
		minCount = 1
	}
	return &Interactor{
		basketKey: basketKey,
		minCount:  minCount,
	}
}

type pair struct {
	a, b string
}

// Execute reconstructs baskets, counts every unordered product pair once per basket
// and scores each pair against the most frequent one.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Rows:       []domain.CoPurchasePairRow{},
		EmptyInput: len(req.Sales) == 0,
	}

	baskets := make(map[string]map[string]struct{})
	for _, sale := range req.Sales {
		key := i.basketKey(sale)
		products, ok := baskets[key]
		if !ok {
			products = make(map[string]struct{})
			baskets[key] = products
		}
		products[sale.ProductID] = struct{}{}
	}
	result.Baskets = len(baskets)

	counts := make(map[pair]int)
	for _, products := range baskets {
		if len(products) < 2 {
			continue
		}
		ids := make([]string, 0, len(products))
		for id := range products {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for x := 0; x < len(ids); x++ {
			for y := x + 1; y < len(ids); y++ {
				counts[pair{a: ids[x], b: ids[y]}]++
			}
		}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	for p, c := range counts {
		if c < i.minCount {
			continue
		}
		nameA, okA := productName(req.Catalog, p.a)
		nameB, okB := productName(req.Catalog, p.b)
		if !okA {
			result.JoinMisses++
		}
		if !okB {
			result.JoinMisses++
		}

		result.Rows = append(result.Rows, domain.CoPurchasePairRow{
			ProductAID:      p.a,
			ProductAName:    nameA,
			ProductBID:      p.b,
			ProductBName:    nameB,
			CoPurchaseCount: c,
			ConfidenceScore: stats.RoundTo(float64(c)/float64(maxCount), 2),
		})
	}

	sort.Slice(result.Rows, func(x, y int) bool {
		rx, ry := result.Rows[x], result.Rows[y]
		if rx.CoPurchaseCount != ry.CoPurchaseCount {
			return rx.CoPurchaseCount > ry.CoPurchaseCount
		}
		if rx.ProductAID != ry.ProductAID {
			return rx.ProductAID < ry.ProductAID
		}
		return rx.ProductBID < ry.ProductBID
	})

	return result, nil
}

func productName(catalog *domain.Catalog, id string) (string, bool) {
	if catalog == nil {
		return "", false
	}
	p, ok := catalog.Lookup(id)
	if !ok {
		return "", false
	}
	return p.Name, true
}
