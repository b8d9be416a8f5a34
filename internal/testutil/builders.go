// Package testutil holds fixture builders shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

// SaleBuilder helps create sale records for tests with a fluent interface
type SaleBuilder struct {
	orderID     string
	productID   string
	productName string
	category    domain.Category
	quantity    int
	price       string
	at          string
	cashier     string
}

// NewSaleBuilder creates a new builder with default values
func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{
		orderID:     "1",
		productID:   "P1",
		productName: "Croissant",
		category:    domain.CategoryPastry,
		quantity:    1,
		price:       "5.00",
		at:          "2024-01-01 09:00:00",
		cashier:     "staff1",
	}
}

func (b *SaleBuilder) WithOrderID(id string) *SaleBuilder {
	b.orderID = id
	return b
}

// WithProduct sets the product id and name
func (b *SaleBuilder) WithProduct(id, name string) *SaleBuilder {
	b.productID = id
	b.productName = name
	return b
}

func (b *SaleBuilder) WithCategory(c domain.Category) *SaleBuilder {
	b.category = c
	return b
}

func (b *SaleBuilder) WithQuantity(q int) *SaleBuilder {
	b.quantity = q
	return b
}

func (b *SaleBuilder) WithPrice(price string) *SaleBuilder {
	b.price = price
	return b
}

// At sets the order timestamp (YYYY-MM-DD HH:MM:SS)
func (b *SaleBuilder) At(ts string) *SaleBuilder {
	b.at = ts
	return b
}

func (b *SaleBuilder) WithCashier(c string) *SaleBuilder {
	b.cashier = c
	return b
}

// Build creates the domain.SaleRecord
func (b *SaleBuilder) Build(t testing.TB) domain.SaleRecord {
	t.Helper()

	price, err := domain.NewMoneyFromString(b.price)
	require.NoError(t, err)
	s, err := domain.NewSaleRecord(b.orderID, b.productID, b.productName, b.category, b.quantity, price, MustTime(t, b.at), b.cashier)
	require.NoError(t, err)
	return s
}

// ProductBuilder helps create catalog rows for tests
type ProductBuilder struct {
	id        string
	name      string
	category  domain.Category
	price     string
	cost      string
	warehouse int
	display   int
}

// NewProductBuilder creates a new builder with default values
func NewProductBuilder(id string) *ProductBuilder {
	return &ProductBuilder{
		id:        id,
		name:      "Product " + id,
		category:  domain.CategoryPastry,
		price:     "5.00",
		cost:      "2.00",
		warehouse: 40,
		display:   10,
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

func (b *ProductBuilder) WithCategory(c domain.Category) *ProductBuilder {
	b.category = c
	return b
}

func (b *ProductBuilder) WithPrice(price, cost string) *ProductBuilder {
	b.price = price
	b.cost = cost
	return b
}

// WithStock sets warehouse and display stock; quantity on hand is their sum
func (b *ProductBuilder) WithStock(warehouse, display int) *ProductBuilder {
	b.warehouse = warehouse
	b.display = display
	return b
}

// Build creates the domain.ProductRecord
func (b *ProductBuilder) Build(t testing.TB) domain.ProductRecord {
	t.Helper()

	price, err := domain.NewMoneyFromString(b.price)
	require.NoError(t, err)
	cost, err := domain.NewMoneyFromString(b.cost)
	require.NoError(t, err)
	p, err := domain.NewProductRecord(b.id, b.name, b.category, price, cost, b.warehouse+b.display, b.warehouse, b.display)
	require.NoError(t, err)
	return p
}

// NewWaste creates a waste record with a fixed cost impact.
func NewWaste(t testing.TB, productID string, quantity int, at string) domain.WasteRecord {
	t.Helper()

	cost, err := domain.NewMoneyFromString("3.50")
	require.NoError(t, err)
	w, err := domain.NewWasteRecord(productID, "Waste of "+productID, domain.CategoryPastry, quantity, domain.ReasonExpired, MustTime(t, at), cost)
	require.NoError(t, err)
	return w
}

// NewCatalog builds a catalog from products.
func NewCatalog(t testing.TB, products ...domain.ProductRecord) *domain.Catalog {
	t.Helper()

	c, err := domain.NewCatalog(products)
	require.NoError(t, err)
	return c
}

// MustTime parses a canonical input timestamp.
func MustTime(t testing.TB, ts string) time.Time {
	t.Helper()

	parsed, err := domain.ParseTimestamp(ts)
	require.NoError(t, err)
	return parsed
}
