package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical timestamp format of the input tables.
const TimestampLayout = "2006-01-02 15:04:05"

var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	DateLayout,
}

// ParseTimestamp parses an input timestamp. Timestamps without an offset are read as UTC;
// an explicit offset is kept so calendar features describe the local day of the sale.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// WasteReason records why stock was discarded. Unknown reasons are kept verbatim.
type WasteReason string

const (
	ReasonEndOfDay     WasteReason = "End of day waste"
	ReasonExpired      WasteReason = "Expired product"
	ReasonDamaged      WasteReason = "Damaged during handling"
	ReasonReturn       WasteReason = "Customer return"
	ReasonQuality      WasteReason = "Quality issue"
	ReasonOverproduced WasteReason = "Overproduction"
	ReasonBurnt        WasteReason = "Burnt/Overcooked"
	ReasonSample       WasteReason = "Display sample"
)

// SaleRecord is one point-of-sale line item.
type SaleRecord struct {
	OrderID     string
	ProductID   string
	ProductName string
	Category    Category
	Quantity    int
	UnitPrice   Money
	OrderedAt   time.Time
	CashierID   string
}

// NewSaleRecord validates and builds a SaleRecord.
func NewSaleRecord(orderID, productID, productName string, category Category, quantity int, unitPrice Money, orderedAt time.Time, cashierID string) (SaleRecord, error) {
	if productID == "" {
		return SaleRecord{}, ErrEmptyProductID
	}
	if quantity <= 0 {
		return SaleRecord{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if unitPrice.IsNegative() {
		return SaleRecord{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, unitPrice)
	}

	return SaleRecord{
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Category:    category,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		OrderedAt:   orderedAt,
		CashierID:   cashierID,
	}, nil
}

// Revenue returns quantity x unit price.
func (s SaleRecord) Revenue() Money {
	return s.UnitPrice.MulInt(s.Quantity)
}

// WasteRecord is one waste disposal event.
type WasteRecord struct {
	ProductID   string
	ProductName string
	Category    Category
	Quantity    int
	Reason      WasteReason
	WastedAt    time.Time
	CostImpact  Money
}

// NewWasteRecord validates and builds a WasteRecord.
func NewWasteRecord(productID, productName string, category Category, quantity int, reason WasteReason, wastedAt time.Time, costImpact Money) (WasteRecord, error) {
	if productID == "" {
		return WasteRecord{}, ErrEmptyProductID
	}
	if quantity <= 0 {
		return WasteRecord{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if costImpact.IsNegative() {
		return WasteRecord{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, costImpact)
	}

	return WasteRecord{
		ProductID:   productID,
		ProductName: productName,
		Category:    category,
		Quantity:    quantity,
		Reason:      reason,
		WastedAt:    wastedAt,
		CostImpact:  costImpact,
	}, nil
}

// ProductRecord is one catalog row.
type ProductRecord struct {
	ID             string
	Name           string
	Category       Category
	Price          Money
	CostPerUnit    Money
	QuantityOnHand int
	WarehouseStock int
	DisplayStock   int
}

// NewProductRecord validates and builds a ProductRecord.
func NewProductRecord(id, name string, category Category, price, costPerUnit Money, quantityOnHand, warehouseStock, displayStock int) (ProductRecord, error) {
	if id == "" {
		return ProductRecord{}, ErrEmptyProductID
	}
	if price.IsNegative() || costPerUnit.IsNegative() {
		return ProductRecord{}, ErrInvalidPrice
	}
	if quantityOnHand < 0 || warehouseStock < 0 || displayStock < 0 {
		return ProductRecord{}, ErrInvalidStock
	}
	if quantityOnHand != warehouseStock+displayStock {
		return ProductRecord{}, fmt.Errorf("%w: %d != %d + %d", ErrInventoryMismatch, quantityOnHand, warehouseStock, displayStock)
	}

	return ProductRecord{
		ID:             id,
		Name:           name,
		Category:       category,
		Price:          price,
		CostPerUnit:    costPerUnit,
		QuantityOnHand: quantityOnHand,
		WarehouseStock: warehouseStock,
		DisplayStock:   displayStock,
	}, nil
}

// Catalog indexes products by id while keeping catalog order.
type Catalog struct {
	products []ProductRecord
	byID     map[string]int
}

// NewEmptyCatalog returns a catalog with no products.
func NewEmptyCatalog() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// NewCatalog builds a catalog; duplicate ids are rejected.
func NewCatalog(products []ProductRecord) (*Catalog, error) {
	c := &Catalog{
		products: make([]ProductRecord, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a product, rejecting a second product with the same id.
func (c *Catalog) Add(p ProductRecord) error {
	if _, ok := c.byID[p.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
	}
	c.byID[p.ID] = len(c.products)
	c.products = append(c.products, p)
	return nil
}

// Lookup returns the product with the given id. A nil catalog holds nothing.
func (c *Catalog) Lookup(id string) (ProductRecord, bool) {
	if c == nil {
		return ProductRecord{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return ProductRecord{}, false
	}
	return c.products[i], true
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []ProductRecord {
	if c == nil {
		return nil
	}
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}
