package recommend_products

import (
	"fmt"
	"time"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

// BasketKeyFunc maps a sale line to the basket (physical transaction) it belongs to.
type BasketKeyFunc func(sale domain.SaleRecord) string

// Basket key names accepted by KeyFuncByName.
const (
	KeyTimestampCashier = "timestamp_cashier"
	KeyOrderID          = "order_id"
)

// TimestampCashierKey treats lines sharing order timestamp and cashier as one basket.
// The timestamp keeps sub-second precision and offset, so only identical timestamps match.
func TimestampCashierKey(sale domain.SaleRecord) string {
	return sale.OrderedAt.Format(time.RFC3339Nano) + "\x1f" + sale.CashierID
}

// OrderIDKey uses the order id column as the basket identifier.
func OrderIDKey(sale domain.SaleRecord) string {
	return sale.OrderID
}

// KeyFuncByName resolves a configured basket key name.
func KeyFuncByName(name string) (BasketKeyFunc, error) {
	switch name {
	case "", KeyTimestampCashier:
		return TimestampCashierKey, nil
	case KeyOrderID:
		return OrderIDKey, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBasketKey, name)
	}
}
