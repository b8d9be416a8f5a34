package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// NewMoneyFromString parses a decimal amount such as "12.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// NewMoneyFromCents creates a Money from an integer number of cents.
// Example: NewMoneyFromCents(2500) represents 25.00
func NewMoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{d: decimal.Zero}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// MulInt returns m * n, used for line revenue (quantity x unit price).
func (m Money) MulInt(n int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(n)))}
}

func (m Money) IsNegative() bool { return m.d.IsNegative() }
func (m Money) IsZero() bool     { return m.d.IsZero() }

// Equals compares by value, so 25 == 25.00.
func (m Money) Equals(other Money) bool {
	return m.d.Equal(other.d)
}

// Float64 returns an approximate float64 representation (for statistics only, not sums).
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.d.StringFixed(2)
}
