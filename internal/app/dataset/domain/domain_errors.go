package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	// Load errors
	ErrFileNotFound  = errors.New("input file not found")
	ErrMissingColumn = errors.New("required column missing")
	ErrEmptyFile     = errors.New("input file has no header row")

	// Record errors
	ErrEmptyProductID    = errors.New("product id cannot be empty")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidPrice      = errors.New("price cannot be negative")
	ErrInvalidStock      = errors.New("stock levels cannot be negative")
	ErrInventoryMismatch = errors.New("quantity on hand must equal warehouse plus display stock")
	ErrInvalidTimestamp  = errors.New("timestamp cannot be parsed")
	ErrUnknownCategory   = errors.New("unknown product category")
	ErrDuplicateProduct  = errors.New("duplicate product id in catalog")

	// Engine errors
	ErrInvalidLeadTime     = errors.New("lead time must not be negative")
	ErrInvalidSafetyFactor = errors.New("safety factor must not be negative")
	ErrInvalidBasketKey    = errors.New("unknown basket key")
	ErrEnginesFailed       = errors.New("one or more engines failed")
)

// LoadError is fatal: the run stops before any engine executes.
type LoadError struct {
	Table string
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Table, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err with the table and path it was raised for.
func NewLoadError(table, path string, err error) *LoadError {
	return &LoadError{Table: table, Path: path, Err: err}
}
