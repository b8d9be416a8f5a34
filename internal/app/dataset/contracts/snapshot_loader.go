package contracts

import (
	"context"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

// Input table names.
const (
	InputSales    = "sales"
	InputProducts = "products"
	InputWaste    = "waste_logs"
)

// LoadWarning is a non-fatal problem with a single input row; the row is skipped.
type LoadWarning struct {
	Table   string `json:"table"`
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Snapshot holds the three typed input relations of one run.
// Engines treat it as read-only.
type Snapshot struct {
	Sales    []domain.SaleRecord
	Waste    []domain.WasteRecord
	Catalog  *domain.Catalog
	Warnings []LoadWarning
}

// SnapshotLoader defines the interface for reading the input relations.
type SnapshotLoader interface {
	// Load reads and parses all input tables.
	// Returns *domain.LoadError for a missing file or column.
	Load(ctx context.Context) (*Snapshot, error)
}
