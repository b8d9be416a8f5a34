package contracts

import (
	"context"
	"time"
)

// Table is a rendered output relation: a header plus string cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Recorder is implemented by every derived row type.
type Recorder interface {
	Record() []string
}

// NewTable renders rows into a Table.
func NewTable[R Recorder](name string, columns []string, rows []R) *Table {
	t := &Table{
		Name:    name,
		Columns: columns,
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Record())
	}
	return t
}

// TableSink defines the interface for the output boundary.
type TableSink interface {
	// Write persists one table, replacing any previous version.
	Write(ctx context.Context, table *Table) error

	// WriteSummary persists the run summary next to the tables.
	WriteSummary(ctx context.Context, summary *RunSummary) error
}

// InputCounts are row counts of the loaded snapshot.
type InputCounts struct {
	Sales    int `json:"sales"`
	Products int `json:"products"`
	Waste    int `json:"waste_logs"`
	Warnings int `json:"load_warnings"`
}

// TableReport is the outcome of one engine.
type TableReport struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	JoinMisses int    `json:"join_misses"`
	EmptyInput bool   `json:"empty_input"`
	Error      string `json:"error,omitempty"`
}

// Failed reports whether the engine or its publication failed.
func (r TableReport) Failed() bool {
	return r.Error != ""
}

// RunSummary describes one pipeline execution.
type RunSummary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Inputs     InputCounts   `json:"inputs"`
	Tables     []TableReport `json:"tables"`
}
