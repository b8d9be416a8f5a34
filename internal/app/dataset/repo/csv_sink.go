package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/light-bringer/mldatasets/internal/app/dataset/contracts"
	"github.com/light-bringer/mldatasets/internal/pkg/csvio"
)

// SummaryFile is the name of the run summary written next to the tables.
const SummaryFile = "run_summary.json"

// CSVSink implements TableSink by writing <dir>/<table>.csv.
type CSVSink struct {
	dir string
}

// NewCSVSink creates a new TableSink writing into dir.
func NewCSVSink(dir string) contracts.TableSink {
	return &CSVSink{dir: dir}
}

// TablePath returns the file a table is published to.
func TablePath(dir, table string) string {
	return filepath.Join(dir, table+".csv")
}

// Write replaces the table file atomically: readers see the old or the new file, never a partial one.
func (s *CSVSink) Write(ctx context.Context, table *contracts.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.replace(TablePath(s.dir, table.Name), func(w io.Writer) error {
		return csvio.Write(w, table.Columns, table.Rows)
	})
}

// WriteSummary writes the run summary as indented JSON.
func (s *CSVSink) WriteSummary(ctx context.Context, summary *contracts.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.replace(filepath.Join(s.dir, SummaryFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	})
}

func (s *CSVSink) replace(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to publish %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadSummary loads a run summary previously written by WriteSummary.
func ReadSummary(dir string) (*contracts.RunSummary, error) {
	data, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read run summary: %w", err)
	}

	var summary contracts.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse run summary: %w", err)
	}
	return &summary, nil
}

// CountRows returns the number of data rows in a published table.
func CountRows(dir, table string) (int, error) {
	f, err := os.Open(TablePath(dir, table))
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", table, err)
	}
	defer f.Close()

	doc, err := csvio.Read(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", table, err)
	}
	return len(doc.Rows), nil
}
