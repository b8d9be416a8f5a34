package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/mldatasets/internal/app/dataset/contracts"
)

func TestCSVSink_Write(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sink := NewCSVSink(dir)

	table := &contracts.Table{
		Name:    "sales_analysis",
		Columns: []string{"date", "product_id"},
		Rows:    [][]string{{"2024-01-01", "P1"}, {"2024-01-02", "P2"}},
	}
	require.NoError(t, sink.Write(ctx, table))

	data, err := os.ReadFile(TablePath(dir, "sales_analysis"))
	require.NoError(t, err)
	assert.Equal(t, "date,product_id\n2024-01-01,P1\n2024-01-02,P2\n", string(data))

	n, err := CountRows(dir, "sales_analysis")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	t.Run("rewrite replaces the file", func(t *testing.T) {
		table.Rows = nil
		require.NoError(t, sink.Write(ctx, table))

		n, err := CountRows(dir, "sales_analysis")
		require.NoError(t, err)
		assert.Zero(t, n)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestCSVSink_Summary(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sink := NewCSVSink(dir)

	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	summary := &contracts.RunSummary{
		RunID:      "run-1",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Inputs:     contracts.InputCounts{Sales: 3, Products: 2, Waste: 1},
		Tables: []contracts.TableReport{
			{Name: "waste_prediction", Rows: 1, JoinMisses: 1},
			{Name: "product_recommendations", Error: "boom"},
		},
	}
	require.NoError(t, sink.WriteSummary(ctx, summary))

	got, err := ReadSummary(dir)
	require.NoError(t, err)
	assert.Equal(t, summary.RunID, got.RunID)
	assert.True(t, summary.StartedAt.Equal(got.StartedAt))
	assert.True(t, summary.FinishedAt.Equal(got.FinishedAt))
	assert.Equal(t, summary.Inputs, got.Inputs)
	assert.Equal(t, summary.Tables, got.Tables)
	assert.True(t, got.Tables[1].Failed())
}
