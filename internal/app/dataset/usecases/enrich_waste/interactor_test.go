package enrich_waste

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
	"github.com/light-bringer/mldatasets/internal/testutil"
)

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	interactor := NewInteractor()
	catalog := testutil.NewCatalog(t,
		testutil.NewProductBuilder("P1").WithCategory(domain.CategoryBeverage).WithPrice("4.50", "1.20").Build(t),
	)

	t.Run("joins catalog attributes", func(t *testing.T) {
		waste := []domain.WasteRecord{testutil.NewWaste(t, "P1", 3, "2024-03-02 20:00:00")}

		result, err := interactor.Execute(ctx, &Request{Waste: waste, Catalog: catalog})
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)

		row := result.Rows[0]
		require.True(t, row.Joined())
		assert.Equal(t, "4.50", row.Price.String())
		assert.Equal(t, "1.20", row.CostPerUnit.String())
		assert.Equal(t, domain.CategoryBeverage, *row.ProductCategory)
		assert.Equal(t, domain.CategoryPastry, row.Category)
		assert.Equal(t, "2024-03-02", row.Calendar.Date)
		assert.True(t, row.Calendar.IsWeekend)
		assert.Zero(t, result.JoinMisses)
	})

	t.Run("missing product keeps the row with unset enrichment", func(t *testing.T) {
		waste := []domain.WasteRecord{
			testutil.NewWaste(t, "P1", 1, "2024-03-01 20:00:00"),
			testutil.NewWaste(t, "GONE", 2, "2024-03-01 20:00:00"),
			testutil.NewWaste(t, "P1", 4, "2024-03-03 20:00:00"),
		}

		result, err := interactor.Execute(ctx, &Request{Waste: waste, Catalog: catalog})
		require.NoError(t, err)
		require.Len(t, result.Rows, len(waste))
		assert.Equal(t, 1, result.JoinMisses)

		missed := result.Rows[1]
		assert.Equal(t, "GONE", missed.ProductID)
		assert.Equal(t, "Waste of GONE", missed.ProductName)
		assert.False(t, missed.Joined())
		assert.Nil(t, missed.ProductCategory)
		assert.Nil(t, missed.CostPerUnit)

		record := missed.Record()
		assert.Equal(t, "", record[len(record)-1])
		assert.Equal(t, "", record[len(record)-3])
	})

	t.Run("nil catalog counts every row as a miss", func(t *testing.T) {
		waste := []domain.WasteRecord{testutil.NewWaste(t, "P1", 1, "2024-03-01 20:00:00")}
		result, err := interactor.Execute(ctx, &Request{Waste: waste})
		require.NoError(t, err)
		assert.Len(t, result.Rows, 1)
		assert.Equal(t, 1, result.JoinMisses)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		result, err := interactor.Execute(ctx, &Request{Catalog: catalog})
		require.NoError(t, err)
		assert.Empty(t, result.Rows)
		assert.True(t, result.EmptyInput)
	})
}
