package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/mldatasets/internal/app/dataset/contracts"
	"github.com/light-bringer/mldatasets/internal/app/dataset/domain"
)

const (
	salesCSV = `order_id,product_firebase_id,product_name,category,quantity,price,order_date,cashier_username
1,P1,Croissant,Pastries,2,5.00,2024-01-01 09:00:00,staff1
2,P2,Latte,Beverages,1,3.50,2024-01-01 09:00:00,staff1
3,P1,Croissant,Pastries,0,5.00,2024-01-01 10:00:00,staff2
4,P1,Croissant,,1,5.00,not a date,staff2
`
	productsCSV = `id,name,category,price,cost_per_unit,quantity,inventory_a,inventory_b
P1,Croissant,Pastries,5.00,2.00,60,50,10
P2,Iced Coffee,,3.50,1.00,30,20,10
P3,Bad Stock,Pastries,1.00,0.50,99,1,1
P1,Duplicate,Pastries,5.00,2.00,0,0,0
`
	wasteCSV = `product_firebase_id,product_name,category,quantity,reason,waste_date,cost_impact
P1,Croissant,Pastries,3,Expired product,2024-01-01 20:00:00,6.00
`
)

func writeInputs(t *testing.T, sales, products, waste string) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		DefaultFiles.Sales:    sales,
		DefaultFiles.Products: products,
		DefaultFiles.Waste:    waste,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestCSVLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("parses all three tables", func(t *testing.T) {
		dir := writeInputs(t, salesCSV, productsCSV, wasteCSV)

		snapshot, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		require.NoError(t, err)

		require.Equal(t, 2, snapshot.Catalog.Len())
		latte, ok := snapshot.Catalog.Lookup("P2")
		require.True(t, ok)
		assert.Equal(t, domain.CategoryBeverage, latte.Category)
		assert.Equal(t, 20, latte.WarehouseStock)

		require.Len(t, snapshot.Sales, 2)
		assert.Equal(t, "P1", snapshot.Sales[0].ProductID)
		assert.Equal(t, "staff1", snapshot.Sales[0].CashierID)
		assert.Equal(t, "5.00", snapshot.Sales[0].UnitPrice.String())
		assert.Equal(t, 9, snapshot.Sales[0].OrderedAt.Hour())

		require.Len(t, snapshot.Waste, 1)
		assert.Equal(t, domain.ReasonExpired, snapshot.Waste[0].Reason)
		assert.Equal(t, "6.00", snapshot.Waste[0].CostImpact.String())
	})

	t.Run("invalid rows become warnings", func(t *testing.T) {
		dir := writeInputs(t, salesCSV, productsCSV, wasteCSV)

		snapshot, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		require.NoError(t, err)

		byTable := map[string]int{}
		for _, w := range snapshot.Warnings {
			byTable[w.Table]++
		}
		assert.Equal(t, 2, byTable[contracts.InputProducts])
		assert.Equal(t, 2, byTable[contracts.InputSales])
		assert.Zero(t, byTable[contracts.InputWaste])
	})

	t.Run("header only tables are empty", func(t *testing.T) {
		dir := writeInputs(t,
			"order_id,product_id,product_name,category,quantity,price,order_date,cashier_username\n",
			"id,name,category,price,cost_per_unit,quantity,inventory_a,inventory_b\n",
			"product_firebase_id,product_name,category,quantity,reason,waste_date,cost_impact\n",
		)

		snapshot, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, snapshot.Sales)
		assert.Empty(t, snapshot.Waste)
		assert.Zero(t, snapshot.Catalog.Len())
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		dir := writeInputs(t, salesCSV, productsCSV, "")

		_, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		var loadErr *domain.LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, contracts.InputWaste, loadErr.Table)
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("missing column is a load error", func(t *testing.T) {
		dir := writeInputs(t, "order_id,product_id,quantity\n1,P1,2\n", productsCSV, wasteCSV)

		_, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
		assert.Contains(t, err.Error(), "cashier")
	})

	t.Run("empty file is a load error", func(t *testing.T) {
		dir := writeInputs(t, salesCSV, productsCSV, "")
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFiles.Waste), nil, 0o644))

		_, err := NewCSVLoader(dir, DefaultFiles).Load(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyFile)
	})
}

func TestParseInt(t *testing.T) {
	n, err := parseInt("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = parseInt("5.0")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = parseInt("5.5")
	assert.Error(t, err)
}
