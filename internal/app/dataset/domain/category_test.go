package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Pastry", CategoryPastry},
		{"Pastries", CategoryPastry},
		{" bread ", CategoryPastry},
		{"BEVERAGES", CategoryBeverage},
		{"coffee", CategoryBeverage},
		{"Ingredients", CategoryIngredient},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		_, err := ParseCategory("Hardware")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Iced Coffee", CategoryBeverage},
		{"Green Tea", CategoryBeverage},
		{"All-Purpose Flour", CategoryIngredient},
		{"Eggs", CategoryIngredient},
		{"Chocolate Croissant", CategoryPastry},
		// whole words only: "steak" does not contain the word "tea"
		{"Steak Pie", CategoryPastry},
		// beverage keywords take precedence over ingredient keywords
		{"Butter Milk", CategoryBeverage},
		{"", CategoryPastry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.name))
		})
	}
}

func TestResolveCategory(t *testing.T) {
	assert.Equal(t, CategoryIngredient, ResolveCategory("Ingredients", "Latte"))
	assert.Equal(t, CategoryBeverage, ResolveCategory("", "Latte Milk"))
	assert.Equal(t, CategoryPastry, ResolveCategory("misc", "Donut"))
}
