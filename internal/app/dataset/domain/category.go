package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryPastry     Category = "Pastry"
	CategoryBeverage   Category = "Beverage"
	CategoryIngredient Category = "Ingredient"
)

// Categories lists every category in classification precedence order.
var Categories = []Category{CategoryBeverage, CategoryIngredient, CategoryPastry}

var categoryAliases = map[string]Category{
	"pastry":      CategoryPastry,
	"pastries":    CategoryPastry,
	"bread":       CategoryPastry,
	"cake":        CategoryPastry,
	"beverage":    CategoryBeverage,
	"beverages":   CategoryBeverage,
	"drink":       CategoryBeverage,
	"drinks":      CategoryBeverage,
	"coffee":      CategoryBeverage,
	"ingredient":  CategoryIngredient,
	"ingredients": CategoryIngredient,
}

// Keyword rules are checked in slice order; the first rule with a matching word wins.
// Names matching no rule are pastries.
var classificationRules = []struct {
	category Category
	keywords []string
}{
	{CategoryBeverage, []string{"coffee", "tea", "juice", "water", "soda", "milk"}},
	{CategoryIngredient, []string{"flour", "sugar", "butter", "egg"}},
}

var folder = cases.Fold()

// ParseCategory resolves a category cell (canonical name, plural or synonym).
func ParseCategory(s string) (Category, error) {
	key := folder.String(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", ErrUnknownCategory
}

// ClassifyCategory derives a category from a product name by whole-word keyword match.
// Precedence: Beverage, then Ingredient, then Pastry as the default.
func ClassifyCategory(name string) Category {
	words := strings.FieldsFunc(folder.String(name), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, rule := range classificationRules {
		for _, w := range words {
			for _, kw := range rule.keywords {
				if w == kw || w == kw+"s" {
					return rule.category
				}
			}
		}
	}
	return CategoryPastry
}

// ResolveCategory parses the category cell and falls back to classifying the name.
func ResolveCategory(cell, name string) Category {
	if c, err := ParseCategory(cell); err == nil {
		return c
	}
	return ClassifyCategory(name)
}
