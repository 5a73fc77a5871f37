package core

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical category names.
const (
	CategoryIncome        = "Wpływy"
	CategoryDailyShopping = "Zakupy codzienne"
)

// standaloneCategories are top-level categories kept exactly as labelled in
// the sheet. Keys are lowercase.
var standaloneCategories = map[string]bool{
	"auta":                    true,
	"dom":                     true,
	"wyjścia i szama do domu": true,
	"subkonta":                true,
	"rachunki":                true,
	"prezenty":                true,
	"pies":                    true,
}

// subcategoryParents maps known subcategory labels to their canonical parent.
// Lookups are exact: "jedzenie" is not "Jedzenie".
var subcategoryParents = map[string]string{
	"Jedzenie":    CategoryDailyShopping,
	"Słodycze":    CategoryDailyShopping,
	"Chemia":      CategoryDailyShopping,
	"Apteka":      CategoryDailyShopping,
	"Alkohol":     CategoryDailyShopping,
	"Higiena":     CategoryDailyShopping,
	"Kwiatki":     CategoryDailyShopping,
	"Inne zakupy": CategoryDailyShopping,
}

// Classification is the normalized (category, subcategory) pair for a row label.
type Classification struct {
	Category    string
	Subcategory string // Empty when there is none
}

// HasSubcategory reports whether the label resolved to a subcategory.
func (c Classification) HasSubcategory() bool {
	return c.Subcategory != ""
}

// PgSubcategory returns the subcategory as a nullable text value.
func (c Classification) PgSubcategory() pgtype.Text {
	if !c.HasSubcategory() {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: c.Subcategory, Valid: true}
}

// Classify maps a raw row label to its canonical category.
//
// Rules, first match wins:
//   - "Wpływy" and "Zakupy codzienne" (any case) map to their canonical spelling.
//   - Standalone categories (Auta, Dom, Rachunki, ...) keep the label as written.
//   - Known daily-shopping subtypes, spelled exactly, become Zakupy codzienne
//     with the subtype as subcategory.
//   - Anything else is its own category with no subcategory.
func Classify(label string) Classification {
	label = strings.TrimSpace(label)
	key := foldLabel(label)

	switch key {
	case foldLabel(CategoryIncome):
		return Classification{Category: CategoryIncome}
	case foldLabel(CategoryDailyShopping):
		return Classification{Category: CategoryDailyShopping}
	}

	if standaloneCategories[key] {
		return Classification{Category: label}
	}

	if parent, ok := subcategoryParents[label]; ok {
		return Classification{Category: parent, Subcategory: label}
	}

	return Classification{Category: label}
}

// foldLabel lowercases a label with Polish casing rules and collapses
// internal runs of whitespace.
func foldLabel(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return cases.Lower(language.Polish).String(s)
}
