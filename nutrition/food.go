package nutrition

import (
	"strings"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
)

// Category buckets catalog entries for browsing and seed import.
type Category string

const (
	CategoryStaple    Category = "staple"
	CategorySideDish  Category = "side-dish"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategorySnack     Category = "snack"
	CategoryDrink     Category = "drink"
	CategoryCake      Category = "cake"
	CategoryCondiment Category = "condiment"
	CategorySpiceMix  Category = "spice-mix"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStaple, CategorySideDish, CategoryVegetable, CategoryFruit,
		CategorySnack, CategoryDrink, CategoryCake, CategoryCondiment, CategorySpiceMix:
		return true
	}
	return false
}

// Portion is one named serving size of a food, e.g. "1 piring" at 250 g.
type Portion struct {
	Label       string  `json:"label"`
	WeightGrams float64 `json:"weight_grams"`
}

// DietFlags records which diet patterns a food satisfies. Vegan implies
// vegetarian in the data, but the rules check each flag independently.
type DietFlags struct {
	Vegetarian     bool `json:"vegetarian"`
	Vegan          bool `json:"vegan"`
	HalalCertified bool `json:"halal_certified"`
}

// Region names an availability area. An empty City means the entry covers
// the whole province.
type Region struct {
	Province string `json:"province"`
	City     string `json:"city,omitempty"`
}

const (
	PopularityMin = 1
	PopularityMax = 10
)

// FoodItem is one catalog entry with everything the rules need: the per-100g
// nutrient record, the selectable portions, and the tags eligibility checks
// run against.
type FoodItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AltNames   []string  `json:"alt_names,omitempty"`
	Category   Category  `json:"category"`
	Per100g    Nutrients `json:"per_100g"`
	Portions   []Portion `json:"portions"`
	Allergens  []string  `json:"allergens,omitempty"`
	Diet       DietFlags `json:"diet"`
	Nationwide bool      `json:"nationwide"`
	Regions    []Region  `json:"regions,omitempty"`
	Popularity int       `json:"popularity"`
}

// Validate enforces the catalog invariants before an entry is stored or
// imported. It returns the first violation found.
func (f FoodItem) Validate() error {
	const op = "nutrition.FoodItem.Validate"
	if strings.TrimSpace(f.Name) == "" {
		return apperrors.Errorf(apperrors.KindValidation, op, "food name is required")
	}
	if !f.Category.Valid() {
		return apperrors.Errorf(apperrors.KindValidation, op, "unknown category %q", f.Category)
	}
	if f.Per100g.Negative() {
		return apperrors.Errorf(apperrors.KindValidation, op, "food %q has a negative nutrient value", f.Name)
	}
	if len(f.Portions) == 0 {
		return apperrors.Errorf(apperrors.KindValidation, op, "food %q needs at least one portion", f.Name)
	}
	for i, p := range f.Portions {
		if strings.TrimSpace(p.Label) == "" {
			return apperrors.Errorf(apperrors.KindValidation, op, "food %q portion %d has no label", f.Name, i)
		}
		if p.WeightGrams <= 0 {
			return apperrors.Errorf(apperrors.KindValidation, op, "food %q portion %q weight must be positive", f.Name, p.Label)
		}
	}
	if !f.Nationwide && len(f.Regions) == 0 {
		return apperrors.Errorf(apperrors.KindValidation, op, "food %q is neither nationwide nor listed in any region", f.Name)
	}
	for _, r := range f.Regions {
		if strings.TrimSpace(r.Province) == "" {
			return apperrors.Errorf(apperrors.KindValidation, op, "food %q has a region entry without a province", f.Name)
		}
	}
	if f.Popularity < PopularityMin || f.Popularity > PopularityMax {
		return apperrors.Errorf(apperrors.KindValidation, op, "food %q popularity %d outside %d..%d",
			f.Name, f.Popularity, PopularityMin, PopularityMax)
	}
	return nil
}
