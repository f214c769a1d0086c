package nutrition

import "strings"

// DietType is the user's declared diet pattern.
type DietType string

const (
	DietNone       DietType = "none"
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
)

// Valid reports whether d is a known diet type. The empty string is treated
// as DietNone everywhere the rules run.
func (d DietType) Valid() bool {
	switch d {
	case DietNone, DietVegetarian, DietVegan, "":
		return true
	}
	return false
}

// Constraints is the user's filter profile: declared allergies, diet
// pattern, halal requirement and home region. A zero Constraints rejects
// nothing.
type Constraints struct {
	Allergens    []string `json:"allergens,omitempty"`
	Diet         DietType `json:"diet,omitempty"`
	RequireHalal bool     `json:"require_halal"`
	Province     string   `json:"province,omitempty"`
	City         string   `json:"city,omitempty"`
}

// IsEligible reports whether a food may be shown to a user with the given
// constraints. All checks must pass: no shared allergen tag, diet flags
// satisfied, halal certification when required, and regional availability.
//
// Region semantics: a catalog entry with an empty City covers its whole
// province, and a user who sets only a province accepts any entry anywhere
// in that province. City is compared only when both sides name one.
func IsEligible(food FoodItem, c Constraints) bool {
	for _, need := range c.Allergens {
		for _, has := range food.Allergens {
			if strings.EqualFold(need, has) {
				return false
			}
		}
	}

	switch c.Diet {
	case DietVegetarian:
		if !food.Diet.Vegetarian {
			return false
		}
	case DietVegan:
		if !food.Diet.Vegan {
			return false
		}
	}

	if c.RequireHalal && !food.Diet.HalalCertified {
		return false
	}

	return regionCovered(food, c)
}

func regionCovered(food FoodItem, c Constraints) bool {
	if food.Nationwide || c.Province == "" {
		return true
	}
	for _, r := range food.Regions {
		if !strings.EqualFold(r.Province, c.Province) {
			continue
		}
		if r.City == "" || c.City == "" || strings.EqualFold(r.City, c.City) {
			return true
		}
	}
	return false
}
