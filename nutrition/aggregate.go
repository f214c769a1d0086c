package nutrition

import (
	"errors"
	"time"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
)

// MealType tags a log entry with the meal it belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether m is a known meal type.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// LogEntry is one consumption event: a food, the portion chosen from that
// food's portion list, and a multiplier for eating more or less than one
// portion.
type LogEntry struct {
	ID           string    `json:"id"`
	FoodID       string    `json:"food_id"`
	PortionIndex int       `json:"portion_index"`
	Quantity     float64   `json:"quantity"`
	Meal         MealType  `json:"meal"`
	EatenAt      time.Time `json:"eaten_at"`
}

// FoodLookup resolves a food id to its catalog entry. Implementations
// return an error carrying apperrors.KindUnknownFood or KindNotFound when
// the id does not exist.
type FoodLookup interface {
	Get(id string) (FoodItem, error)
}

// Aggregate sums the scaled nutrients of every entry. The order of entries
// never changes the result. An empty slice yields the zero record. The
// whole aggregation fails if any entry names a food the lookup cannot
// resolve, an out-of-range portion index, or a non-positive quantity.
func Aggregate(entries []LogEntry, lookup FoodLookup) (Nutrients, error) {
	const op = "nutrition.Aggregate"
	var total Nutrients
	for _, e := range entries {
		food, err := lookup.Get(e.FoodID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnknownFood) || errors.Is(err, apperrors.ErrNotFound) {
				return Nutrients{}, apperrors.Errorf(apperrors.KindUnknownFood, op,
					"entry %s references unknown food %s", e.ID, e.FoodID)
			}
			return Nutrients{}, err
		}
		if e.PortionIndex < 0 || e.PortionIndex >= len(food.Portions) {
			return Nutrients{}, apperrors.Errorf(apperrors.KindInvalidPortionIndex, op,
				"entry %s: portion index %d out of range for food %s (%d portions)",
				e.ID, e.PortionIndex, e.FoodID, len(food.Portions))
		}
		quantity := e.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return Nutrients{}, apperrors.Errorf(apperrors.KindInvalidPortion, op,
				"entry %s: quantity %.2f must be positive", e.ID, quantity)
		}
		scaled, err := Scale(food.Per100g, food.Portions[e.PortionIndex].WeightGrams*quantity)
		if err != nil {
			return Nutrients{}, err
		}
		total = total.Add(scaled)
	}
	return total, nil
}
