// Package nutrition is the computational core of the coaching backend:
// portion scaling, eligibility rules, daily aggregation, status/alert
// classification and rule-based recommendation. Every function here is a
// pure transform over its inputs (no I/O, no clocks, no shared state),
// which makes the package safe to call concurrently. The only collaborators
// are the FoodLookup and CatalogQuery interfaces implemented by the
// repository layer.
package nutrition

import (
	"math"

	"github.com/neimasilk/healthycoaching-id-sub000/apperrors"
)

// Nutrients is the fixed per-food nutrient record. Catalog entries carry it
// per 100 g; scaled and aggregated values reuse the same shape. Units follow
// the field names: kcal, grams, milligrams, micrograms (folate), and IU for
// vitamin A.
type Nutrients struct {
	Calories  float64 `json:"calories" gorm:"column:calories"`
	Protein   float64 `json:"protein" gorm:"column:protein"`
	Carbs     float64 `json:"carbs" gorm:"column:carbs"`
	Fat       float64 `json:"fat" gorm:"column:fat"`
	Fiber     float64 `json:"fiber" gorm:"column:fiber"`
	SodiumMg  float64 `json:"sodium_mg" gorm:"column:sodium_mg"`
	SugarG    float64 `json:"sugar_g" gorm:"column:sugar_g"`
	VitaminA  float64 `json:"vitamin_a" gorm:"column:vitamin_a"`
	VitaminC  float64 `json:"vitamin_c" gorm:"column:vitamin_c"`
	CalciumMg float64 `json:"calcium_mg" gorm:"column:calcium_mg"`
	IronMg    float64 `json:"iron_mg" gorm:"column:iron_mg"`
	FolateMcg float64 `json:"folate_mcg" gorm:"column:folate_mcg"`
}

// Add returns the element-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:  n.Calories + o.Calories,
		Protein:   n.Protein + o.Protein,
		Carbs:     n.Carbs + o.Carbs,
		Fat:       n.Fat + o.Fat,
		Fiber:     n.Fiber + o.Fiber,
		SodiumMg:  n.SodiumMg + o.SodiumMg,
		SugarG:    n.SugarG + o.SugarG,
		VitaminA:  n.VitaminA + o.VitaminA,
		VitaminC:  n.VitaminC + o.VitaminC,
		CalciumMg: n.CalciumMg + o.CalciumMg,
		IronMg:    n.IronMg + o.IronMg,
		FolateMcg: n.FolateMcg + o.FolateMcg,
	}
}

func (n Nutrients) mul(factor float64) Nutrients {
	return Nutrients{
		Calories:  n.Calories * factor,
		Protein:   n.Protein * factor,
		Carbs:     n.Carbs * factor,
		Fat:       n.Fat * factor,
		Fiber:     n.Fiber * factor,
		SodiumMg:  n.SodiumMg * factor,
		SugarG:    n.SugarG * factor,
		VitaminA:  n.VitaminA * factor,
		VitaminC:  n.VitaminC * factor,
		CalciumMg: n.CalciumMg * factor,
		IronMg:    n.IronMg * factor,
		FolateMcg: n.FolateMcg * factor,
	}
}

// Negative reports whether any field is below zero. Catalog data must never
// be negative; consumption totals cannot be either, by construction.
func (n Nutrients) Negative() bool {
	return n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 ||
		n.Fiber < 0 || n.SodiumMg < 0 || n.SugarG < 0 || n.VitaminA < 0 ||
		n.VitaminC < 0 || n.CalciumMg < 0 || n.IronMg < 0 || n.FolateMcg < 0
}

// Scale converts a per-100g record to the given portion weight. The result
// keeps full float precision: rounding is presentation-only (see Rounded),
// so summing many scaled portions does not accumulate drift.
func Scale(per100g Nutrients, portionWeightGrams float64) (Nutrients, error) {
	if portionWeightGrams <= 0 {
		return Nutrients{}, apperrors.Errorf(apperrors.KindInvalidPortion,
			"nutrition.Scale", "portion weight %.2f g must be positive", portionWeightGrams)
	}
	return per100g.mul(portionWeightGrams / 100.0), nil
}

// Rounded applies the display precision conventions: whole numbers for
// calories, sodium, calcium, and the vitamins/folate; one decimal place for
// the gram-denominated macros, fiber, sugar and iron.
func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Calories:  math.Round(n.Calories),
		Protein:   round1(n.Protein),
		Carbs:     round1(n.Carbs),
		Fat:       round1(n.Fat),
		Fiber:     round1(n.Fiber),
		SodiumMg:  math.Round(n.SodiumMg),
		SugarG:    round1(n.SugarG),
		VitaminA:  math.Round(n.VitaminA),
		VitaminC:  math.Round(n.VitaminC),
		CalciumMg: math.Round(n.CalciumMg),
		IronMg:    round1(n.IronMg),
		FolateMcg: math.Round(n.FolateMcg),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
