package nutrition

// NutrientField names a Nutrients column the catalog can sort by.
type NutrientField string

const (
	FieldCalories NutrientField = "calories"
	FieldProtein  NutrientField = "protein"
	FieldFiber    NutrientField = "fiber"
)

// SortDirection orders a catalog query.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// CatalogQuery is the read side of the catalog the selector runs against.
// A limit of 0 means no limit; the selector filters by eligibility after
// sorting, so it asks for more rows than it returns.
type CatalogQuery interface {
	SortedByNutrient(field NutrientField, dir SortDirection, limit int) ([]FoodItem, error)
}

// DefaultRecommendationLimit caps the selection when the caller passes no
// limit of its own.
const DefaultRecommendationLimit = 10

// rule maps an alert to the catalog ordering that counteracts it. Salt and
// sugar excess carry no food suggestion: the advice there is to eat less,
// not differently.
func rule(alert AlertCode) (NutrientField, SortDirection, bool) {
	switch alert {
	case AlertFiberLow:
		return FieldFiber, SortDesc, true
	case AlertCalorieLow:
		return FieldCalories, SortDesc, true
	case AlertCalorieHigh:
		return FieldCalories, SortAsc, true
	}
	return "", "", false
}

// Recommend picks up to limit eligible foods that counteract the first
// actionable alert. Alerts arrive in the classifier's fixed order, so the
// first one with a rule wins. No actionable alert, or an empty catalog,
// yields an empty list, never an error.
func Recommend(alerts []AlertCode, catalog CatalogQuery, c Constraints, limit int) ([]FoodItem, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var (
		field NutrientField
		dir   SortDirection
		ok    bool
	)
	for _, a := range alerts {
		if field, dir, ok = rule(a); ok {
			break
		}
	}
	if !ok {
		return []FoodItem{}, nil
	}

	candidates, err := catalog.SortedByNutrient(field, dir, 0)
	if err != nil {
		return nil, err
	}
	picked := make([]FoodItem, 0, limit)
	for _, f := range candidates {
		if !IsEligible(f, c) {
			continue
		}
		picked = append(picked, f)
		if len(picked) == limit {
			break
		}
	}
	return picked, nil
}
