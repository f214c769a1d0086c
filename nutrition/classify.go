package nutrition

import "github.com/neimasilk/healthycoaching-id-sub000/apperrors"

// Status places the day's calories relative to the user's target band.
type Status string

const (
	StatusBelow    Status = "below"
	StatusOnTarget Status = "on-target"
	StatusAbove    Status = "above"
)

// AlertCode identifies one coaching alert. Codes double as i18n message
// keys.
type AlertCode string

const (
	AlertSaltExcess  AlertCode = "SALT_EXCESS"
	AlertSugarExcess AlertCode = "SUGAR_EXCESS"
	AlertFiberLow    AlertCode = "FIBER_LOW"
	AlertCalorieLow  AlertCode = "CALORIE_LOW"
	AlertCalorieHigh AlertCode = "CALORIE_HIGH"
)

// Daily thresholds for the alert rules and the width of the on-target
// calorie band, in percent of the user's target.
const (
	SodiumDailyLimitMg = 5000.0
	SugarDailyLimitG   = 50.0
	FiberDailyMinG     = 25.0

	targetBandLowPct  = 80.0
	targetBandHighPct = 120.0
)

// PercentOfTarget converts consumed calories to percent of the target.
// Callers must validate the target first; Classify does.
func PercentOfTarget(calories, targetCalories float64) float64 {
	return calories / targetCalories * 100.0
}

// Classify grades a day's totals against the calorie target and emits
// coaching alerts. The status bands are inclusive: 80-120% of target is
// on-target. Alerts always come out in the same order so clients can
// render them stably: salt, sugar, fiber, then the calorie alert matching
// the status.
func Classify(totals Nutrients, targetCalories float64) (Status, []AlertCode, error) {
	if targetCalories <= 0 {
		return "", nil, apperrors.Errorf(apperrors.KindInvalidTarget,
			"nutrition.Classify", "calorie target %.2f must be positive", targetCalories)
	}

	pct := PercentOfTarget(totals.Calories, targetCalories)
	status := StatusOnTarget
	switch {
	case pct < targetBandLowPct:
		status = StatusBelow
	case pct > targetBandHighPct:
		status = StatusAbove
	}

	alerts := []AlertCode{}
	if totals.SodiumMg > SodiumDailyLimitMg {
		alerts = append(alerts, AlertSaltExcess)
	}
	if totals.SugarG > SugarDailyLimitG {
		alerts = append(alerts, AlertSugarExcess)
	}
	if totals.Fiber < FiberDailyMinG {
		alerts = append(alerts, AlertFiberLow)
	}
	switch status {
	case StatusBelow:
		alerts = append(alerts, AlertCalorieLow)
	case StatusAbove:
		alerts = append(alerts, AlertCalorieHigh)
	}
	return status, alerts, nil
}
