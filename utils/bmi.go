package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// EstimateDailyCalories suggests a maintenance calorie target via
// Mifflin-St Jeor, scaled by a sedentary-to-active factor. ageYears and
// the measurements go through the same plausibility checks as BMI.
func EstimateDailyCalories(heightCm, weightKg float64, ageYears int, gender string, activityFactor float64) (float64, error) {
	if _, err := CalculateBMI(heightCm, weightKg); err != nil {
		return 0, err
	}
	if ageYears <= 0 || ageYears > 120 {
		return 0, errors.New("age out of plausible range")
	}
	if activityFactor < 1.2 || activityFactor > 2.0 {
		activityFactor = 1.2
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr * activityFactor, nil
}
