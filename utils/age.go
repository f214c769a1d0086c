package utils

import "time"

// CalculateAge returns whole years since birth, not yet counting this
// year's birthday if it hasn't passed.
func CalculateAge(birth time.Time) int {
	now := time.Now()
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
