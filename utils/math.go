package utils

import (
	"math"
	"time"
)

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// CompoundFactor returns the growth factor for a daily rate over a number of days
func CompoundFactor(dailyRate float64, days int) float64 {
	return math.Pow(1+dailyRate, float64(days))
}

// DailyRate converts an annual percentage rate to a daily fraction
func DailyRate(annualPercent float64) float64 {
	return annualPercent / 100 / DaysPerYear
}

// StartOfDay truncates a time to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
