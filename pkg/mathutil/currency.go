// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/inflation-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Halves round away from zero.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// GrowthFactor converts a percentage rate into a multiplicative factor,
// e.g. 5 becomes 1.05 and -1 becomes 0.99.
func GrowthFactor(percentage float64) float64 {
	return 1 + percentage/constants.PercentageMultiplier
}

// SafeDivide divides value by divisor, returning 0 when divisor is zero.
func SafeDivide(value, divisor float64) float64 {
	if divisor == 0 {
		return 0
	}
	return value / divisor
}
