package inflation

import "github.com/iwvelando/inflation-calculator/pkg/constants"

// Health is a qualitative bucket derived from the average annual rate.
type Health string

const (
	HealthDeflation Health = "deflation"
	HealthLow       Health = "low"
	HealthModerate  Health = "moderate"
	HealthHigh      Health = "high"
)

// Classify buckets an average annual rate: below 0 is deflation, [0, 3) is
// low, [3, 6) is moderate and 6 or more is high.
func Classify(averageRate float64) Health {
	switch {
	case averageRate < 0:
		return HealthDeflation
	case averageRate < constants.LowInflationThreshold:
		return HealthLow
	case averageRate < constants.HighInflationThreshold:
		return HealthModerate
	default:
		return HealthHigh
	}
}
