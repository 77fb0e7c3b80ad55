package inflation

import "sort"

// Series maps a year to an annual inflation rate in percent. A nil rate
// means the year is known but has no data point.
type Series map[int]*float64

// RateOf returns a pointer to rate for building a Series literal.
func RateOf(rate float64) *float64 {
	return &rate
}

// Rate returns the rate recorded for year and whether one exists.
func (s Series) Rate(year int) (float64, bool) {
	value, ok := s[year]
	if !ok || value == nil {
		return 0, false
	}
	return *value, true
}

// Years returns every year with a non-nil rate in ascending order.
func (s Series) Years() []int {
	years := make([]int, 0, len(s))
	for year, value := range s {
		if value != nil {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years
}

// Bounds returns the first and last years carrying a rate. ok is false when
// the series has no data at all.
func (s Series) Bounds() (first, last int, ok bool) {
	years := s.Years()
	if len(years) == 0 {
		return 0, 0, false
	}
	return years[0], years[len(years)-1], true
}
