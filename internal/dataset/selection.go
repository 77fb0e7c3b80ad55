package dataset

import "strings"

// Selection is a complete set of calculator inputs for one country.
type Selection struct {
	Country   Country
	Currency  string
	StartYear int
	EndYear   int
	Amount    float64
}

// AvailableYears lists the years of a country that carry a rate, ascending.
func AvailableYears(country Country) []int {
	return country.Data.Years()
}

// DefaultCurrency returns the first currency listed for a country code, or
// fallback when none is listed.
func (d *Dataset) DefaultCurrency(code, fallback string) string {
	if list := d.countryCurrencies[normalizeCode(code)]; len(list) > 0 {
		return list[0]
	}
	return fallback
}

// DefaultSelection preselects inputs for a country: its first currency, the
// first year with data as start and the last year with data as end. Start
// and end are zero when the country has no data.
func (d *Dataset) DefaultSelection(key, fallbackCurrency string, amount float64) (Selection, error) {
	country, err := d.Country(key)
	if err != nil {
		return Selection{}, err
	}

	selection := Selection{
		Country:  country,
		Currency: d.DefaultCurrency(country.Code, fallbackCurrency),
		Amount:   amount,
	}
	if first, last, ok := country.Data.Bounds(); ok {
		selection.StartYear = first
		selection.EndYear = last
	}
	return selection, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
