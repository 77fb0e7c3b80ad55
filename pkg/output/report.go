// Package output provides utilities for formatting and displaying inflation results.
package output

import (
	"fmt"

	"github.com/iwvelando/inflation-calculator/pkg/format"
	"github.com/iwvelando/inflation-calculator/pkg/inflation"
)

// Report couples a calculation's inputs with its result. Result is nil when
// the calculation produced no result.
type Report struct {
	Country   string            `json:"country"`
	Currency  string            `json:"currency"`
	StartYear int               `json:"startYear"`
	EndYear   int               `json:"endYear"`
	Amount    float64           `json:"amount"`
	Result    *inflation.Result `json:"result"`
}

// Formatted holds the display strings of a report in the currency's locale.
type Formatted struct {
	Locale         string `json:"locale"`
	OriginalAmount string `json:"originalAmount"`
	AdjustedAmount string `json:"adjustedAmount,omitempty"`
	CumulativeRate string `json:"cumulativeRate,omitempty"`
	AverageRate    string `json:"averageRate,omitempty"`
	Health         string `json:"health,omitempty"`
	Icon           string `json:"icon,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Document is the serialized form of a report along with its display strings.
type Document struct {
	Report
	Formatted Formatted `json:"formatted"`
}

// NewDocument formats report into a Document.
func NewDocument(report Report) Document {
	return Document{Report: report, Formatted: report.Format()}
}

// NewReport builds a report from the values returned by a calculation.
func NewReport(country, currency string, startYear, endYear int, amount float64, result inflation.Result, ok bool) Report {
	report := Report{
		Country:   country,
		Currency:  currency,
		StartYear: startYear,
		EndYear:   endYear,
		Amount:    amount,
	}
	if ok {
		r := result
		report.Result = &r
	}
	return report
}

// NoDataMessage is shown when a calculation has no result.
func NoDataMessage(country string) string {
	return fmt.Sprintf("No data available for %s or year range.", country)
}

// HealthIcon returns the marker displayed next to a health bucket.
func HealthIcon(health inflation.Health) string {
	switch health {
	case inflation.HealthDeflation:
		return "🟢"
	case inflation.HealthLow:
		return "🟡"
	case inflation.HealthModerate:
		return "🟠"
	default:
		return "🔴"
	}
}

// Format renders the report's values for display.
func (r Report) Format() Formatted {
	f := Formatted{
		Locale:         format.LocaleForCurrency(r.Currency),
		OriginalAmount: format.CurrencyStandard(r.Amount, r.Currency),
	}
	if r.Result == nil {
		f.Message = NoDataMessage(r.Country)
		return f
	}
	f.AdjustedAmount = format.Currency(r.Result.AdjustedAmount, r.Currency)
	f.CumulativeRate = format.Percent(r.Result.CumulativeRate, r.Currency)
	f.AverageRate = format.Percent(r.Result.AverageRate, r.Currency)
	f.Health = string(r.Result.Health)
	f.Icon = HealthIcon(r.Result.Health)
	return f
}
