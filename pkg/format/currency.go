// Package format renders amounts and rates for display using the locale
// associated with a currency.
package format

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

const displayDigits = 2

// Currency formats amount in the given currency with two fraction digits,
// e.g. "$1,071.00" for USD or "€1.071,00" for EUR.
func Currency(amount float64, code string) string {
	return formatCurrency(amount, code, displayDigits)
}

// CurrencyStandard formats amount using the currency's own number of
// fraction digits, e.g. "¥1,000" for JPY and "$1,000.00" for USD.
func CurrencyStandard(amount float64, code string) string {
	digits := displayDigits
	if unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code))); err == nil {
		digits, _ = currency.Standard.Rounding(unit)
	}
	return formatCurrency(amount, code, digits)
}

// Percent formats a percentage with two fraction digits in the currency's locale.
func Percent(value float64, code string) string {
	p := message.NewPrinter(LanguageForCurrency(code))
	return p.Sprintf("%.2f", value) + "%"
}

// Symbol returns the display symbol for a currency code in its locale. Codes
// that are not valid ISO 4217 currencies are returned unchanged.
func Symbol(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return normalized
	}
	p := message.NewPrinter(LanguageForCurrency(normalized))
	return p.Sprint(currency.Symbol(unit))
}

func formatCurrency(amount float64, code string, digits int) string {
	p := message.NewPrinter(LanguageForCurrency(code))
	verb := fmt.Sprintf("%%.%df", digits)
	number := p.Sprintf(verb, math.Abs(amount))

	symbol := Symbol(code)
	if needsSeparator(symbol) {
		symbol += " "
	}

	if amount < 0 && number != p.Sprintf(verb, 0.0) {
		return "-" + symbol + number
	}
	return symbol + number
}

// needsSeparator reports whether a symbol ends in a letter, as in "CHF", so
// the amount does not run into it.
func needsSeparator(symbol string) bool {
	runes := []rune(symbol)
	if len(runes) == 0 {
		return false
	}
	return unicode.IsLetter(runes[len(runes)-1])
}
