package format

import (
	"strings"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"Positive dollars", 1071, "USD", "$1,071.00"},
		{"Large dollars", 1234567.891, "USD", "$1,234,567.89"},
		{"Negative dollars", -99, "USD", "-$99.00"},
		{"Negative rounds to zero", -0.001, "USD", "$0.00"},
		{"Lowercase code", 12.5, "usd", "$12.50"},
		{"Unknown ISO code", 1500, "BD", "BD 1,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount, tt.code); got != tt.expected {
				t.Errorf("Currency(%v, %q) = %q, expected %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestCurrencyLocaleGrouping(t *testing.T) {
	got := Currency(1234.5, "EUR")
	if !strings.Contains(got, "1.234,50") {
		t.Errorf("expected German grouping in %q", got)
	}
	if !strings.Contains(got, "€") {
		t.Errorf("expected euro symbol in %q", got)
	}
}

func TestCurrencyStandard(t *testing.T) {
	yen := CurrencyStandard(1000, "JPY")
	if !strings.Contains(yen, "1,000") || strings.Contains(yen, ".") {
		t.Errorf("expected yen without fraction digits, got %q", yen)
	}

	if got := CurrencyStandard(1000, "USD"); got != "$1,000.00" {
		t.Errorf("CurrencyStandard(1000, USD) = %q", got)
	}

	if got := CurrencyStandard(1000, "BD"); got != "BD 1,000.00" {
		t.Errorf("CurrencyStandard(1000, BD) = %q", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		code     string
		expected string
	}{
		{"English", 3.5, "USD", "3.50%"},
		{"Negative", -1, "USD", "-1.00%"},
		{"German decimal comma", 3.5, "EUR", "3,50%"},
		{"Unmapped currency", 7, "XAF", "7.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.value, tt.code); got != tt.expected {
				t.Errorf("Percent(%v, %q) = %q, expected %q", tt.value, tt.code, got, tt.expected)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	if got := Symbol("USD"); got != "$" {
		t.Errorf("Symbol(USD) = %q", got)
	}
	if got := Symbol(" bd "); got != "BD" {
		t.Errorf("Symbol(bd) = %q", got)
	}
}
