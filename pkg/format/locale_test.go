package format

import (
	"testing"

	"golang.org/x/text/language"
)

func TestLocaleForCurrency(t *testing.T) {
	tests := map[string]string{
		"USD":  "en-US",
		"VND":  "vi-VN",
		"EUR":  "de-DE",
		"BD":   "bn-BD",
		"LKR":  "si-LK",
		"eur":  "de-DE",
		"XAF":  "en-US",
		"":     "en-US",
		" GBP": "en-GB",
	}

	for code, expected := range tests {
		if got := LocaleForCurrency(code); got != expected {
			t.Errorf("LocaleForCurrency(%q) = %q, expected %q", code, got, expected)
		}
	}
}

func TestLanguageForCurrency(t *testing.T) {
	if got := LanguageForCurrency("JPY"); got != language.MustParse("ja-JP") {
		t.Errorf("LanguageForCurrency(JPY) = %v", got)
	}
	if got := LanguageForCurrency("nope"); got != language.MustParse("en-US") {
		t.Errorf("LanguageForCurrency(nope) = %v", got)
	}
}
