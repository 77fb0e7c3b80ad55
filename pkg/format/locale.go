package format

import (
	"strings"

	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"golang.org/x/text/language"
)

// currencyLocales maps a currency code to the locale used to display it.
var currencyLocales = map[string]string{
	"USD": "en-US", // US Dollar
	"VND": "vi-VN", // Vietnamese Dong
	"JPY": "ja-JP", // Japanese Yen
	"EUR": "de-DE", // Euro (Germany)
	"GBP": "en-GB", // British Pound
	"AUD": "en-AU", // Australian Dollar
	"CAD": "en-CA", // Canadian Dollar
	"CHF": "de-CH", // Swiss Franc
	"CNY": "zh-CN", // Chinese Yuan
	"SEK": "sv-SE", // Swedish Krona
	"NOK": "nb-NO", // Norwegian Krone
	"DKK": "da-DK", // Danish Krone
	"INR": "en-IN", // Indian Rupee
	"RUB": "ru-RU", // Russian Ruble
	"BRL": "pt-BR", // Brazilian Real
	"MXN": "es-MX", // Mexican Peso
	"ZAR": "en-ZA", // South African Rand
	"SGD": "en-SG", // Singapore Dollar
	"HKD": "zh-HK", // Hong Kong Dollar
	"NZD": "en-NZ", // New Zealand Dollar
	"KRW": "ko-KR", // South Korean Won
	"TRY": "tr-TR", // Turkish Lira
	"ARS": "es-AR", // Argentine Peso
	"PLN": "pl-PL", // Polish Zloty
	"PHP": "en-PH", // Philippine Peso
	"IDR": "id-ID", // Indonesian Rupiah
	"MYR": "ms-MY", // Malaysian Ringgit
	"THB": "th-TH", // Thai Baht
	"ILS": "he-IL", // Israeli Shekel
	"CLP": "es-CL", // Chilean Peso
	"COP": "es-CO", // Colombian Peso
	"SAR": "ar-SA", // Saudi Riyal
	"AED": "ar-AE", // UAE Dirham
	"EGP": "ar-EG", // Egyptian Pound
	"NGN": "en-NG", // Nigerian Naira
	"PKR": "en-PK", // Pakistani Rupee
	"BD":  "bn-BD", // Bangladeshi Taka, keyed as published
	"KES": "en-KE", // Kenyan Shilling
	"CZK": "cs-CZ", // Czech Koruna
	"HUF": "hu-HU", // Hungarian Forint
	"RON": "ro-RO", // Romanian Leu
	"BGN": "bg-BG", // Bulgarian Lev
	"HRK": "hr-HR", // Croatian Kuna
	"VEF": "es-VE", // Venezuelan Bolivar
	"UAH": "uk-UA", // Ukrainian Hryvnia
	"LKR": "si-LK", // Sri Lankan Rupee
}

// LocaleForCurrency returns the display locale for a currency code, or
// en-US when the currency has no mapped locale.
func LocaleForCurrency(code string) string {
	if locale, ok := currencyLocales[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return locale
	}
	return constants.DefaultLocale
}

// LanguageForCurrency parses the display locale of a currency into a language tag.
func LanguageForCurrency(code string) language.Tag {
	tag, err := language.Parse(LocaleForCurrency(code))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
