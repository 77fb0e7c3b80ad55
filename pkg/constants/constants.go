// Package constants provides shared constants for the inflation-calculator application.
package constants

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Inflation health thresholds, expressed as average annual percentage rates.
const (
	// LowInflationThreshold is the lower bound of the moderate bucket.
	LowInflationThreshold = 3.0

	// HighInflationThreshold is the lower bound of the high bucket.
	HighInflationThreshold = 6.0
)

// Selection defaults used when the configuration omits them.
const (
	// DefaultCountryName is the country preselected by the UI.
	DefaultCountryName = "Viet Nam"

	// DefaultCurrency is used when the default country has no currencies listed.
	DefaultCurrency = "VND"

	// FallbackCurrency is used when a newly selected country has no currencies listed.
	FallbackCurrency = "USD"

	// DefaultAmount is the principal preselected by the UI.
	DefaultAmount = 1_000_000.0

	// DefaultLocale is used for currencies without a mapped locale.
	DefaultLocale = "en-US"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. INFLATION_OUTPUT_FORMAT.
	EnvPrefix = "INFLATION"
)

// Dataset file defaults
const (
	// DefaultHistoryFile holds per-country annual inflation rates.
	DefaultHistoryFile = "data/history.json"

	// DefaultCountryCurrenciesFile maps country codes to currency codes.
	DefaultCountryCurrenciesFile = "data/countries_currencies.json"

	// DefaultCurrenciesFile lists every known currency code.
	DefaultCurrenciesFile = "data/currencies.json"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
