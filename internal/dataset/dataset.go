// Package dataset loads the static reference data used by the calculator:
// per-country inflation histories, the currencies used by each country and
// the list of every known currency.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iwvelando/inflation-calculator/pkg/inflation"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrUnknownCountry is returned when a country name or code is not in the dataset.
var ErrUnknownCountry = errors.New("unknown country")

// Country is one entry of the inflation history.
type Country struct {
	Name          string           `json:"countryName"`
	Code          string           `json:"countryCode"`
	IndicatorName string           `json:"indicatorName"`
	IndicatorCode string           `json:"indicatorCode"`
	Data          inflation.Series `json:"data"`
}

// Paths locates the three dataset files.
type Paths struct {
	History           string `yaml:"historyFile" mapstructure:"historyFile"`
	CountryCurrencies string `yaml:"countryCurrenciesFile" mapstructure:"countryCurrenciesFile"`
	Currencies        string `yaml:"currenciesFile" mapstructure:"currenciesFile"`
}

// Files returns the non-empty paths in a stable order.
func (p Paths) Files() []string {
	var files []string
	for _, path := range []string{p.History, p.CountryCurrencies, p.Currencies} {
		if path != "" {
			files = append(files, path)
		}
	}
	return files
}

// Dataset is an immutable view over the loaded reference data.
type Dataset struct {
	countries         []Country
	byName            map[string]int
	byCode            map[string]int
	countryCurrencies map[string][]string
	currencies        []string
}

// New builds a Dataset. history is keyed by country name as in the
// published JSON; entries without a name take the key.
func New(history map[string]Country, countryCurrencies map[string][]string, currencies []string) *Dataset {
	d := &Dataset{
		countries:         make([]Country, 0, len(history)),
		byName:            make(map[string]int, len(history)),
		byCode:            make(map[string]int, len(history)),
		countryCurrencies: make(map[string][]string, len(countryCurrencies)),
		currencies:        append([]string(nil), currencies...),
	}

	for key, country := range history {
		if country.Name == "" {
			country.Name = key
		}
		if country.Data == nil {
			country.Data = inflation.Series{}
		}
		d.countries = append(d.countries, country)
	}
	collator := collate.New(language.English)
	sort.SliceStable(d.countries, func(i, j int) bool {
		if c := collator.CompareString(d.countries[i].Name, d.countries[j].Name); c != 0 {
			return c < 0
		}
		return d.countries[i].Name < d.countries[j].Name
	})
	for i, country := range d.countries {
		d.byName[strings.ToLower(country.Name)] = i
		if country.Code != "" {
			d.byCode[strings.ToUpper(country.Code)] = i
		}
	}

	for code, list := range countryCurrencies {
		d.countryCurrencies[normalizeCode(code)] = append([]string(nil), list...)
	}
	return d
}

// Load reads the dataset files named in paths.
func Load(logger *zap.Logger, paths Paths) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	history, err := os.Open(paths.History)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = history.Close() }()

	countryCurrencies, err := os.Open(paths.CountryCurrencies)
	if err != nil {
		return nil, fmt.Errorf("failed to open country currencies file: %w", err)
	}
	defer func() { _ = countryCurrencies.Close() }()

	currencies, err := os.Open(paths.Currencies)
	if err != nil {
		return nil, fmt.Errorf("failed to open currencies file: %w", err)
	}
	defer func() { _ = currencies.Close() }()

	d, err := Decode(history, countryCurrencies, currencies)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		zap.String("op", "dataset.Load"),
		zap.Int("countries", len(d.countries)),
		zap.Int("currencies", len(d.currencies)),
	)
	return d, nil
}

// Decode parses the three dataset documents.
func Decode(history, countryCurrencies, currencies io.Reader) (*Dataset, error) {
	var h map[string]Country
	if err := json.NewDecoder(history).Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	var cc map[string][]string
	if err := json.NewDecoder(countryCurrencies).Decode(&cc); err != nil {
		return nil, fmt.Errorf("failed to decode country currencies: %w", err)
	}

	var list []string
	if err := json.NewDecoder(currencies).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode currencies: %w", err)
	}

	return New(h, cc, list), nil
}

// Countries returns every country in English collation order of their names.
func (d *Dataset) Countries() []Country {
	return append([]Country(nil), d.countries...)
}

// Country finds a country by case-insensitive name or code.
func (d *Dataset) Country(key string) (Country, error) {
	trimmed := strings.TrimSpace(key)
	if i, ok := d.byCode[strings.ToUpper(trimmed)]; ok {
		return d.countries[i], nil
	}
	if i, ok := d.byName[strings.ToLower(trimmed)]; ok {
		return d.countries[i], nil
	}
	return Country{}, fmt.Errorf("%w: %q", ErrUnknownCountry, key)
}

// CurrenciesFor returns the currencies used by a country code.
func (d *Dataset) CurrenciesFor(code string) []string {
	return append([]string(nil), d.countryCurrencies[normalizeCode(code)]...)
}

// Currencies returns every known currency code.
func (d *Dataset) Currencies() []string {
	return append([]string(nil), d.currencies...)
}

// HasCurrency reports whether code is a known currency.
func (d *Dataset) HasCurrency(code string) bool {
	for _, c := range d.currencies {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}
