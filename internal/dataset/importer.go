package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iwvelando/inflation-calculator/pkg/inflation"
)

const (
	columnCountryName   = "Country Name"
	columnCountryCode   = "Country Code"
	columnIndicatorName = "Indicator Name"
	columnIndicatorCode = "Indicator Code"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ImportWorldBankCSV converts a World Bank indicator export into a history
// keyed by country name. Rows before the "Country Name" header are skipped,
// empty cells become years without data and a UTF-8 byte order mark is
// tolerated.
func ImportWorldBankCSV(r io.Reader) (map[string]Country, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = buffered.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var headers []string
	for headers == nil {
		row, err := reader.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("missing %q header", columnCountryName)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV header: %w", err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if len(row) > 0 && row[0] == columnCountryName {
			headers = row
		}
	}

	history := make(map[string]Country)
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line, err)
		}

		country := Country{Data: inflation.Series{}}
		for i, value := range row {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			switch header := headers[i]; header {
			case columnCountryName:
				country.Name = value
			case columnCountryCode:
				country.Code = value
			case columnIndicatorName:
				country.IndicatorName = value
			case columnIndicatorCode:
				country.IndicatorCode = value
			default:
				year, err := strconv.Atoi(header)
				if err != nil {
					continue
				}
				if value == "" {
					country.Data[year] = nil
					continue
				}
				rate, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return nil, fmt.Errorf("invalid rate %q for %s in %d: %w", value, country.Name, year, err)
				}
				country.Data[year] = inflation.RateOf(rate)
			}
		}

		if country.Name == "" {
			continue
		}
		history[country.Name] = country
	}

	return history, nil
}

type restCountry struct {
	CCA3       string                     `json:"cca3"`
	Currencies map[string]json.RawMessage `json:"currencies"`
}

// ImportRestCountries converts a restcountries.com response requested with
// fields=cca3,currencies into a country code to currencies mapping and the
// sorted list of every currency seen. Countries without currencies are
// dropped.
func ImportRestCountries(r io.Reader) (map[string][]string, []string, error) {
	var entries []restCountry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, nil, fmt.Errorf("failed to decode countries: %w", err)
	}

	countryCurrencies := make(map[string][]string)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.CCA3 == "" || len(entry.Currencies) == 0 {
			continue
		}
		codes := make([]string, 0, len(entry.Currencies))
		for code := range entry.Currencies {
			codes = append(codes, code)
			seen[code] = struct{}{}
		}
		sort.Strings(codes)
		countryCurrencies[entry.CCA3] = codes
	}

	currencies := make([]string, 0, len(seen))
	for code := range seen {
		currencies = append(currencies, code)
	}
	sort.Strings(currencies)

	return countryCurrencies, currencies, nil
}

// Save writes the three dataset documents to paths as indented JSON,
// creating parent directories as needed.
func Save(paths Paths, history map[string]Country, countryCurrencies map[string][]string, currencies []string) error {
	if paths.History == "" || paths.CountryCurrencies == "" || paths.Currencies == "" {
		return errors.New("all dataset paths are required")
	}

	documents := []struct {
		path  string
		value interface{}
	}{
		{paths.History, history},
		{paths.CountryCurrencies, countryCurrencies},
		{paths.Currencies, currencies},
	}
	for _, doc := range documents {
		if err := writeJSON(doc.path, doc.value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, value interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
