// Package testutil provides common utility functions for testing.
package testutil

import (
	"path/filepath"

	"github.com/iwvelando/inflation-calculator/internal/dataset"
)

// DataPaths returns the paths of the three dataset files stored in dir
// under their default names.
func DataPaths(dir string) dataset.Paths {
	return dataset.Paths{
		History:           filepath.Join(dir, "history.json"),
		CountryCurrencies: filepath.Join(dir, "countries_currencies.json"),
		Currencies:        filepath.Join(dir, "currencies.json"),
	}
}

// FindCountry finds a country by name in the countries slice.
// Returns a pointer to the country if found, nil otherwise.
func FindCountry(countries []dataset.Country, name string) *dataset.Country {
	for i := range countries {
		if countries[i].Name == name {
			return &countries[i]
		}
	}
	return nil
}
