// Package config defines the configuration of the inflation calculator and
// includes functions for loading and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for inflation-calculator.
type Configuration struct {
	Data     dataset.Paths `yaml:"data" mapstructure:"data"`
	Defaults Defaults      `yaml:"defaults" mapstructure:"defaults"`
	Logging  LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// Defaults holds the preselected calculator inputs. Currency applies when
// the default country lists no currency; FallbackCurrency applies to any
// other country without one.
type Defaults struct {
	Country          string  `yaml:"country" mapstructure:"country"`
	Currency         string  `yaml:"currency" mapstructure:"currency"`
	FallbackCurrency string  `yaml:"fallbackCurrency" mapstructure:"fallbackCurrency"`
	Amount           float64 `yaml:"amount" mapstructure:"amount"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty" mapstructure:"level"`
	// Format is json or console.
	Format string `yaml:"format,omitempty" mapstructure:"format"`
	// OutputFile optionally redirects logs to a file.
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with INFLATION_
// override file values, e.g. INFLATION_DEFAULTS_COUNTRY.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is provided.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Decoding built-in defaults cannot fail.
		panic(err)
	}
	return conf
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can override it on Unmarshal.
	v.SetDefault("data.historyFile", constants.DefaultHistoryFile)
	v.SetDefault("data.countryCurrenciesFile", constants.DefaultCountryCurrenciesFile)
	v.SetDefault("data.currenciesFile", constants.DefaultCurrenciesFile)
	v.SetDefault("defaults.country", constants.DefaultCountryName)
	v.SetDefault("defaults.currency", constants.DefaultCurrency)
	v.SetDefault("defaults.fallbackCurrency", constants.FallbackCurrency)
	v.SetDefault("defaults.amount", constants.DefaultAmount)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Defaults.Amount < 0 {
		warnings = append(warnings, fmt.Sprintf("Default amount %.2f is negative and will be ignored", c.Defaults.Amount))
	}
	if strings.TrimSpace(c.Defaults.Country) == "" {
		warnings = append(warnings, "No default country configured")
	}
	if strings.TrimSpace(c.Defaults.FallbackCurrency) == "" {
		warnings = append(warnings, "No fallback currency configured; countries without currencies will have none selected")
	}
	files := []struct {
		name string
		path string
	}{
		{"historyFile", c.Data.History},
		{"countryCurrenciesFile", c.Data.CountryCurrencies},
		{"currenciesFile", c.Data.Currencies},
	}
	for _, file := range files {
		if strings.TrimSpace(file.path) == "" {
			warnings = append(warnings, fmt.Sprintf("Data file %s is not configured", file.name))
		}
	}

	return warnings
}
