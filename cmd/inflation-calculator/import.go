package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/internal/logging"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"go.uber.org/zap"
)

// runImport converts the published World Bank and restcountries downloads
// into the dataset files named by the configuration.
func runImport(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("inflation-calculator import", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", constants.DefaultConfigFile, "path to configuration file naming the output files")
	worldBank := flags.String("worldbank", "", "path to the World Bank inflation CSV (API_FP.CPI.TOTL.ZG_DS2_*.csv)")
	restCountries := flags.String("restcountries", "", "path to the restcountries JSON export")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *worldBank == "" || *restCountries == "" {
		return errors.New("both -worldbank and -restcountries are required")
	}

	conf, err := loadConfiguration(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", *configPath, err)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	return importDataset(logger, *worldBank, *restCountries, conf.Data)
}

func importDataset(logger *zap.Logger, worldBankPath, restCountriesPath string, paths dataset.Paths) error {
	var (
		history           map[string]dataset.Country
		countryCurrencies map[string][]string
		currencies        []string
	)

	if err := withFile(worldBankPath, func(r io.Reader) error {
		var err error
		history, err = dataset.ImportWorldBankCSV(r)
		return err
	}); err != nil {
		return err
	}

	if err := withFile(restCountriesPath, func(r io.Reader) error {
		var err error
		countryCurrencies, currencies, err = dataset.ImportRestCountries(r)
		return err
	}); err != nil {
		return err
	}

	if err := dataset.Save(paths, history, countryCurrencies, currencies); err != nil {
		return err
	}

	logger.Info("dataset imported",
		zap.String("op", "main.importDataset"),
		zap.Int("countries", len(history)),
		zap.Int("currencies", len(currencies)),
		zap.String("historyFile", paths.History),
	)
	return nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := fn(f); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	return nil
}
