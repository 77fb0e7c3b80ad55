package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/inflation-calculator/internal/config"
	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/internal/logging"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"github.com/iwvelando/inflation-calculator/pkg/validation"
	"go.uber.org/zap"
)

// options holds the command line overrides for a calculation.
type options struct {
	configPath   string
	country      string
	currency     string
	startYear    int
	endYear      int
	amount       float64
	amountSet    bool
	outputFormat string
	logLevel     string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet("inflation-calculator", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&opts.country, "country", "", "country name or code (default from configuration)")
	flags.StringVar(&opts.currency, "currency", "", "currency code used for display")
	flags.IntVar(&opts.startYear, "start", 0, "first year to compound (default: first year with data)")
	flags.IntVar(&opts.endYear, "end", 0, "exclusive end year (default: last year with data)")
	flags.Float64Var(&opts.amount, "amount", 0, "amount to adjust (default from configuration)")
	flags.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	if flags.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "amount" {
			opts.amountSet = true
		}
	})
	return opts, nil
}

// loadConfiguration reads the configuration file. A missing file at the
// default location falls back to built-in defaults.
func loadConfiguration(path string) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if path == constants.DefaultConfigFile {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return nil, err
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "import" {
		if err := runImport(os.Args[2:], os.Stderr); err != nil {
			fmt.Printf("{\"op\": \"main.import\", \"level\": \"fatal\", \"msg\": \"import failed\", \"error\": \"%v\"}\n", err)
			os.Exit(1)
		}
		return
	}

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	conf, err := loadConfiguration(opts.configPath)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", opts.configPath, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	d, err := dataset.Load(logger, conf.Data)
	if err != nil {
		logger.Fatal("failed to load dataset",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	sel, err := resolveSelection(d, conf, opts)
	if err != nil {
		logger.Fatal("invalid selection",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := calculate(logger, sel)
	if err := writeReport(os.Stdout, outputFormat, report); err != nil {
		logger.Fatal("failed to write report",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
