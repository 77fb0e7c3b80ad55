package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/inflation-calculator/internal/config"
	"github.com/iwvelando/inflation-calculator/internal/dataset"
	"github.com/iwvelando/inflation-calculator/pkg/constants"
	"github.com/iwvelando/inflation-calculator/pkg/inflation"
	"github.com/iwvelando/inflation-calculator/pkg/output"
	"github.com/iwvelando/inflation-calculator/pkg/validation"
	"go.uber.org/zap"
)

// resolveSelection starts from the configured defaults, preselects the
// country's currency and year range, and applies command line overrides.
func resolveSelection(d *dataset.Dataset, conf *config.Configuration, opts options) (dataset.Selection, error) {
	key := conf.Defaults.Country
	fallback := conf.Defaults.FallbackCurrency
	if opts.country != "" {
		key = opts.country
	} else if conf.Defaults.Currency != "" {
		fallback = conf.Defaults.Currency
	}

	amount := conf.Defaults.Amount
	if amount < 0 {
		amount = constants.DefaultAmount
	}
	if opts.amountSet {
		amount = opts.amount
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return dataset.Selection{}, err
	}

	sel, err := d.DefaultSelection(key, fallback, amount)
	if err != nil {
		return dataset.Selection{}, err
	}

	if opts.currency != "" {
		if err := validation.ValidateCurrency(opts.currency, d.Currencies()); err != nil {
			return dataset.Selection{}, err
		}
		sel.Currency = strings.ToUpper(strings.TrimSpace(opts.currency))
	}
	if opts.startYear != 0 {
		sel.StartYear = opts.startYear
	}
	if opts.endYear != 0 {
		sel.EndYear = opts.endYear
	}
	return sel, nil
}

// calculate runs the calculator over a selection and wraps the outcome in a
// report.
func calculate(logger *zap.Logger, sel dataset.Selection) output.Report {
	calculator := inflation.NewCalculator(logger)
	req := inflation.Request{
		Series:    sel.Country.Data,
		StartYear: sel.StartYear,
		EndYear:   sel.EndYear,
		Amount:    sel.Amount,
	}

	result, ok := calculator.Calculate(req)
	if !ok {
		logger.Info("no inflation data for selection",
			zap.String("op", "main.calculate"),
			zap.String("country", sel.Country.Name),
			zap.NamedError("reason", calculator.Explain(req)),
		)
	}
	return output.NewReport(sel.Country.Name, sel.Currency, sel.StartYear, sel.EndYear, sel.Amount, result, ok)
}

func writeReport(w io.Writer, outputFormat string, report output.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(w, report)
		return nil
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, report)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, report)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}
