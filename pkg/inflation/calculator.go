package inflation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/inflation-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRange is reported when the start year is not before the end year.
	ErrInvalidRange = errors.New("start year must be before end year")

	// ErrMissingRate is reported when a year inside the range has no rate.
	ErrMissingRate = errors.New("missing inflation rate")

	// ErrOutOfRange is reported when the adjusted amount is not a finite number.
	ErrOutOfRange = errors.New("adjusted amount out of range")
)

// Request holds the inputs of a single calculation. EndYear is exclusive.
type Request struct {
	Series    Series
	StartYear int
	EndYear   int
	Amount    float64
}

// Result holds the outcome of a calculation. Monetary and rate fields are
// rounded to two decimals.
type Result struct {
	AdjustedAmount float64 `json:"adjustedAmount"`
	CumulativeRate float64 `json:"cumulativeRate"`
	AverageRate    float64 `json:"averageRate"`
	Health         Health  `json:"health"`
	Years          int     `json:"years"`
}

// Calculator runs inflation calculations with diagnostic logging.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a calculator that logs through logger.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate compounds the rates of every year in [StartYear, EndYear) onto
// Amount. ok is false for an inverted or empty range, for any year without
// a rate and for an amount that overflows; the cases look the same to the
// caller.
func (c *Calculator) Calculate(req Request) (Result, bool) {
	c.logger.Debug("calculating inflation",
		zap.String("op", "inflation.Calculate"),
		zap.Int("startYear", req.StartYear),
		zap.Int("endYear", req.EndYear),
		zap.Float64("amount", req.Amount),
	)

	result, err := c.compute(req)
	if err != nil {
		c.logger.Warn("no inflation result",
			zap.String("op", "inflation.Calculate"),
			zap.Error(err),
		)
		return Result{}, false
	}

	c.logger.Debug("inflation calculated",
		zap.String("op", "inflation.Calculate"),
		zap.Float64("cumulativeRate", result.CumulativeRate),
		zap.Float64("averageRate", result.AverageRate),
		zap.String("health", string(result.Health)),
	)
	return result, true
}

// Explain reports why req yields no result, or nil when it yields one. The
// returned error wraps ErrInvalidRange, ErrMissingRate or ErrOutOfRange.
func (c *Calculator) Explain(req Request) error {
	_, err := c.compute(req)
	return err
}

func (c *Calculator) compute(req Request) (Result, error) {
	if req.StartYear >= req.EndYear {
		return Result{}, fmt.Errorf("%w: %d >= %d", ErrInvalidRange, req.StartYear, req.EndYear)
	}

	adjusted := req.Amount
	cumulativeRate := 0.0
	yearsCount := 0

	for year := req.StartYear; year < req.EndYear; year++ {
		rate, ok := req.Series.Rate(year)
		if !ok {
			return Result{}, fmt.Errorf("%w for year %d", ErrMissingRate, year)
		}

		adjusted *= mathutil.GrowthFactor(rate)
		cumulativeRate += rate
		yearsCount++

		c.logger.Debug("compounded year",
			zap.String("op", "inflation.Calculate"),
			zap.Int("year", year),
			zap.Float64("rate", rate),
			zap.Float64("adjusted", adjusted),
		)
	}

	averageRate := mathutil.SafeDivide(cumulativeRate, float64(yearsCount))
	rounded := mathutil.Round(adjusted)
	if math.IsInf(rounded, 0) || math.IsNaN(rounded) {
		return Result{}, fmt.Errorf("%w: %g", ErrOutOfRange, adjusted)
	}

	return Result{
		AdjustedAmount: rounded,
		CumulativeRate: mathutil.Round(cumulativeRate),
		AverageRate:    mathutil.Round(averageRate),
		Health:         Classify(averageRate),
		Years:          yearsCount,
	}, nil
}

// Calculate runs a calculation without logging. See Calculator.Calculate.
func Calculate(series Series, startYear, endYear int, amount float64) (Result, bool) {
	return NewCalculator(nil).Calculate(Request{
		Series:    series,
		StartYear: startYear,
		EndYear:   endYear,
		Amount:    amount,
	})
}
