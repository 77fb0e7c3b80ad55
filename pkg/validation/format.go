// Package validation provides common validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/inflation-calculator/pkg/constants"
)

// ErrNegativeAmount is returned for amounts below zero.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateAmount checks that an amount is a finite, non-negative number.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount must be a finite number, got %v", amount)
	}
	if amount < 0 {
		return fmt.Errorf("%w, got %.2f", ErrNegativeAmount, amount)
	}
	return nil
}

// ValidateCurrency checks that code is one of the known currency codes.
func ValidateCurrency(code string, known []string) error {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return errors.New("currency is required")
	}
	for _, candidate := range known {
		if strings.EqualFold(candidate, trimmed) {
			return nil
		}
	}
	return fmt.Errorf("unknown currency %s", code)
}
