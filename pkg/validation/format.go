// Package validation provides common validation utilities.
package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
)

// ErrInvalidContractCount is returned when a portfolio of fewer than one
// contract is requested.
var ErrInvalidContractCount = errors.New("contract count must be positive")

// ValidateContractCount checks the number of contracts requested for a run.
func ValidateContractCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidContractCount, n)
	}
	return nil
}

// ValidateOutputFormat checks if the summary format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatYAML {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatYAML, format)
	}
	return nil
}
