package validation

import (
	"fmt"
	"path/filepath"

	"github.com/Rhymond/go-money"
	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
)

// ConfigValidator collects the settings checked before a run.
type ConfigValidator struct {
	Contracts     int
	PortfolioPath string
	CashflowsPath string
	SummaryPath   string
	Currency      string
}

// ValidatePaths warns when two outputs would be written to the same file.
func ValidatePaths(paths map[string]string) []string {
	var warnings []string
	seen := make(map[string]string)
	for _, name := range []string{"portfolio", "cashflows", "summary"} {
		path, ok := paths[name]
		if !ok || path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if other, dup := seen[clean]; dup {
			warnings = append(warnings, fmt.Sprintf("%s output shares path %s with %s output; it will be overwritten",
				name, clean, other))
			continue
		}
		seen[clean] = name
	}
	return warnings
}

// ValidateAll validates the run settings and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if cv.Contracts > constants.LargePortfolioThreshold {
		warnings = append(warnings, fmt.Sprintf("requested %d contracts; the cash-flow table may need several GB of memory",
			cv.Contracts))
	}

	warnings = append(warnings, ValidatePaths(map[string]string{
		"portfolio": cv.PortfolioPath,
		"cashflows": cv.CashflowsPath,
		"summary":   cv.SummaryPath,
	})...)

	if cv.Currency != "" && money.GetCurrency(cv.Currency) == nil {
		warnings = append(warnings, fmt.Sprintf("unknown currency %q; amounts will be shown without a symbol", cv.Currency))
	}

	return warnings
}
