// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
)

// Clip bounds val to the closed interval [lo, hi].
func Clip(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// AnnualToMonthlyProbability converts an annual event probability into the
// equivalent constant monthly hazard.
func AnnualToMonthlyProbability(annual float64) float64 {
	return 1.0 - math.Pow(1.0-annual, 1.0/constants.MonthsPerYear)
}

// MonthlyToAnnualProbability compounds a monthly hazard back to one year.
func MonthlyToAnnualProbability(monthly float64) float64 {
	return 1.0 - math.Pow(1.0-monthly, constants.MonthsPerYear)
}
