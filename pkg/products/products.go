// Package products holds the per-product distribution table used to draw
// contract parameters.
package products

import "fmt"

// Type identifies a credit product.
type Type string

const (
	// Installment is a consumer installment loan.
	Installment Type = "installment"
	// Payroll is a payroll-deduction loan.
	Payroll Type = "payroll"
	// Card is a revolving credit card balance projected as fixed installments.
	Card Type = "card"
)

// NormalParams describes a normal draw clipped to [Min, Max].
type NormalParams struct {
	Mean  float64
	Sigma float64
	Min   float64
	Max   float64
}

// LogNormalParams describes a log-normal draw clipped to [Min, Max].
type LogNormalParams struct {
	Median float64
	Sigma  float64
	Min    float64
	Max    float64
}

// TermRange is an inclusive range of terms in months.
type TermRange struct {
	Min int
	Max int
}

// Profile holds the draw parameters for one product.
type Profile struct {
	Type         Type
	Weight       float64
	Principal    LogNormalParams
	InterestRate NormalParams // monthly, decimal
	Term         TermRange
	DefaultProb  NormalParams // annual, decimal
	RecoveryRate NormalParams
}

// Catalog is the ordered list of product profiles. The order fixes both the
// categorical draw and the order of the per-product parameter blocks.
var Catalog = []Profile{
	{
		Type:         Installment,
		Weight:       0.45,
		Principal:    LogNormalParams{Median: 60000, Sigma: 0.5, Min: 30000, Max: 150000},
		InterestRate: NormalParams{Mean: 0.018, Sigma: 0.004, Min: 0.006, Max: 0.03},
		Term:         TermRange{Min: 24, Max: 84},
		DefaultProb:  NormalParams{Mean: 0.06, Sigma: 0.02, Min: 0.02, Max: 0.12},
		RecoveryRate: NormalParams{Mean: 0.55, Sigma: 0.10, Min: 0.30, Max: 0.80},
	},
	{
		Type:         Payroll,
		Weight:       0.35,
		Principal:    LogNormalParams{Median: 18000, Sigma: 0.5, Min: 5000, Max: 60000},
		InterestRate: NormalParams{Mean: 0.013, Sigma: 0.003, Min: 0.006, Max: 0.025},
		Term:         TermRange{Min: 12, Max: 72},
		DefaultProb:  NormalParams{Mean: 0.025, Sigma: 0.01, Min: 0.005, Max: 0.05},
		RecoveryRate: NormalParams{Mean: 0.65, Sigma: 0.10, Min: 0.40, Max: 0.90},
	},
	{
		Type:         Card,
		Weight:       0.20,
		Principal:    LogNormalParams{Median: 2500, Sigma: 0.7, Min: 400, Max: 15000},
		InterestRate: NormalParams{Mean: 0.075, Sigma: 0.02, Min: 0.03, Max: 0.15},
		Term:         TermRange{Min: 6, Max: 36},
		DefaultProb:  NormalParams{Mean: 0.14, Sigma: 0.05, Min: 0.06, Max: 0.30},
		RecoveryRate: NormalParams{Mean: 0.25, Sigma: 0.08, Min: 0.05, Max: 0.45},
	},
}

// Weights returns the categorical weights of the catalog in order.
func Weights() []float64 {
	weights := make([]float64, len(Catalog))
	for i, p := range Catalog {
		weights[i] = p.Weight
	}
	return weights
}

// Lookup returns the profile for the given product type.
func Lookup(t Type) (Profile, error) {
	for _, p := range Catalog {
		if p.Type == t {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown product type %q", t)
}
