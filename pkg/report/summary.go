// Package report aggregates a simulated portfolio into a run summary and
// encodes it as a YAML manifest.
package report

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"github.com/iwvelando/credit-portfolio-sim/pkg/products"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Totals holds cash amounts summed over a set of contracts.
type Totals struct {
	Principal         float64 `yaml:"principal"`
	ScheduledPayments float64 `yaml:"scheduledPayments"`
	Interest          float64 `yaml:"interest"`
	PrincipalRepaid   float64 `yaml:"principalRepaid"`
	DefaultedExposure float64 `yaml:"defaultedExposure"`
	Recoveries        float64 `yaml:"recoveries"`
	Loss              float64 `yaml:"loss"`
}

// ProductSummary describes the contracts of one product.
type ProductSummary struct {
	Product         products.Type `yaml:"product"`
	Contracts       int           `yaml:"contracts"`
	Defaults        int           `yaml:"defaults"`
	DefaultRate     float64       `yaml:"defaultRate"`
	AvgInterestRate float64       `yaml:"avgInterestRate"`
	AvgTermMonths   float64       `yaml:"avgTermMonths"`
	Totals          Totals        `yaml:"totals"`
}

// Summary is the manifest of one simulation run.
type Summary struct {
	RunID        string           `yaml:"runId"`
	GeneratedAt  time.Time        `yaml:"generatedAt"`
	Seed         int64            `yaml:"seed"`
	Contracts    int              `yaml:"contracts"`
	CashflowRows int              `yaml:"cashflowRows"`
	Defaults     int              `yaml:"defaults"`
	Totals       Totals           `yaml:"totals"`
	Products     []ProductSummary `yaml:"products"`
}

type accumulator struct {
	contracts, defaults int
	rateSum             decimal.Decimal
	termSum             int64
	principal           decimal.Decimal
	payments            decimal.Decimal
	interest            decimal.Decimal
	repaid              decimal.Decimal
	exposure            decimal.Decimal
	recoveries          decimal.Decimal
}

func (a *accumulator) totals() Totals {
	return Totals{
		Principal:         money(a.principal),
		ScheduledPayments: money(a.payments),
		Interest:          money(a.interest),
		PrincipalRepaid:   money(a.repaid),
		DefaultedExposure: money(a.exposure),
		Recoveries:        money(a.recoveries),
		Loss:              money(a.exposure.Sub(a.recoveries)),
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den))).Round(6).InexactFloat64()
}

// Summarize aggregates a simulation result by product. Amounts are summed
// with decimal arithmetic so the totals do not depend on row order.
func Summarize(result *simulator.Result) Summary {
	overall := &accumulator{}
	byProduct := make(map[products.Type]*accumulator, len(products.Catalog))
	for _, p := range products.Catalog {
		byProduct[p.Type] = &accumulator{}
	}

	for _, c := range result.Portfolio {
		acc := byProduct[c.ProductType]
		principal := decimal.NewFromFloat(c.Principal)
		for _, a := range []*accumulator{overall, acc} {
			a.contracts++
			a.principal = a.principal.Add(principal)
			a.rateSum = a.rateSum.Add(decimal.NewFromFloat(c.InterestRate))
			a.termSum += int64(c.TermMonths)
			if c.HasDefault() {
				a.defaults++
			}
		}
	}

	for _, row := range result.Cashflows {
		acc := byProduct[row.ProductType]
		payment := decimal.NewFromFloat(row.ScheduledPayment)
		interest := decimal.NewFromFloat(row.InterestComponent)
		repaid := decimal.NewFromFloat(row.PrincipalComponent)
		for _, a := range []*accumulator{overall, acc} {
			a.payments = a.payments.Add(payment)
			a.interest = a.interest.Add(interest)
			a.repaid = a.repaid.Add(repaid)
			if row.DefaultedThisMonth {
				a.exposure = a.exposure.Add(decimal.NewFromFloat(row.RemainingPrincipalBefore))
				a.recoveries = a.recoveries.Add(decimal.NewFromFloat(row.RecoveryCashflow))
			}
		}
	}

	summary := Summary{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC().Truncate(time.Second),
		Seed:         result.Seed,
		Contracts:    overall.contracts,
		CashflowRows: len(result.Cashflows),
		Defaults:     overall.defaults,
		Totals:       overall.totals(),
	}

	for _, p := range products.Catalog {
		acc := byProduct[p.Type]
		ps := ProductSummary{
			Product:     p.Type,
			Contracts:   acc.contracts,
			Defaults:    acc.defaults,
			DefaultRate: ratio(acc.defaults, acc.contracts),
			Totals:      acc.totals(),
		}
		if acc.contracts > 0 {
			n := decimal.NewFromInt(int64(acc.contracts))
			ps.AvgInterestRate = acc.rateSum.Div(n).Round(6).InexactFloat64()
			ps.AvgTermMonths = decimal.NewFromInt(acc.termSum).Div(n).Round(2).InexactFloat64()
		}
		summary.Products = append(summary.Products, ps)
	}

	return summary
}

// WriteYAML encodes the summary as a YAML document.
func WriteYAML(w io.Writer, summary Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML decodes a manifest written by WriteYAML.
func ReadYAML(r io.Reader) (Summary, error) {
	var summary Summary
	err := yaml.NewDecoder(r).Decode(&summary)
	return summary, err
}
