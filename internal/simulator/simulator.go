// Package simulator generates a synthetic credit portfolio and projects the
// monthly cash flows of every contract, including default and recovery.
package simulator

import (
	"fmt"

	"github.com/iwvelando/credit-portfolio-sim/pkg/loans"
	"github.com/iwvelando/credit-portfolio-sim/pkg/mathutil"
	"github.com/iwvelando/credit-portfolio-sim/pkg/products"
	"github.com/iwvelando/credit-portfolio-sim/pkg/sampling"
	"github.com/iwvelando/credit-portfolio-sim/pkg/validation"
	"go.uber.org/zap"
)

// Contract is one row of the portfolio table.
type Contract struct {
	ContractID   int
	ProductType  products.Type
	Principal    float64
	InterestRate float64 // monthly, decimal
	TermMonths   int
	DefaultProb  float64 // annual
	DefaultProbM float64 // monthly
	RecoveryRate float64
	DefaultMonth int // 0 when the contract does not default within its term
}

// HasDefault reports whether the contract defaults within its term.
func (c Contract) HasDefault() bool {
	return c.DefaultMonth > 0
}

// CashflowRow is one row of the cash-flow table.
type CashflowRow struct {
	ContractID               int
	Month                    int
	ProductType              products.Type
	ScheduledPayment         float64
	InterestComponent        float64
	PrincipalComponent       float64
	RemainingPrincipalBefore float64
	RemainingPrincipalAfter  float64
	DefaultedThisMonth       bool
	RecoveryCashflow         float64
}

func newCashflowRow(c Contract, p loans.Payment) CashflowRow {
	return CashflowRow{
		ContractID:               c.ContractID,
		Month:                    p.Month,
		ProductType:              c.ProductType,
		ScheduledPayment:         p.Payment,
		InterestComponent:        p.Interest,
		PrincipalComponent:       p.Principal,
		RemainingPrincipalBefore: p.RemainingBefore,
		RemainingPrincipalAfter:  p.RemainingPrincipal,
		DefaultedThisMonth:       p.Defaulted,
		RecoveryCashflow:         p.Recovery,
	}
}

// Result holds both generated tables. Neither table is modified after
// Simulate returns.
type Result struct {
	Seed      int64
	Portfolio []Contract
	Cashflows []CashflowRow
}

// Simulate draws nContracts contracts from a generator seeded with seed and
// projects their cash flows. Identical arguments produce identical results.
func Simulate(logger *zap.Logger, nContracts int, seed int64) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validation.ValidateContractCount(nContracts); err != nil {
		return nil, err
	}

	rng := sampling.NewGenerator(seed)
	portfolio := drawPortfolio(rng, nContracts)

	logger.Debug(fmt.Sprintf("drew %d contracts with seed %d", nContracts, seed),
		zap.String("op", "simulator.Simulate"),
	)

	cashflows, err := projectCashflows(logger, portfolio)
	if err != nil {
		return nil, err
	}

	logger.Info("simulated portfolio",
		zap.String("op", "simulator.Simulate"),
		zap.Int("contracts", len(portfolio)),
		zap.Int("cashflowRows", len(cashflows)),
		zap.Int64("seed", seed),
	)

	return &Result{Seed: seed, Portfolio: portfolio, Cashflows: cashflows}, nil
}

// drawPortfolio consumes the generator in a fixed order: product assignment,
// then per product the parameter blocks, then one default-month draw per
// contract.
func drawPortfolio(rng *sampling.Generator, n int) []Contract {
	portfolio := make([]Contract, n)
	weights := products.Weights()
	byProduct := make([][]int, len(products.Catalog))

	for i := range portfolio {
		k := rng.Categorical(weights)
		portfolio[i].ContractID = i + 1
		portfolio[i].ProductType = products.Catalog[k].Type
		byProduct[k] = append(byProduct[k], i)
	}

	for k, profile := range products.Catalog {
		idx := byProduct[k]
		for _, i := range idx {
			p := profile.Principal
			portfolio[i].Principal = rng.ClippedLogNormal(p.Median, p.Sigma, p.Min, p.Max)
		}
		for _, i := range idx {
			r := profile.InterestRate
			portfolio[i].InterestRate = rng.ClippedNormal(r.Mean, r.Sigma, r.Min, r.Max)
		}
		for _, i := range idx {
			portfolio[i].TermMonths = rng.IntRange(profile.Term.Min, profile.Term.Max)
		}
		for _, i := range idx {
			d := profile.DefaultProb
			portfolio[i].DefaultProb = rng.ClippedNormal(d.Mean, d.Sigma, d.Min, d.Max)
		}
		for _, i := range idx {
			rr := profile.RecoveryRate
			portfolio[i].RecoveryRate = rng.ClippedNormal(rr.Mean, rr.Sigma, rr.Min, rr.Max)
		}
	}

	for i := range portfolio {
		portfolio[i].DefaultProbM = mathutil.AnnualToMonthlyProbability(portfolio[i].DefaultProb)
	}

	for i := range portfolio {
		month := rng.Geometric(portfolio[i].DefaultProbM)
		if month <= portfolio[i].TermMonths {
			portfolio[i].DefaultMonth = month
		}
	}

	return portfolio
}

// projectCashflows runs the amortization schedule for every contract and
// streams the rows into a buffer sized up front.
func projectCashflows(logger *zap.Logger, portfolio []Contract) ([]CashflowRow, error) {
	total := 0
	for _, c := range portfolio {
		total += loans.ExpectedRows(c.TermMonths, c.DefaultMonth)
	}
	cashflows := make([]CashflowRow, 0, total)

	generator := loans.NewAmortizationScheduleGenerator(logger)
	for _, c := range portfolio {
		loan := &loans.LoanConfig{
			Name:         fmt.Sprintf("contract-%d", c.ContractID),
			Principal:    c.Principal,
			InterestRate: c.InterestRate,
			Term:         c.TermMonths,
			DefaultMonth: c.DefaultMonth,
			RecoveryRate: c.RecoveryRate,
		}
		err := generator.Project(loan, func(p loans.Payment) {
			cashflows = append(cashflows, newCashflowRow(c, p))
		})
		if err != nil {
			return nil, fmt.Errorf("failed to project contract %d: %w", c.ContractID, err)
		}
	}

	return cashflows, nil
}
