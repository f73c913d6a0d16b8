// Package loans provides common loan processing utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/credit-portfolio-sim/pkg/constants"
	"go.uber.org/zap"
)

// Payment holds the values for a given month of a contract's projection.
type Payment struct {
	Month              int
	Payment            float64
	Interest           float64
	Principal          float64
	RemainingBefore    float64
	RemainingPrincipal float64
	Defaulted          bool
	Recovery           float64
}

// LoanConfig represents the parameters needed to project one contract.
type LoanConfig struct {
	Name         string
	Principal    float64
	InterestRate float64 // monthly, decimal
	Term         int     // months
	DefaultMonth int     // 0 when the contract performs through its term
	RecoveryRate float64
}

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard amortization (Price table) formula. The rate is a
// monthly decimal rate.
func CalculateMonthlyPayment(principal, monthlyRate float64, termMonths int) float64 {
	if monthlyRate <= 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}
	return principal * monthlyRate / (1.0 - math.Pow(1.0+monthlyRate, -float64(termMonths)))
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, monthlyRate float64) float64 {
	return remainingPrincipal * monthlyRate
}

// ExpectedRows returns the number of months a contract is projected for
// when it amortizes on schedule.
func ExpectedRows(term, defaultMonth int) int {
	if defaultMonth > 0 && defaultMonth < term {
		return defaultMonth
	}
	return term
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// Validate checks that a loan can be projected.
func (loan *LoanConfig) Validate() error {
	if loan.Term <= 0 {
		return fmt.Errorf("loan %s: term must be positive, got %d", loan.Name, loan.Term)
	}
	if loan.Principal < 0 {
		return fmt.Errorf("loan %s: principal must not be negative, got %.2f", loan.Name, loan.Principal)
	}
	if loan.DefaultMonth < 0 || loan.DefaultMonth > loan.Term {
		return fmt.Errorf("loan %s: default month %d outside term %d", loan.Name, loan.DefaultMonth, loan.Term)
	}
	return nil
}

// Project walks the loan month by month and hands every projected payment to
// emit. Projection stops after the default month or once the balance is
// fully amortized, whichever comes first.
func (g *AmortizationScheduleGenerator) Project(loan *LoanConfig, emit func(Payment)) error {
	if err := loan.Validate(); err != nil {
		return err
	}

	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.InterestRate, loan.Term)
	remaining := loan.Principal

	for month := 1; month <= loan.Term; month++ {
		var current Payment
		current.Month = month
		current.RemainingBefore = remaining

		if month == loan.DefaultMonth {
			// The missed installment leaves the balance untouched; recovery is
			// a separate inflow on the outstanding principal.
			current.RemainingPrincipal = remaining
			current.Defaulted = true
			current.Recovery = loan.RecoveryRate * remaining
			g.logger.Debug(fmt.Sprintf("month %d: loan %s defaulted with %.2f outstanding, recovering %.2f",
				month, loan.Name, remaining, current.Recovery),
				zap.String("op", "loans.Project"),
			)
			emit(current)
			return nil
		}

		current.Interest = CalculateInterestPayment(remaining, loan.InterestRate)
		current.Principal = monthlyPayment - current.Interest
		current.Payment = monthlyPayment
		if current.Principal > remaining {
			// Final-month drift: never amortize past zero.
			current.Principal = remaining
			current.Payment = current.Interest + current.Principal
		}
		remaining -= current.Principal
		current.RemainingPrincipal = remaining
		emit(current)

		if remaining <= constants.BalanceEpsilon {
			if month < loan.Term {
				g.logger.Debug(fmt.Sprintf("month %d: loan %s fully amortized before term %d",
					month, loan.Name, loan.Term),
					zap.String("op", "loans.Project"),
				)
			}
			break
		}
	}

	return nil
}

// GenerateSchedule creates the complete projected schedule for a loan.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loan *LoanConfig) ([]Payment, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	schedule := make([]Payment, 0, ExpectedRows(loan.Term, loan.DefaultMonth))
	err := g.Project(loan, func(p Payment) {
		schedule = append(schedule, p)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}
