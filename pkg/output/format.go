// Package output provides utilities for exporting and displaying simulation results.
package output

import (
	"io"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"github.com/iwvelando/credit-portfolio-sim/pkg/report"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders a cash amount in the given ISO currency. Unknown
// currencies fall back to a plain number with thousands separators.
func FormatAmount(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return message.NewPrinter(language.English).Sprintf("%.2f", amount)
	}
	factor := decimal.New(1, int32(cur.Fraction))
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// PrettySummary outputs a human-readable summary of a run followed by the
// first and last rows of both tables.
func PrettySummary(w io.Writer, summary report.Summary, result *simulator.Result, currency string, preview int) {
	p := message.NewPrinter(language.English)

	_, _ = p.Fprintf(w, "--- Portfolio run %s (seed %d) ---\n", summary.RunID, summary.Seed)
	_, _ = p.Fprintf(w, "Contracts: %d | Cash-flow rows: %d | Defaults: %d\n",
		summary.Contracts, summary.CashflowRows, summary.Defaults)
	_, _ = p.Fprintf(w, "Principal: %s | Interest: %s | Recoveries: %s | Loss: %s\n\n",
		FormatAmount(summary.Totals.Principal, currency),
		FormatAmount(summary.Totals.Interest, currency),
		FormatAmount(summary.Totals.Recoveries, currency),
		FormatAmount(summary.Totals.Loss, currency))

	_, _ = p.Fprintf(w, "Product     | Contracts | Defaults | Default rate | Avg rate | Avg term | Principal\n")
	_, _ = p.Fprintf(w, "_______     | _________ | ________ | ____________ | ________ | ________ | _________\n")
	for _, ps := range summary.Products {
		_, _ = p.Fprintf(w, "%-11s | %9d | %8d | %11.2f%% | %7.2f%% | %8.1f | %s\n",
			ps.Product, ps.Contracts, ps.Defaults, ps.DefaultRate*100, ps.AvgInterestRate*100,
			ps.AvgTermMonths, FormatAmount(ps.Totals.Principal, currency))
	}

	if preview <= 0 || result == nil {
		return
	}

	_, _ = p.Fprintf(w, "\n--- Portfolio (first and last %d rows) ---\n", preview)
	for _, c := range previewRows(result.Portfolio, preview) {
		defaultMonth := "-"
		if c.HasDefault() {
			defaultMonth = strconv.Itoa(c.DefaultMonth)
		}
		_, _ = p.Fprintf(w, "%6d | %-11s | %12.2f | %.4f | %3d | %.4f | %.4f | %3s\n",
			c.ContractID, c.ProductType, c.Principal, c.InterestRate, c.TermMonths,
			c.DefaultProb, c.RecoveryRate, defaultMonth)
	}

	_, _ = p.Fprintf(w, "\n--- Cash flows (first and last %d rows) ---\n", preview)
	for _, r := range previewRows(result.Cashflows, preview) {
		_, _ = p.Fprintf(w, "%6d | %3d | %-11s | %10.2f | %10.2f | %10.2f | %12.2f | %t | %10.2f\n",
			r.ContractID, r.Month, r.ProductType, r.ScheduledPayment, r.InterestComponent,
			r.PrincipalComponent, r.RemainingPrincipalAfter, r.DefaultedThisMonth, r.RecoveryCashflow)
	}
}

// previewRows returns the first n and last n rows without repeating rows
// when the table is short.
func previewRows[T any](rows []T, n int) []T {
	if len(rows) <= 2*n {
		return rows
	}
	out := make([]T, 0, 2*n)
	out = append(out, rows[:n]...)
	return append(out, rows[len(rows)-n:]...)
}
