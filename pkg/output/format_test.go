package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"github.com/iwvelando/credit-portfolio-sim/pkg/products"
	"github.com/iwvelando/credit-portfolio-sim/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		contains []string
	}{
		{"Brazilian real", 1234.56, "BRL", []string{"R$", "1.234,56"}},
		{"US dollar", 1234.56, "USD", []string{"$", "1,234.56"}},
		{"Rounds to cents", 0.005, "USD", []string{"0.01"}},
		{"Unknown currency", 1234567.891, "XXZ", []string{"1,234,567.89"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(tt.amount, tt.currency)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestPreviewRows(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	assert.Equal(t, []int{1, 2, 3, 10, 11, 12}, previewRows(rows, 3))
	assert.Equal(t, rows, previewRows(rows, 6))
	assert.Equal(t, []int{1, 2}, previewRows([]int{1, 2}, 5))
}

func TestPrettySummary(t *testing.T) {
	result, err := simulator.Simulate(nil, 25, 3)
	require.NoError(t, err)
	summary := report.Summarize(result)

	var buf bytes.Buffer
	PrettySummary(&buf, summary, result, "BRL", 2)
	out := buf.String()

	assert.Contains(t, out, summary.RunID)
	assert.Contains(t, out, "installment")
	assert.Contains(t, out, "payroll")
	assert.Contains(t, out, "card")
	assert.Contains(t, out, "--- Portfolio (first and last 2 rows) ---")
	assert.Contains(t, out, "--- Cash flows (first and last 2 rows) ---")
}

func TestPrettySummaryWithoutPreview(t *testing.T) {
	result, err := simulator.Simulate(nil, 5, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	PrettySummary(&buf, report.Summarize(result), result, "USD", 0)

	assert.False(t, strings.Contains(buf.String(), "Cash flows (first"), "preview should be omitted")
}

func TestPrettySummaryPreviewRows(t *testing.T) {
	result := &simulator.Result{
		Seed: 5,
		Portfolio: []simulator.Contract{
			{ContractID: 1, ProductType: products.Card, Principal: 2500, TermMonths: 6, DefaultMonth: 4},
			{ContractID: 2, ProductType: products.Payroll, Principal: 18000, TermMonths: 12},
		},
		Cashflows: []simulator.CashflowRow{
			{ContractID: 1, Month: 1, ProductType: products.Card, ScheduledPayment: 450, RemainingPrincipalAfter: 2237.5},
		},
	}

	var buf bytes.Buffer
	PrettySummary(&buf, report.Summarize(result), result, "BRL", 1200)
	out := buf.String()

	// Section headers go through the same printer as the rows.
	assert.Contains(t, out, "--- Portfolio (first and last 1,200 rows) ---")
	assert.Contains(t, out, "--- Cash flows (first and last 1,200 rows) ---")
	assert.Contains(t, out, "Product     | Contracts | Defaults")
	assert.Contains(t, out, "|   4\n", "defaulted contract shows its default month")
	assert.Contains(t, out, "|   -\n", "performing contract shows a dash")
	assert.Contains(t, out, "18,000.00")
}
