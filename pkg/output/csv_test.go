package output

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"github.com/iwvelando/credit-portfolio-sim/pkg/products"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWritePortfolioCSV(t *testing.T) {
	portfolio := []simulator.Contract{
		{ContractID: 1, ProductType: products.Card, Principal: 2500.5, InterestRate: 0.075, TermMonths: 12,
			DefaultProb: 0.14, DefaultProbM: 0.0125, RecoveryRate: 0.25, DefaultMonth: 4},
		{ContractID: 2, ProductType: products.Payroll, Principal: 18000, InterestRate: 0.013, TermMonths: 36,
			DefaultProb: 0.025, DefaultProbM: 0.0021, RecoveryRate: 0.65},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePortfolioCSV(&buf, portfolio))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, PortfolioHeader, records[0])
	assert.Equal(t, []string{"1", "card", "2500.5", "0.075", "12", "0.14", "0.0125", "0.25", "4"}, records[1])
	assert.Equal(t, "", records[2][8], "missing default month must be an empty field")
}

func TestWriteCashflowsCSV(t *testing.T) {
	rows := []simulator.CashflowRow{
		{ContractID: 1, Month: 1, ProductType: products.Card, ScheduledPayment: 10, InterestComponent: 2,
			PrincipalComponent: 8, RemainingPrincipalBefore: 100, RemainingPrincipalAfter: 92},
		{ContractID: 1, Month: 2, ProductType: products.Card, RemainingPrincipalBefore: 92,
			RemainingPrincipalAfter: 92, DefaultedThisMonth: true, RecoveryCashflow: 23},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCashflowsCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, CashflowHeader, records[0])
	assert.Equal(t, []string{"1", "1", "card", "10", "2", "8", "100", "92", "False", "0"}, records[1])
	assert.Equal(t, []string{"1", "2", "card", "0", "0", "0", "92", "92", "True", "23"}, records[2])
}

func TestFormatFloatAvoidsExponent(t *testing.T) {
	assert.Equal(t, "0.0000000001", formatFloat(1e-10))
	assert.Equal(t, "150000", formatFloat(150000))
}

func TestExportTablesCreatesDirectories(t *testing.T) {
	result, err := simulator.Simulate(zap.NewNop(), 5, 1)
	require.NoError(t, err)

	dir := t.TempDir()
	portfolioPath := filepath.Join(dir, "data", "portifolio.csv")
	cashflowsPath := filepath.Join(dir, "nested", "data", "cashflows.csv")

	require.NoError(t, ExportTables(zap.NewNop(), result, portfolioPath, cashflowsPath))

	portfolioFile, err := os.Open(portfolioPath)
	require.NoError(t, err)
	defer portfolioFile.Close()
	portfolioRecords, err := csv.NewReader(portfolioFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, portfolioRecords, 6)
	for i, record := range portfolioRecords[1:] {
		assert.Equal(t, strconv.Itoa(i+1), record[0])
	}

	cashflowsFile, err := os.Open(cashflowsPath)
	require.NoError(t, err)
	defer cashflowsFile.Close()
	cashflowRecords, err := csv.NewReader(cashflowsFile).ReadAll()
	require.NoError(t, err)
	assert.Len(t, cashflowRecords, len(result.Cashflows)+1)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer"), 0644))

	err := WriteFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("fresh"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}
