package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
	"go.uber.org/zap"
)

// PortfolioHeader is the header row of the portfolio table.
var PortfolioHeader = []string{
	"contract_id", "product_type", "principal", "interest_rate", "term_months",
	"default_prob", "default_prob_m", "recovery_rate", "default_month",
}

// CashflowHeader is the header row of the cash-flow table.
var CashflowHeader = []string{
	"contract_id", "month", "product_type", "scheduled_payment", "interest_component",
	"principal_component", "remaining_principal_before", "remaining_principal_after",
	"defaulted_this_month", "recovery_cashflow",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// WritePortfolioCSV writes the portfolio table with its header row.
func WritePortfolioCSV(w io.Writer, portfolio []simulator.Contract) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PortfolioHeader); err != nil {
		return err
	}
	record := make([]string, len(PortfolioHeader))
	for _, c := range portfolio {
		record[0] = strconv.Itoa(c.ContractID)
		record[1] = string(c.ProductType)
		record[2] = formatFloat(c.Principal)
		record[3] = formatFloat(c.InterestRate)
		record[4] = strconv.Itoa(c.TermMonths)
		record[5] = formatFloat(c.DefaultProb)
		record[6] = formatFloat(c.DefaultProbM)
		record[7] = formatFloat(c.RecoveryRate)
		record[8] = ""
		if c.HasDefault() {
			record[8] = strconv.Itoa(c.DefaultMonth)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCashflowsCSV writes the cash-flow table with its header row.
func WriteCashflowsCSV(w io.Writer, rows []simulator.CashflowRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CashflowHeader); err != nil {
		return err
	}
	record := make([]string, len(CashflowHeader))
	for _, r := range rows {
		record[0] = strconv.Itoa(r.ContractID)
		record[1] = strconv.Itoa(r.Month)
		record[2] = string(r.ProductType)
		record[3] = formatFloat(r.ScheduledPayment)
		record[4] = formatFloat(r.InterestComponent)
		record[5] = formatFloat(r.PrincipalComponent)
		record[6] = formatFloat(r.RemainingPrincipalBefore)
		record[7] = formatFloat(r.RemainingPrincipalAfter)
		record[8] = formatBool(r.DefaultedThisMonth)
		record[9] = formatFloat(r.RecoveryCashflow)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates the parent directory of path if needed and writes the
// file through write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	buffered := bufio.NewWriter(file)
	if err := write(buffered); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return buffered.Flush()
}

// ExportTables writes the portfolio and cash-flow tables to their paths.
func ExportTables(logger *zap.Logger, result *simulator.Result, portfolioPath, cashflowsPath string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	err := WriteFile(portfolioPath, func(w io.Writer) error {
		return WritePortfolioCSV(w, result.Portfolio)
	})
	if err != nil {
		return err
	}
	logger.Info("wrote portfolio table",
		zap.String("op", "output.ExportTables"),
		zap.String("path", portfolioPath),
		zap.Int("rows", len(result.Portfolio)),
	)

	err = WriteFile(cashflowsPath, func(w io.Writer) error {
		return WriteCashflowsCSV(w, result.Cashflows)
	})
	if err != nil {
		return err
	}
	logger.Info("wrote cash-flow table",
		zap.String("op", "output.ExportTables"),
		zap.String("path", cashflowsPath),
		zap.Int("rows", len(result.Cashflows)),
	)

	return nil
}
