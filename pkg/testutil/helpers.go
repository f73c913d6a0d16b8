// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/credit-portfolio-sim/internal/simulator"
)

// FindContract finds a contract by id in the portfolio.
// Returns a pointer to the contract if found, nil otherwise.
func FindContract(portfolio []simulator.Contract, id int) *simulator.Contract {
	for i := range portfolio {
		if portfolio[i].ContractID == id {
			return &portfolio[i]
		}
	}
	return nil
}

// ContractRows returns the cash-flow rows of one contract in month order.
func ContractRows(rows []simulator.CashflowRow, id int) []simulator.CashflowRow {
	var out []simulator.CashflowRow
	for _, r := range rows {
		if r.ContractID == id {
			out = append(out, r)
		}
	}
	return out
}
