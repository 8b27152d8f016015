package metrics

import (
	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/domain/ledger"
)

// BalanceReport sums ledger entries by kind. Accumulation is exact decimal
// arithmetic; amounts never pass through floats.
type BalanceReport struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func Balance(entries []ledger.Entry) BalanceReport {
	income := decimal.Zero
	expense := decimal.Zero
	for i := range entries {
		switch entries[i].Kind {
		case ledger.KindIncome:
			income = income.Add(entries[i].Amount)
		case ledger.KindExpense:
			expense = expense.Add(entries[i].Amount)
		}
	}
	return BalanceReport{Income: income, Expense: expense, Balance: income.Sub(expense)}
}
