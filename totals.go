package famfin

import (
	"math"

	"github.com/etnz/famfin/date"
)

// Totals are the income and expenses of a month.
type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	NetFlow  float64 `json:"netFlow"`
}

// MonthlyTotals sums the income and expenses dated in ref's month, in BRL.
//
// Refunds reduce their own side. Unpaid debts are left out entirely. Shared
// expenses paid by the user count their amount minus the shares others
// still owe; those paid by someone else count the user's share.
func MonthlyTotals(accounts []Account, transactions []Transaction, ref date.Date) Totals {
	idx := indexAccounts(accounts)
	income, expenses := BRL(0), BRL(0)
	for _, t := range transactions {
		if !ShouldShowTransaction(t) {
			continue
		}
		day, ok := t.Day()
		if !ok || !day.SameMonth(ref) {
			continue
		}
		switch t.Type {
		case Income:
			v := BRL(idx.toBRL(t, math.Abs(t.SafeAmount())))
			if t.IsRefund {
				v = v.Neg()
			}
			income = income.Add(v)
		case Expense:
			v := BRL(idx.toBRL(t, monthlyExpenseValue(t)))
			if t.IsRefund {
				v = v.Neg()
			}
			expenses = expenses.Add(v)
		}
	}
	return Totals{
		Income:   income.Float(),
		Expenses: expenses.Float(),
		NetFlow:  income.Sub(expenses).Float(),
	}
}
