package famfin

import (
	"math"

	"github.com/etnz/famfin/date"
)

// Projection is the expected liquidity at the end of a month.
type Projection struct {
	CurrentBalance   float64 `json:"currentBalance"`
	ProjectedBalance float64 `json:"projectedBalance"`
	PendingIncome    float64 `json:"pendingIncome"`
	PendingExpenses  float64 `json:"pendingExpenses"`
}

// LiquidityBalance returns the sum of liquidity account balances in BRL.
// Credit cards and investments are excluded.
func LiquidityBalance(accounts []Account) float64 {
	total := BRL(0)
	for _, a := range accounts {
		if a.Type.IsLiquidity() {
			total = total.Add(BRL(a.BalanceInBRL()))
		}
	}
	return total.Float()
}

// ProjectBalance projects the liquidity balance to the end of ref's month.
//
// Only transactions dated in ref's month are considered. Income, expenses and
// transfers count as pending when dated after today. Shared debts count
// whatever their date: money others still owe the user is pending income,
// money the user still owes is a pending expense.
func ProjectBalance(accounts []Account, transactions []Transaction, ref, today date.Date) Projection {
	idx := indexAccounts(accounts)
	income, expenses := BRL(0), BRL(0)

	for _, t := range transactions {
		if t.Deleted {
			continue
		}
		day, ok := t.Day()
		if !ok || !day.SameMonth(ref) {
			continue
		}
		amount := math.Abs(t.SafeAmount())

		if t.Type == Expense && t.IsSharedExpense() {
			if !t.IAmPayer() {
				if !t.IsSettled {
					expenses = expenses.Add(BRL(idx.toBRL(t, amount)))
				}
				continue
			}
			if owed := math.Min(UnsettledSplitsTotal(t), amount); owed > 0 {
				income = income.Add(BRL(idx.toBRL(t, owed)))
			}
		}

		if !day.After(today) || (t.IsPendingInvoice && !t.IsSettled) {
			continue
		}

		switch t.Type {
		case Transfer:
			from, to := idx.isLiquidity(t.AccountID), idx.isLiquidity(t.DestinationAccountID)
			switch {
			case from && !to:
				expenses = expenses.Add(BRL(idx.toBRL(t, amount)))
			case !from && to:
				income = income.Add(BRL(idx.destinationInBRL(t)))
			}
		case Income, Expense:
			if !idx.isLiquidity(t.AccountID) {
				continue
			}
			v := BRL(idx.toBRL(t, amount))
			if inflow(t) {
				income = income.Add(v)
			} else {
				expenses = expenses.Add(v)
			}
		}
	}

	current := LiquidityBalance(accounts)
	p := Projection{
		CurrentBalance:  current,
		PendingIncome:   income.Float(),
		PendingExpenses: expenses.Float(),
	}
	p.ProjectedBalance = BRL(current).Add(income).Sub(expenses).Float()
	return p
}

// inflow reports whether an income or expense brings money in: an income, or a refunded expense.
func inflow(t Transaction) bool { return (t.Type == Income) != t.IsRefund }

// destinationInBRL returns the amount credited to a transfer's destination in
// BRL: the explicit destination amount in the destination account currency
// when present, the source amount otherwise.
func (idx accountIndex) destinationInBRL(t Transaction) float64 {
	if dest := ToSafeNumber(t.DestinationAmount); dest > 0 {
		cur := ReportingCurrency
		if a, ok := idx[t.DestinationAccountID]; ok {
			cur = a.CurrencyCode()
		}
		return SafeCurrencyConversion(dest, cur)
	}
	return idx.toBRL(t, math.Abs(t.SafeAmount()))
}
