package famfin

import (
	"math"
	"time"

	"github.com/etnz/famfin/date"
)

// monthLabels are the short month names shown on the cash-flow chart.
var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// CashFlowPoint is one month of the cash-flow chart. Acumulado is nil for
// months before the first recorded transaction, to tell "no data" from
// "no activity".
type CashFlowPoint struct {
	Name      string
	Month     time.Month
	Receitas  float64 // income
	Despesas  float64 // expenses, net of refunds
	Acumulado *float64
}

// MarshalJSON writes the point with the chart's field names.
func (p CashFlowPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Number("Receitas", p.Receitas)
	w.Number("Despesas", p.Despesas)
	w.Nullable("Acumulado", p.Acumulado)
	return w.MarshalJSON()
}

// isTracked reports whether an account is part of the cash-flow balance:
// liquidity accounts and credit cards.
func (idx accountIndex) isTracked(id string) bool {
	a, ok := idx[id]
	return ok && (a.Type.IsLiquidity() || a.Type == CreditCard)
}

// cashBalance is the cash-flow anchor: liquidity balances minus credit card balances, in BRL.
func cashBalance(accounts []Account) Money {
	total := BRL(0)
	for _, a := range accounts {
		switch {
		case a.Type.IsLiquidity():
			total = total.Add(BRL(a.BalanceInBRL()))
		case a.Type == CreditCard:
			total = total.Sub(BRL(a.BalanceInBRL()).Abs())
		}
	}
	return total
}

// flow splits the effect of a transaction on the cash balance into income,
// expenses and transfers, in BRL.
func (idx accountIndex) flow(t Transaction) (income, expenses, transfers Money) {
	income, expenses, transfers = BRL(0), BRL(0), BRL(0)
	switch t.Type {
	case Income:
		income = BRL(idx.toBRL(t, math.Abs(t.SafeAmount())))
		if t.IsRefund {
			income = income.Neg()
		}
	case Expense:
		expenses = BRL(idx.toBRL(t, EffectiveValue(t)))
		if t.IsRefund {
			expenses = expenses.Neg()
		}
	case Transfer:
		if idx.isTracked(t.AccountID) {
			transfers = transfers.Sub(BRL(idx.toBRL(t, math.Abs(t.SafeAmount()))))
		}
		if idx.isTracked(t.DestinationAccountID) {
			transfers = transfers.Add(BRL(idx.destinationInBRL(t)))
		}
	}
	return income, expenses, transfers
}

// delta is the net effect of a transaction on the cash balance.
func (idx accountIndex) delta(t Transaction) Money {
	in, out, tr := idx.flow(t)
	return in.Sub(out).Add(tr)
}

type datedTransaction struct {
	Transaction
	day date.Date
}

// CashFlow returns the 12 monthly points of 'year'.
//
// The running balance is anchored on the current account balances and moved
// back (or forward, for a future year) to January 1st of 'year' by replaying
// the transactions between today and that day. Each month then adds its own
// income, expenses and transfers. Months before the first transaction are
// masked.
func CashFlow(accounts []Account, transactions []Transaction, year int, today date.Date) []CashFlowPoint {
	idx := indexAccounts(accounts)

	var txs []datedTransaction
	var first date.Date
	for _, t := range transactions {
		if !ShouldShowTransaction(t) {
			continue
		}
		day, ok := t.Day()
		if !ok {
			continue
		}
		if first.IsZero() || day.Before(first) {
			first = day
		}
		txs = append(txs, datedTransaction{t, day})
	}

	yearStart := date.New(year, time.January, 1)
	balance := cashBalance(accounts)
	if yearStart.After(today) {
		for _, t := range txs {
			if t.day.After(today) && t.day.Before(yearStart) {
				balance = balance.Add(idx.delta(t.Transaction))
			}
		}
	} else {
		for _, t := range txs {
			if !t.day.Before(yearStart) && !t.day.After(today) {
				balance = balance.Sub(idx.delta(t.Transaction))
			}
		}
	}

	points := make([]CashFlowPoint, 0, 12)
	for month := range date.NewRange(yearStart, date.Yearly).Months() {
		income, expenses, transfers := BRL(0), BRL(0), BRL(0)
		for _, t := range txs {
			if !t.day.SameMonth(month) {
				continue
			}
			in, out, tr := idx.flow(t.Transaction)
			income, expenses, transfers = income.Add(in), expenses.Add(out), transfers.Add(tr)
		}
		balance = balance.Add(income).Sub(expenses).Add(transfers)

		p := CashFlowPoint{Name: monthLabels[month.Month()-1], Month: month.Month()}
		if !first.IsZero() && !month.Before(first.StartOf(date.Monthly)) {
			acc := balance.Float()
			p.Receitas, p.Despesas, p.Acumulado = income.Float(), expenses.Float(), &acc
		}
		points = append(points, p)
	}
	return points
}

// HasCashFlowData reports whether any month of the series shows activity.
func HasCashFlowData(points []CashFlowPoint) bool {
	for _, p := range points {
		if p.Receitas != 0 || p.Despesas != 0 {
			return true
		}
	}
	return false
}
