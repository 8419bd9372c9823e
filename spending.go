package famfin

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// SpendingView selects how expenses are grouped.
type SpendingView string

const (
	ByCategory SpendingView = "CATEGORY"
	BySource   SpendingView = "SOURCE"
)

// ParseSpendingView parses a view name (case insensitive).
func ParseSpendingView(s string) (SpendingView, error) {
	switch v := SpendingView(strings.ToUpper(strings.TrimSpace(s))); v {
	case ByCategory, BySource:
		return v, nil
	case "":
		return ByCategory, nil
	default:
		return ByCategory, fmt.Errorf("unknown spending view %q want %s or %s", s, ByCategory, BySource)
	}
}

// Source labels used by the BySource view.
const (
	SourceCreditCard  = "Credit Card"
	SourceBankAccount = "Bank Account"
	SourceCash        = "Cash"
	SourceOther       = "Other"
)

// Uncategorized labels expenses without a category.
const Uncategorized = "Outros"

// sourceLabel derives the spending source from the account type.
func (idx accountIndex) sourceLabel(t Transaction) string {
	a, ok := idx[t.AccountID]
	if !ok {
		return SourceOther
	}
	switch a.Type {
	case CreditCard:
		return SourceCreditCard
	case Checking, Savings:
		return SourceBankAccount
	case Cash:
		return SourceCash
	default:
		return SourceOther
	}
}

// SpendingSlice is one group of the spending chart.
type SpendingSlice struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"` // share of the chart total
}

// Spending groups the visible expenses by category or by source.
//
// Expenses paid by someone else count the user's share, refunds count
// negatively. Only groups with a positive total are kept, largest first.
func Spending(accounts []Account, transactions []Transaction, view SpendingView) []SpendingSlice {
	idx := indexAccounts(accounts)
	totals := map[string]Money{}
	for _, t := range transactions {
		if t.Type != Expense || !ShouldShowTransaction(t) {
			continue
		}
		value := math.Abs(t.SafeAmount())
		if t.IsSharedExpense() && !t.IAmPayer() {
			value = EffectiveValue(t)
		}
		v := BRL(idx.toBRL(t, value))
		if t.IsRefund {
			v = v.Neg()
		}

		key := t.Category
		if view == BySource {
			key = idx.sourceLabel(t)
		} else if key == "" {
			key = Uncategorized
		}
		totals[key] = totals[key].Add(v)
	}

	var res []SpendingSlice
	var sum []float64
	for name, total := range totals {
		if !total.IsPositive() {
			continue
		}
		res = append(res, SpendingSlice{Name: name, Value: total.Float()})
		sum = append(sum, total.Float())
	}
	grand := SafeSum(sum)
	for i := range res {
		res[i].Percentage = Round(SafePercentage(res[i].Value, grand), Precision)
	}
	slices.SortFunc(res, func(a, b SpendingSlice) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if res == nil {
		res = []SpendingSlice{}
	}
	return res
}
