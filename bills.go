package famfin

import (
	"cmp"
	"math"
	"slices"

	"github.com/etnz/famfin/date"
)

// MaxUpcomingBills is the number of bills shown on the dashboard.
const MaxUpcomingBills = 3

// Bill is an expense with a reminder.
type Bill struct {
	TransactionID string    `json:"transactionId"`
	Description   string    `json:"description"`
	Category      string    `json:"category,omitempty"`
	Amount        float64   `json:"amount"`
	DueDate       date.Date `json:"dueDate"`
	Overdue       bool      `json:"overdue,omitempty"`
}

// dueDate is the notification date of t, or its date when unset.
func dueDate(t Transaction) (date.Date, bool) {
	if t.NotificationDate != "" {
		if d, err := date.Parse(t.NotificationDate); err == nil {
			return d, true
		}
	}
	return t.Day()
}

// UpcomingBills returns the next bills: visible expenses (not refunds) with a
// reminder enabled, due today or later, or earlier in the current month.
// They are sorted by due date, soonest first.
func UpcomingBills(accounts []Account, transactions []Transaction, today date.Date) []Bill {
	idx := indexAccounts(accounts)
	bills := []Bill{}
	for _, t := range transactions {
		if t.Type != Expense || t.IsRefund || !t.EnableNotification || !ShouldShowTransaction(t) {
			continue
		}
		due, ok := dueDate(t)
		if !ok || (due.Before(today) && !due.SameMonth(today)) {
			continue
		}
		bills = append(bills, Bill{
			TransactionID: t.ID,
			Description:   t.Description,
			Category:      t.Category,
			Amount:        Round(idx.toBRL(t, math.Abs(t.SafeAmount())), Precision),
			DueDate:       due,
			Overdue:       due.Before(today),
		})
	}
	slices.SortStableFunc(bills, func(a, b Bill) int {
		if c := compareDates(a.DueDate, b.DueDate); c != 0 {
			return c
		}
		return cmp.Compare(a.TransactionID, b.TransactionID)
	})
	if len(bills) > MaxUpcomingBills {
		bills = bills[:MaxUpcomingBills]
	}
	return bills
}

// compareDates orders dates chronologically.
func compareDates(a, b date.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
