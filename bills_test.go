package famfin

import (
	"slices"
	"testing"
	"time"

	"github.com/etnz/famfin/date"
)

func TestUpcomingBills(t *testing.T) {
	accounts := []Account{account("a1", Checking, 0), {ID: "usd", Type: CreditCard, Currency: "USD"}}
	bill := func(id string, amount float64, day, accountID string) Transaction {
		tx := expense(id, amount, day, accountID)
		tx.EnableNotification = true
		return tx
	}
	notified := bill("notified", 40, "2025-01-01", "a1")
	notified.NotificationDate = "2025-01-16"
	refund := bill("refund", 10, "2025-01-17", "a1")
	refund.IsRefund = true
	silent := expense("silent", 10, "2025-01-17", "a1")
	salary := income("salary", 1000, "2025-01-17", "a1")
	salary.EnableNotification = true
	deleted := bill("deleted", 10, "2025-01-17", "a1")
	deleted.Deleted = true

	txs := []Transaction{
		bill("later", 100, "2025-01-20", "a1"),
		notified,
		bill("overdue", 30, "2025-01-05", "a1"),
		bill("last-month", 20, "2024-12-31", "a1"),
		bill("february", 50, "2025-02-01", "a1"),
		refund,
		silent,
		salary,
		deleted,
	}

	got := UpcomingBills(accounts, txs, jan15)
	var ids []string
	for _, b := range got {
		ids = append(ids, b.TransactionID)
	}
	if want := []string{"overdue", "notified", "later"}; !slices.Equal(ids, want) {
		t.Fatalf("UpcomingBills() = %v, want %v", ids, want)
	}
	if !got[0].Overdue || got[1].Overdue {
		t.Errorf("Overdue = %v, %v, want true, false", got[0].Overdue, got[1].Overdue)
	}
	if want := date.New(2025, time.January, 16); got[1].DueDate != want {
		t.Errorf("DueDate = %v, want %v", got[1].DueDate, want)
	}
}

func TestUpcomingBills_Converted(t *testing.T) {
	accounts := []Account{{ID: "usd", Type: CreditCard, Currency: "USD"}}
	tx := expense("netflix", 10, "2025-01-20", "usd")
	tx.EnableNotification = true
	got := UpcomingBills(accounts, []Transaction{tx}, jan15)
	if len(got) != 1 || got[0].Amount != 50 {
		t.Errorf("UpcomingBills() = %+v, want one bill of 50", got)
	}
	if got := UpcomingBills(nil, nil, jan15); got == nil || len(got) != 0 {
		t.Errorf("UpcomingBills(nil) = %#v, want empty", got)
	}
}
