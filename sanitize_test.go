package famfin

import (
	"math"
	"testing"
)

func TestSanitizeAccounts(t *testing.T) {
	in := []Account{
		{ID: "a1", Balance: math.NaN(), InitialBalance: math.Inf(1), Currency: "USD"},
		{ID: "a2", Balance: 10},
	}
	got := SanitizeAccounts(in)
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("SanitizeAccounts() = %+v, want same length and order", got)
	}
	if got[0].Balance != 0 || got[0].InitialBalance != 0 || got[0].Currency != "USD" {
		t.Errorf("SanitizeAccounts()[0] = %+v", got[0])
	}
	if got[1].Balance != 10 {
		t.Errorf("SanitizeAccounts()[1].Balance = %v, want 10", got[1].Balance)
	}
	if !math.IsNaN(in[0].Balance) {
		t.Error("input was modified")
	}
	if got := SanitizeAccounts(nil); got == nil || len(got) != 0 {
		t.Errorf("SanitizeAccounts(nil) = %#v, want empty", got)
	}
}

func TestSanitizeTransactions(t *testing.T) {
	in := []Transaction{{
		ID:                "t1",
		Amount:            math.Inf(-1),
		DestinationAmount: math.NaN(),
		ExchangeRate:      math.NaN(),
		Description:       "kept",
		SharedWith:        []Split{{MemberID: "m1", AssignedAmount: math.NaN(), Percentage: math.Inf(1)}},
	}}
	got := SanitizeTransactions(in)
	tx := got[0]
	if tx.Amount != 0 || tx.DestinationAmount != 0 || tx.ExchangeRate != 0 || tx.Description != "kept" {
		t.Errorf("SanitizeTransactions()[0] = %+v", tx)
	}
	if s := tx.SharedWith[0]; s.AssignedAmount != 0 || s.Percentage != 0 || s.MemberID != "m1" {
		t.Errorf("split = %+v", s)
	}
	if !math.IsNaN(in[0].SharedWith[0].AssignedAmount) {
		t.Error("input splits were modified")
	}
}
