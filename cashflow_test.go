package famfin

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/etnz/famfin/date"
)

func TestCashFlow(t *testing.T) {
	today := date.New(2025, time.March, 15)
	accounts := []Account{account("a1", Checking, 1700)}
	txs := []Transaction{
		income("salary", 1000, "2025-02-10", "a1"),
		expense("rent", 300, "2025-03-05", "a1"),
	}

	points := CashFlow(accounts, txs, 2025, today)
	if len(points) != 12 {
		t.Fatalf("len(CashFlow()) = %d, want 12", len(points))
	}

	testCases := []struct {
		month     time.Month
		name      string
		receitas  float64
		despesas  float64
		acumulado float64
		masked    bool
	}{
		{month: time.January, name: "Jan", masked: true},
		{month: time.February, name: "Fev", receitas: 1000, acumulado: 2000},
		{month: time.March, name: "Mar", despesas: 300, acumulado: 1700},
		{month: time.December, name: "Dez", acumulado: 1700},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := points[tc.month-1]
			if p.Name != tc.name || p.Month != tc.month {
				t.Errorf("point = %s/%v, want %s/%v", p.Name, p.Month, tc.name, tc.month)
			}
			if p.Receitas != tc.receitas || p.Despesas != tc.despesas {
				t.Errorf("Receitas, Despesas = %v, %v, want %v, %v", p.Receitas, p.Despesas, tc.receitas, tc.despesas)
			}
			switch {
			case tc.masked && p.Acumulado != nil:
				t.Errorf("Acumulado = %v, want nil", *p.Acumulado)
			case !tc.masked && p.Acumulado == nil:
				t.Errorf("Acumulado = nil, want %v", tc.acumulado)
			case !tc.masked && *p.Acumulado != tc.acumulado:
				t.Errorf("Acumulado = %v, want %v", *p.Acumulado, tc.acumulado)
			}
		})
	}
	if !HasCashFlowData(points) {
		t.Error("HasCashFlowData() = false, want true")
	}
}

func TestCashFlow_RefundsAndSharedExpenses(t *testing.T) {
	today := date.New(2025, time.December, 31)
	accounts := []Account{account("a1", Checking, 0), account("cc", CreditCard, 0)}
	refund := expense("refund", 20, "2025-04-02", "a1")
	refund.IsRefund = true
	shared := expense("shared", 100, "2025-04-03", "cc")
	shared.SharedWith = []Split{{MemberID: "m1", AssignedAmount: 40}}
	debt := Transaction{ID: "debt", Type: Expense, Amount: 95, Date: "2025-04-04", PayerID: "friend", IsShared: true}

	points := CashFlow(accounts, []Transaction{refund, shared, debt}, 2025, today)
	april := points[time.April-1]
	if april.Despesas != 40 { // 60 effective minus the 20 refund, the unpaid debt is left out
		t.Errorf("April Despesas = %v, want 40", april.Despesas)
	}
	if april.Receitas != 0 {
		t.Errorf("April Receitas = %v, want 0", april.Receitas)
	}
}

func TestCashFlow_FutureYear(t *testing.T) {
	today := date.New(2025, time.March, 15)
	accounts := []Account{account("a1", Checking, 1700)}
	txs := []Transaction{
		income("salary", 1000, "2025-02-10", "a1"),
		expense("planned", 200, "2025-06-01", "a1"),
	}
	points := CashFlow(accounts, txs, 2026, today)
	for _, p := range points {
		if p.Acumulado == nil || *p.Acumulado != 1500 {
			t.Fatalf("%s Acumulado = %v, want 1500", p.Name, p.Acumulado)
		}
	}
	if HasCashFlowData(points) {
		t.Error("HasCashFlowData() = true, want false")
	}
}

func TestCashFlow_Empty(t *testing.T) {
	points := CashFlow(nil, nil, 2025, jan15)
	if len(points) != 12 {
		t.Fatalf("len(CashFlow()) = %d, want 12", len(points))
	}
	for _, p := range points {
		if p.Acumulado != nil || p.Receitas != 0 || p.Despesas != 0 {
			t.Errorf("%s = %+v, want a masked point", p.Name, p)
		}
	}
}

func TestCashFlowPoint_MarshalJSON(t *testing.T) {
	acc := 12.5
	testCases := []struct {
		p    CashFlowPoint
		want string
	}{
		{p: CashFlowPoint{Name: "Jan"}, want: `{"name":"Jan","Receitas":0,"Despesas":0,"Acumulado":null}`},
		{p: CashFlowPoint{Name: "Fev", Receitas: 10, Despesas: 2, Acumulado: &acc}, want: `{"name":"Fev","Receitas":10,"Despesas":2,"Acumulado":12.5}`},
	}
	for _, tc := range testCases {
		got, err := json.Marshal(tc.p)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(got) != tc.want {
			t.Errorf("Marshal() = %s, want %s", got, tc.want)
		}
	}
}
