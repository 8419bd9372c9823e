package renderer

import (
	"github.com/etnz/famfin"
	"github.com/etnz/famfin/date"
)

// Dashboard is the dashboard read-model with its amounts as Money, so that
// templates print them with the reporting currency conventions.
type Dashboard struct {
	Date             date.Date
	CurrentBalance   famfin.Money
	ProjectedBalance famfin.Money
	PendingIncome    famfin.Money
	PendingExpenses  famfin.Money
	MonthlyIncome    famfin.Money
	MonthlyExpense   famfin.Money
	NetFlow          famfin.Money
	NetWorth         famfin.Money
	HealthStatus     famfin.HealthStatus

	IncomeSparkline  string
	ExpenseSparkline string

	HasCashFlowData bool
	CashFlow        []CashFlowMonth
	Bills           []Bill
	SpendingView    famfin.SpendingView
	Spending        []SpendingGroup
}

// CashFlowMonth is a row of the cash-flow table.
type CashFlowMonth struct {
	Name     string
	Income   famfin.Money
	Expenses famfin.Money
	Balance  *famfin.Money // nil before the first recorded month
}

// Bill is a row of the upcoming bills table.
type Bill struct {
	DueDate     date.Date
	Description string
	Category    string
	Amount      famfin.Money
	Overdue     bool
}

// SpendingGroup is a row of the spending table.
type SpendingGroup struct {
	Name       string
	Value      famfin.Money
	Percentage float64
}

// NewDashboard converts a dashboard read-model for rendering.
func NewDashboard(d famfin.Dashboard) *Dashboard {
	r := &Dashboard{
		Date:             d.Date,
		CurrentBalance:   famfin.BRL(d.CurrentBalance),
		ProjectedBalance: famfin.BRL(d.ProjectedBalance),
		PendingIncome:    famfin.BRL(d.PendingIncome),
		PendingExpenses:  famfin.BRL(d.PendingExpenses),
		MonthlyIncome:    famfin.BRL(d.MonthlyIncome),
		MonthlyExpense:   famfin.BRL(d.MonthlyExpense),
		NetFlow:          famfin.BRL(d.MonthlyIncome).Sub(famfin.BRL(d.MonthlyExpense)),
		NetWorth:         famfin.BRL(d.NetWorth),
		HealthStatus:     d.HealthStatus,
		IncomeSparkline:  Sparkline(d.IncomeSparkline),
		ExpenseSparkline: Sparkline(d.ExpenseSparkline),
		HasCashFlowData:  d.HasCashFlowData,
		CashFlow:         make([]CashFlowMonth, 0, len(d.CashFlowData)),
		Bills:            make([]Bill, 0, len(d.UpcomingBills)),
		SpendingView:     d.SpendingView,
		Spending:         make([]SpendingGroup, 0, len(d.SpendingChartData)),
	}
	for _, p := range d.CashFlowData {
		m := CashFlowMonth{Name: p.Name, Income: famfin.BRL(p.Receitas), Expenses: famfin.BRL(p.Despesas)}
		if p.Acumulado != nil {
			balance := famfin.BRL(*p.Acumulado)
			m.Balance = &balance
		}
		r.CashFlow = append(r.CashFlow, m)
	}
	for _, b := range d.UpcomingBills {
		r.Bills = append(r.Bills, Bill{
			DueDate:     b.DueDate,
			Description: b.Description,
			Category:    b.Category,
			Amount:      famfin.BRL(b.Amount),
			Overdue:     b.Overdue,
		})
	}
	for _, s := range d.SpendingChartData {
		r.Spending = append(r.Spending, SpendingGroup{Name: s.Name, Value: famfin.BRL(s.Value), Percentage: s.Percentage})
	}
	return r
}

// RecordProblems lists the validation errors of a single record.
type RecordProblems struct {
	Kind   string // "account" or "transaction"
	ID     string
	Errors []string
}

// Validation is the validation report of a snapshot.
type Validation struct {
	Summary famfin.ValidationSummary
	Records []RecordProblems
}

// NewValidation validates every record and collects the invalid ones.
func NewValidation(summary famfin.ValidationSummary, accounts []famfin.Account, transactions []famfin.Transaction) *Validation {
	v := &Validation{Summary: summary, Records: make([]RecordProblems, 0)}
	for _, a := range accounts {
		if res := famfin.ValidateAccount(a); !res.IsValid {
			v.Records = append(v.Records, RecordProblems{Kind: "account", ID: a.ID, Errors: res.Errors})
		}
	}
	for _, t := range transactions {
		if res := famfin.ValidateTransaction(t); !res.IsValid {
			v.Records = append(v.Records, RecordProblems{Kind: "transaction", ID: t.ID, Errors: res.Errors})
		}
	}
	return v
}
