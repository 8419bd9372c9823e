package famfin

import (
	"maps"
	"slices"
	"time"

	"github.com/etnz/famfin/date"
	"github.com/etnz/famfin/telemetry"
)

// HealthStatus is the overall verdict shown on the dashboard.
type HealthStatus string

const (
	Positive HealthStatus = "POSITIVE"
	Warning  HealthStatus = "WARNING"
	Critical HealthStatus = "CRITICAL"
)

// Input is a point-in-time snapshot of the user's data.
type Input struct {
	Accounts          []Account
	Transactions      []Transaction
	Trips             []Trip
	ProjectedAccounts []Account // when not empty, replaces Accounts for balances and projections
	Date              date.Date // reference date, today when zero
	SpendingView      SpendingView
}

// Dashboard is the read-model consumed by the presentation layer. Every
// number is finite and every slice is non nil.
type Dashboard struct {
	Date              date.Date
	CurrentBalance    float64
	ProjectedBalance  float64
	PendingIncome     float64
	PendingExpenses   float64
	MonthlyIncome     float64
	MonthlyExpense    float64
	NetWorth          float64
	HealthStatus      HealthStatus
	CashFlowData      []CashFlowPoint
	HasCashFlowData   bool
	IncomeSparkline   []float64
	ExpenseSparkline  []float64
	UpcomingBills     []Bill
	SpendingChartData []SpendingSlice
	SpendingView      SpendingView
}

// MarshalJSON writes the dashboard fields in a stable order.
func (d Dashboard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", d.Date)
	w.Number("currentBalance", d.CurrentBalance)
	w.Number("projectedBalance", d.ProjectedBalance)
	w.Number("pendingIncome", d.PendingIncome)
	w.Number("pendingExpenses", d.PendingExpenses)
	w.Number("monthlyIncome", d.MonthlyIncome)
	w.Number("monthlyExpense", d.MonthlyExpense)
	w.Number("netWorth", d.NetWorth)
	w.Append("healthStatus", d.HealthStatus)
	w.Append("cashFlowData", d.CashFlowData)
	w.Append("hasCashFlowData", d.HasCashFlowData)
	w.Append("incomeSparkline", d.IncomeSparkline)
	w.Append("expenseSparkline", d.ExpenseSparkline)
	w.Append("upcomingBills", d.UpcomingBills)
	w.Append("spendingChartData", d.SpendingChartData)
	w.Append("spendingView", d.SpendingView)
	return w.MarshalJSON()
}

// ValidationSummary counts the records that failed validation.
type ValidationSummary struct {
	TotalAccounts     int      `json:"totalAccounts"`
	ValidAccounts     int      `json:"validAccounts"`
	TotalTransactions int      `json:"totalTransactions"`
	ValidTransactions int      `json:"validTransactions"`
	ErrorsDetected    int      `json:"errorsDetected"`
	DataQualityScore  float64  `json:"dataQualityScore"`
	UnknownCurrencies []string `json:"unknownCurrencies,omitempty"` // without a conversion rate
	NonISOCurrencies  []string `json:"nonIsoCurrencies,omitempty"`  // not ISO 4217 codes at all
}

// ExtendedDashboard adds data-quality telemetry to the Dashboard.
type ExtendedDashboard struct {
	Dashboard
	ValidationSummary ValidationSummary
	HealthReport      telemetry.HealthReport
}

// MarshalJSON flattens the dashboard and appends the telemetry sections.
func (d ExtendedDashboard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(d.Dashboard)
	w.Append("validationSummary", d.ValidationSummary)
	w.Append("healthReport", d.HealthReport)
	return w.MarshalJSON()
}

// Calculator computes dashboards, supervising every engine with a Telemetry.
type Calculator struct {
	tel         *telemetry.Telemetry
	today       func() date.Date
	reportHours float64
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithToday replaces the wall clock used to decide what is pending.
func WithToday(today func() date.Date) CalculatorOption {
	return func(c *Calculator) { c.today = today }
}

// WithReportPeriod sets the period, in hours, covered by the health report.
func WithReportPeriod(hours float64) CalculatorOption {
	return func(c *Calculator) { c.reportHours = hours }
}

// NewCalculator returns a Calculator recording into tel (a fresh Telemetry if nil).
func NewCalculator(tel *telemetry.Telemetry, opts ...CalculatorOption) *Calculator {
	if tel == nil {
		tel = telemetry.New()
	}
	c := &Calculator{tel: tel, today: date.Today, reportHours: 24}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Telemetry returns the telemetry the calculator records into.
func (c *Calculator) Telemetry() *telemetry.Telemetry { return c.tel }

// emptyCashFlow is the cash-flow fallback: 12 masked months.
func emptyCashFlow() []CashFlowPoint {
	points := make([]CashFlowPoint, 12)
	for i := range points {
		points[i] = CashFlowPoint{Name: monthLabels[i], Month: time.Month(i + 1)}
	}
	return points
}

// Dashboard computes the read-model of in. It never panics: any engine
// failure is recorded and replaced by a zero value.
func (c *Calculator) Dashboard(in Input) Dashboard { return c.dashboard(in, true) }

// dashboard computes the read-model of in. Unknown currencies are recorded
// only when logCurrencies is set.
func (c *Calculator) dashboard(in Input, logCurrencies bool) Dashboard {
	today := c.today()
	ref := in.Date
	if ref.IsZero() {
		ref = today
	}
	view := in.SpendingView
	if view != BySource {
		view = ByCategory
	}

	accounts := SanitizeAccounts(in.Accounts)
	balances := accounts
	if len(in.ProjectedAccounts) > 0 {
		balances = SanitizeAccounts(in.ProjectedAccounts)
	}
	all := SanitizeTransactions(in.Transactions)
	c.reportDataIssues(accounts, all, logCurrencies)
	txs := FilterDashboardTransactions(all, accounts, in.Trips)

	inputs := map[string]any{
		"accounts":      len(accounts),
		"transactions":  len(txs),
		"referenceDate": ref.String(),
	}

	projection := telemetry.Calculate(c.tel, "projection", "ProjectBalance", inputs, Projection{}, func() Projection {
		return ProjectBalance(balances, txs, ref, today)
	}).Result
	totals := telemetry.Calculate(c.tel, "totals", "MonthlyTotals", inputs, Totals{}, func() Totals {
		return MonthlyTotals(accounts, txs, ref)
	}).Result
	netWorth := telemetry.Calculate(c.tel, "networth", "NetWorth", inputs, 0.0, func() float64 {
		return NetWorth(balances)
	}).Result
	cashFlow := telemetry.Calculate(c.tel, "cashflow", "CashFlow", inputs, emptyCashFlow(), func() []CashFlowPoint {
		return CashFlow(balances, txs, ref.Year(), today)
	}).Result
	zeros := make([]float64, DefaultSparklineDays)
	incomeSpark := telemetry.Calculate(c.tel, "sparkline", "IncomeSparkline", inputs, zeros, func() []float64 {
		return Sparkline(txs, Income, today, DefaultSparklineDays)
	}).Result
	expenseSpark := telemetry.Calculate(c.tel, "sparkline", "ExpenseSparkline", inputs, zeros, func() []float64 {
		return Sparkline(txs, Expense, today, DefaultSparklineDays)
	}).Result
	bills := telemetry.Calculate(c.tel, "bills", "UpcomingBills", inputs, []Bill{}, func() []Bill {
		return UpcomingBills(accounts, txs, today)
	}).Result
	spending := telemetry.Calculate(c.tel, "spending", "Spending", inputs, []SpendingSlice{}, func() []SpendingSlice {
		return Spending(accounts, txs, view)
	}).Result

	d := Dashboard{
		Date:              ref,
		CurrentBalance:    projection.CurrentBalance,
		ProjectedBalance:  projection.ProjectedBalance,
		PendingIncome:     projection.PendingIncome,
		PendingExpenses:   projection.PendingExpenses,
		MonthlyIncome:     totals.Income,
		MonthlyExpense:    totals.Expenses,
		NetWorth:          netWorth,
		HealthStatus:      healthStatus(projection, totals),
		CashFlowData:      cashFlow,
		HasCashFlowData:   HasCashFlowData(cashFlow),
		IncomeSparkline:   incomeSpark,
		ExpenseSparkline:  expenseSpark,
		UpcomingBills:     bills,
		SpendingChartData: spending,
		SpendingView:      view,
	}
	c.reportSaturation(d)
	return d
}

// reportSaturation records the headline values that exceeded the float64
// range and were capped.
func (c *Calculator) reportSaturation(d Dashboard) {
	values := []struct {
		name  string
		value float64
	}{
		{"currentBalance", d.CurrentBalance},
		{"projectedBalance", d.ProjectedBalance},
		{"pendingIncome", d.PendingIncome},
		{"pendingExpenses", d.PendingExpenses},
		{"monthlyIncome", d.MonthlyIncome},
		{"monthlyExpense", d.MonthlyExpense},
		{"netWorth", d.NetWorth},
	}
	for _, v := range values {
		if IsSaturated(v.value) {
			c.tel.LogError(telemetry.DataCorruption, "dashboard", "Dashboard",
				map[string]any{"field": v.name}, v.name+" exceeds the representable range and was capped", telemetry.High)
		}
	}
}

// healthStatus is CRITICAL when the month is projected to end below zero,
// WARNING when the month spends more than it earns.
func healthStatus(p Projection, t Totals) HealthStatus {
	switch {
	case p.ProjectedBalance < 0:
		return Critical
	case t.NetFlow < 0:
		return Warning
	default:
		return Positive
	}
}

// ExtendedDashboard computes the Dashboard together with the validation
// summary of the input records and the telemetry health report.
func (c *Calculator) ExtendedDashboard(in Input) ExtendedDashboard {
	summary := c.validate(in)
	d := c.dashboard(in, false)
	return ExtendedDashboard{
		Dashboard:         d,
		ValidationSummary: summary,
		HealthReport:      c.tel.HealthReport(c.reportHours),
	}
}

// corruptionRatio is the share of invalid records above which the whole
// snapshot is reported as corrupted.
const corruptionRatio = 0.1

// validate validates every input record and records the failures.
func (c *Calculator) validate(in Input) ValidationSummary {
	s := ValidationSummary{TotalAccounts: len(in.Accounts), TotalTransactions: len(in.Transactions)}
	unknown := map[string]bool{}
	for _, a := range in.Accounts {
		v := ValidateAccount(a)
		if v.IsValid {
			s.ValidAccounts++
			continue
		}
		s.ErrorsDetected += len(v.Errors)
		c.tel.LogError(telemetry.InvalidInput, "validator", "ValidateAccount",
			map[string]any{"id": a.ID, "errors": v.Errors}, "invalid account "+a.ID, telemetry.Low)
		if !IsKnownCurrency(a.Currency) {
			unknown[a.CurrencyCode()] = true
		}
	}
	for _, t := range in.Transactions {
		v := ValidateTransaction(t)
		if v.IsValid {
			s.ValidTransactions++
			continue
		}
		s.ErrorsDetected += len(v.Errors)
		c.tel.LogError(telemetry.InvalidInput, "validator", "ValidateTransaction",
			map[string]any{"id": t.ID, "errors": v.Errors}, "invalid transaction "+t.ID, telemetry.Low)
		if t.Currency != "" && !IsKnownCurrency(t.Currency) {
			unknown[normalizeCurrency(t.Currency)] = true
		}
	}
	s.UnknownCurrencies = slices.Sorted(maps.Keys(unknown))
	for _, code := range s.UnknownCurrencies {
		if !IsISOCurrency(code) {
			s.NonISOCurrencies = append(s.NonISOCurrencies, code)
		}
	}

	total := s.TotalAccounts + s.TotalTransactions
	valid := s.ValidAccounts + s.ValidTransactions
	s.DataQualityScore = 100
	if total > 0 {
		s.DataQualityScore = Round(SafePercentage(valid, total), Precision)
		if invalid := total - valid; float64(invalid) > corruptionRatio*float64(total) {
			c.tel.Logf(telemetry.DataCorruption, telemetry.High, "validator", "validate",
				"%d of %d records failed validation", invalid, total)
		}
	}
	return s
}

// reportDataIssues records problems the engines silently absorb: splits
// exceeding their amount and, when logCurrencies is set, currencies without
// a conversion rate.
func (c *Calculator) reportDataIssues(accounts []Account, transactions []Transaction, logCurrencies bool) {
	for _, t := range transactions {
		if t.Deleted {
			continue
		}
		if IsSplitCorrupted(t) {
			c.tel.LogError(telemetry.DataCorruption, "effective-value", "EffectiveValue",
				map[string]any{"id": t.ID, "amount": t.Amount, "splits": SplitsTotal(t)},
				"shared splits exceed the transaction amount, full amount used", telemetry.Medium)
		}
		if logCurrencies && t.Currency != "" && !IsKnownCurrency(t.Currency) {
			c.tel.Logf(telemetry.InvalidInput, telemetry.Low, "currency", "ConvertToBRL",
				"transaction %s: unknown currency %q converted at 1:1", t.ID, t.Currency)
		}
	}
	if !logCurrencies {
		return
	}
	for _, a := range accounts {
		if !IsKnownCurrency(a.Currency) {
			c.tel.Logf(telemetry.InvalidInput, telemetry.Low, "currency", "ConvertToBRL",
				"account %s: unknown currency %q converted at 1:1", a.ID, a.Currency)
		}
	}
}
