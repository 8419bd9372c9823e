package renderer

import (
	"io/fs"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/famfin"
	"github.com/etnz/famfin/date"
	"github.com/etnz/famfin/telemetry"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var jan15 = date.New(2025, time.January, 15)

// sampleInput is a small household: a checking account, a credit card and a
// few transactions of January 2025.
func sampleInput() famfin.Input {
	rent := famfin.Transaction{ID: "rent", Description: "Rent | January", Type: famfin.Expense, Amount: 800, Date: "2025-01-20", AccountID: "a1", Category: "Housing", EnableNotification: true}
	return famfin.Input{
		Accounts: []famfin.Account{
			{ID: "a1", Name: "Checking", Type: famfin.Checking, Balance: 1000},
			{ID: "cc", Name: "Card", Type: famfin.CreditCard, Balance: -150},
		},
		Transactions: []famfin.Transaction{
			{ID: "salary", Type: famfin.Income, Amount: 3000, Date: "2025-01-05", AccountID: "a1"},
			{ID: "market", Type: famfin.Expense, Amount: 250.5, Date: "2025-01-12", AccountID: "cc", Category: "Food"},
			rent,
		},
	}
}

func sampleDashboard() *Dashboard {
	c := famfin.NewCalculator(telemetry.New(), famfin.WithToday(func() date.Date { return jan15 }))
	return NewDashboard(c.Dashboard(sampleInput()))
}

// headings parses markdown and returns the text of its headings.
func headings(t *testing.T, md string) []string {
	t.Helper()
	src := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	var res []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var b strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				b.Write(line.Value(src))
			}
			res = append(res, b.String())
		}
		return ast.WalkContinue, nil
	})
	return res
}

func TestRenderDashboard(t *testing.T) {
	d := sampleDashboard()
	md := RenderDashboard(d)

	want := []string{"Dashboard on 2025-01-15", "This Month", "Upcoming Bills", "Cash Flow", "Spending"}
	if got := headings(t, md); !slices.Equal(got, want) {
		t.Errorf("headings = %q, want %q\n%s", got, want, md)
	}
	for _, s := range []string{
		"Status: **POSITIVE**",
		"| Current | R$1.000,00 |",
		"| Pending Expenses | -R$800,00 |",
		"| **Projected** | **R$200,00** |",
		"| Net Worth | R$850,00 |",
		"| R$3.000,00 | R$1.050,50 | +R$1.949,50 |",
		`| 2025-01-20 | Rent \| January | Housing | R$800,00 |`,
		"| Jan | R$3.000,00 | R$1.050,50 | R$50,00 |",
		"| Fev | R$0,00 | R$0,00 | R$50,00 |",
		"| Housing | R$800,00 | 76.15% |",
		"| Food | R$250,50 | 23.85% |",
	} {
		if !strings.Contains(md, s) {
			t.Errorf("dashboard does not contain %q:\n%s", s, md)
		}
	}
}

func TestRenderCashFlowAndSpending(t *testing.T) {
	d := sampleDashboard()
	if got, want := headings(t, RenderCashFlow(d)), []string{"Dashboard on 2025-01-15", "Cash Flow"}; !slices.Equal(got, want) {
		t.Errorf("cash flow headings = %q, want %q", got, want)
	}
	if got, want := headings(t, RenderSpending(d)), []string{"Dashboard on 2025-01-15", "Spending"}; !slices.Equal(got, want) {
		t.Errorf("spending headings = %q, want %q", got, want)
	}

	empty := NewDashboard(famfin.NewCalculator(nil, famfin.WithToday(func() date.Date { return jan15 })).Dashboard(famfin.Input{}))
	if md := RenderCashFlow(empty); !strings.Contains(md, "No cash flow recorded this year.") {
		t.Errorf("empty cash flow:\n%s", md)
	}
	if md := RenderSpending(empty); !strings.Contains(md, "No spending recorded.") {
		t.Errorf("empty spending:\n%s", md)
	}
	if md := RenderDashboard(empty); strings.Contains(md, "Upcoming Bills") {
		t.Errorf("empty dashboard shows bills:\n%s", md)
	}
}

func TestRenderHealth(t *testing.T) {
	tel := telemetry.New()
	tel.LogError(telemetry.DataCorruption, "effective-value", "EffectiveValue", nil, "splits exceed amount", telemetry.Medium)
	tel.LogError(telemetry.InvalidInput, "validator", "ValidateAccount", nil, "invalid account", telemetry.Low)

	md := RenderHealth(tel.HealthReport(0))
	want := []string{"Calculation Health", "Errors by Type", "Top Error Sources", "Recommendations", "Recent Errors"}
	if got := headings(t, md); !slices.Equal(got, want) {
		t.Errorf("headings = %q, want %q\n%s", got, want, md)
	}
	for _, s := range []string{"| DATA_CORRUPTION | 1 |", "| effective-value | 1 |", "- " + telemetry.RecommendCorruption} {
		if !strings.Contains(md, s) {
			t.Errorf("health report does not contain %q:\n%s", s, md)
		}
	}

	healthy := RenderHealth(telemetry.New().HealthReport(24))
	if got, want := headings(t, healthy), []string{"Calculation Health", "Recommendations"}; !slices.Equal(got, want) {
		t.Errorf("healthy headings = %q, want %q\n%s", got, want, healthy)
	}
	if !strings.Contains(healthy, "- "+telemetry.RecommendHealthy) {
		t.Errorf("healthy report:\n%s", healthy)
	}
}

func TestRenderValidation(t *testing.T) {
	accounts := []famfin.Account{{ID: "a1", Name: "Checking", Type: famfin.Checking}, {Name: "Broken", Type: "BOGUS"}}
	transactions := []famfin.Transaction{{ID: "t1", Type: famfin.Expense, Amount: 10, Date: "2025-01-10", AccountID: "a1", Currency: "ZZZ"}}
	c := famfin.NewCalculator(nil, famfin.WithToday(func() date.Date { return jan15 }))
	ext := c.ExtendedDashboard(famfin.Input{Accounts: accounts, Transactions: transactions})

	v := NewValidation(ext.ValidationSummary, accounts, transactions)
	if len(v.Records) != 2 {
		t.Fatalf("Records = %+v, want 2 invalid records", v.Records)
	}
	md := RenderValidation(v)
	want := []string{"Validation", "Invalid Records", "account (no id)", "transaction t1"}
	if got := headings(t, md); !slices.Equal(got, want) {
		t.Errorf("headings = %q, want %q\n%s", got, want, md)
	}
	for _, s := range []string{"| Accounts | 1 | 2 |", "| Transactions | 0 | 1 |", "Unknown currencies, converted at 1:1: ZZZ", "Not ISO 4217 codes: ZZZ", `- unknown currency "ZZZ"`} {
		if !strings.Contains(md, s) {
			t.Errorf("validation report does not contain %q:\n%s", s, md)
		}
	}
}

func TestSparkline(t *testing.T) {
	testCases := []struct {
		values []float64
		want   string
	}{
		{values: nil, want: ""},
		{values: []float64{0, 0, 0}, want: "▁▁▁"},
		{values: []float64{0, 7, 14}, want: "▁▅█"},
		{values: []float64{-1, 1}, want: "▁█"},
	}
	for _, tc := range testCases {
		if got := Sparkline(tc.values); got != tc.want {
			t.Errorf("Sparkline(%v) = %q, want %q", tc.values, got, tc.want)
		}
	}
}

func TestTemplatesParse(t *testing.T) {
	files, err := fs.Glob(templates, "*.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no embedded template")
	}
	for _, f := range files {
		if strings.HasPrefix(renderTemplate("t", f, nil, nil), "error parsing") {
			t.Errorf("template %s does not parse", f)
		}
	}
}
