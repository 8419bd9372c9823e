package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/famfin"
	"github.com/etnz/famfin/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	reportFlags
	view     string
	extended bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the household finance dashboard" }
func (*dashboardCmd) Usage() string {
	return `fin dashboard [-d <date>] [-view category|source] [-json [-extended]]

  Displays balances, the projection to the end of the month, the monthly
  totals, the cash flow of the year, the upcoming bills and the spending.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	f.StringVar(&c.view, "view", "category", "Spending grouping (category, source)")
	f.BoolVar(&c.extended, "extended", false, "With -json, add the validation summary and the health report")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := famfin.ParseSpendingView(c.view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	in.SpendingView = view

	calc := newCalculator()
	if c.json && c.extended {
		return printJSON(calc.ExtendedDashboard(in))
	}
	d := calc.Dashboard(in)
	if c.json {
		return printJSON(d)
	}
	printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(d)))
	return subcommands.ExitSuccess
}
