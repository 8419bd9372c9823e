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

// spendingCmd holds the flags for the 'spending' subcommand.
type spendingCmd struct {
	reportFlags
	view string
}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "display the expenses grouped by category or source" }
func (*spendingCmd) Usage() string {
	return `fin spending [-d <date>] [-view category|source] [-json]

  Displays the visible expenses grouped by category, or by the kind of
  account they were paid with, largest first.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	f.StringVar(&c.view, "view", "category", "Spending grouping (category, source)")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	d := newCalculator().Dashboard(in)
	if c.json {
		return printJSON(d.SpendingChartData)
	}
	printMarkdown(renderer.RenderSpending(renderer.NewDashboard(d)))
	return subcommands.ExitSuccess
}
