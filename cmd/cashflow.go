package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/famfin/renderer"
	"github.com/google/subcommands"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	reportFlags
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the monthly cash flow of the year" }
func (*cashflowCmd) Usage() string {
	return `fin cashflow [-d <date>] [-json]

  Displays the income, expenses and running balance of every month of the
  reference date's year. Months before the first transaction have no balance.
`
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	d := newCalculator().Dashboard(in)
	if c.json {
		return printJSON(d.CashFlowData)
	}
	printMarkdown(renderer.RenderCashFlow(renderer.NewDashboard(d)))
	return subcommands.ExitSuccess
}
