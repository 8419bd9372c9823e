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

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	reportFlags
	period float64
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display the calculation health of the snapshot" }
func (*healthCmd) Usage() string {
	return `fin health [-d <date>] [-period <hours>] [-json]

  Computes the dashboard and reports the data-quality problems and the
  calculation failures recorded meanwhile, with recommendations.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	c.reportFlags.SetFlags(f)
	f.Float64Var(&c.period, "period", 24, "Hours covered by the report (0 for all)")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	ext := newCalculator(famfin.WithReportPeriod(c.period)).ExtendedDashboard(in)
	if c.json {
		return printJSON(ext.HealthReport)
	}
	printMarkdown(renderer.RenderHealth(ext.HealthReport))
	return subcommands.ExitSuccess
}
