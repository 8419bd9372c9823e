package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/famfin/renderer"
	"github.com/google/subcommands"
)

// validateCmd holds the flags for the 'validate' subcommand.
type validateCmd struct {
	json   bool
	strict bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the records of the snapshot" }
func (*validateCmd) Usage() string {
	return `fin validate [-json] [-strict]

  Validates every account and transaction of the snapshot and lists the
  problems found. Invalid records are still used by the reports, with safe
  defaults in place of the invalid values.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the validation summary as JSON")
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure status when a record is invalid")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	ext := newCalculator().ExtendedDashboard(s.Input())
	v := renderer.NewValidation(ext.ValidationSummary, s.Accounts, s.Transactions)

	status := subcommands.ExitSuccess
	if c.json {
		status = printJSON(v.Summary)
	} else {
		printMarkdown(renderer.RenderValidation(v))
	}
	if c.strict && len(v.Records) > 0 {
		return subcommands.ExitFailure
	}
	return status
}
