// Package cmd implements the fin command line application: reports on a
// household finance snapshot.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/famfin"
	"github.com/etnz/famfin/date"
	"github.com/etnz/famfin/telemetry"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Commands are the subcommands of the application, in registration order.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&cashflowCmd{},
	&spendingCmd{},
	&validateCmd{},
	&healthCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "reports")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config holds the global flags.
type config struct {
	snapshotFile string
	logLevel     string
	plain        bool
	paths        famfin.SnapshotPaths
}

var global config

// SetFlags declares the global flags on f. Their defaults come from the
// environment, so it must be called after the environment is loaded.
func SetFlags(f *flag.FlagSet) {
	f.StringVar(&global.snapshotFile, "snapshot", getEnv("FAMFIN_SNAPSHOT", "snapshot.json"), "Path to the snapshot file (JSON)")
	f.StringVar(&global.logLevel, "log-level", getEnv("FAMFIN_LOG_LEVEL", "warning"), "Log level of calculation diagnostics (debug, info, warning, error)")
	f.BoolVar(&global.plain, "plain", getEnv("FAMFIN_PLAIN", "") != "", "Print raw markdown instead of styled output")

	def := famfin.DefaultSnapshotPaths
	f.StringVar(&global.paths.Accounts, "accounts-path", getEnv("FAMFIN_ACCOUNTS_PATH", def.Accounts), "JSONPath of the accounts in the snapshot")
	f.StringVar(&global.paths.Transactions, "transactions-path", getEnv("FAMFIN_TRANSACTIONS_PATH", def.Transactions), "JSONPath of the transactions in the snapshot")
	f.StringVar(&global.paths.Trips, "trips-path", getEnv("FAMFIN_TRIPS_PATH", def.Trips), "JSONPath of the trips in the snapshot")
	f.StringVar(&global.paths.ProjectedAccounts, "projected-accounts-path", getEnv("FAMFIN_PROJECTED_ACCOUNTS_PATH", def.ProjectedAccounts), "JSONPath of the projected accounts in the snapshot")
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// DecodeSnapshot decodes the snapshot file configured by the global flags.
func DecodeSnapshot() (famfin.Snapshot, error) {
	f, err := os.Open(global.snapshotFile)
	if err != nil {
		return famfin.Snapshot{}, err
	}
	defer f.Close()
	s, err := famfin.DecodeSnapshot(f, global.paths)
	if err != nil {
		return famfin.Snapshot{}, fmt.Errorf("%s: %w", global.snapshotFile, err)
	}
	return s, nil
}

// newLogger returns the logger of calculation diagnostics, writing to stderr.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(global.logLevel)
	if err != nil {
		logger.Warnf("unknown log level %q, using %s", global.logLevel, logrus.WarnLevel)
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// newCalculator returns a calculator recording into a telemetry that logs with newLogger.
func newCalculator(opts ...famfin.CalculatorOption) *famfin.Calculator {
	return famfin.NewCalculator(telemetry.New(telemetry.WithLogger(newLogger())), opts...)
}

// reportFlags are the flags shared by the commands computing a dashboard.
type reportFlags struct {
	date string
	json bool
}

func (r *reportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.date, "d", "", "Reference date of the report, YYYY-MM-DD (defaults to today)")
	f.BoolVar(&r.json, "json", false, "Print JSON instead of markdown")
}

// input decodes the snapshot and returns the dashboard input for the reference date.
func (r *reportFlags) input() (famfin.Input, error) {
	var on date.Date
	if r.date != "" {
		d, err := date.Parse(r.date)
		if err != nil {
			return famfin.Input{}, fmt.Errorf("invalid date: %w", err)
		}
		on = d
	}
	s, err := DecodeSnapshot()
	if err != nil {
		return famfin.Input{}, err
	}
	in := s.Input()
	in.Date = on
	return in, nil
}

// printJSON prints v indented on stdout.
func printJSON(v any) subcommands.ExitStatus {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}

// printMarkdown prints md styled for the terminal, or raw when styling is
// disabled or fails.
func printMarkdown(md string) {
	if global.plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
