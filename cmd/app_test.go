package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const snapshotJSON = `{
  "household": {
    "accounts": [
      {"id": "a1", "name": "Checking", "type": "checking", "balance": 1000},
      {"id": "", "name": "Broken", "type": "bogus", "balance": "12"}
    ],
    "transactions": [
      {"id": "t1", "type": "income", "amount": 3000, "date": "2025-01-05", "accountId": "a1"},
      {"id": "t2", "type": "expense", "amount": 250, "date": "2025-01-12", "accountId": "a1", "category": "Food"}
    ]
  }
}`

// setup writes the snapshot in a temporary directory and points the global flags to it.
func setup(t *testing.T) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(file, []byte(snapshotJSON), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FAMFIN_SNAPSHOT", file)
	t.Setenv("FAMFIN_ACCOUNTS_PATH", "$.household.accounts")
	t.Setenv("FAMFIN_TRANSACTIONS_PATH", "$.household.transactions")
	t.Setenv("FAMFIN_PLAIN", "1")
	t.Setenv("FAMFIN_LOG_LEVEL", "panic")
	SetFlags(flag.NewFlagSet("fin", flag.ContinueOnError))
}

func TestSetFlags(t *testing.T) {
	setup(t)
	if global.paths.Accounts != "$.household.accounts" {
		t.Errorf("accounts path = %q, want the FAMFIN_ACCOUNTS_PATH value", global.paths.Accounts)
	}
	if global.paths.Trips != "$.trips" {
		t.Errorf("trips path = %q, want the default", global.paths.Trips)
	}
	if !global.plain {
		t.Error("plain output not enabled by FAMFIN_PLAIN")
	}

	f := flag.NewFlagSet("fin", flag.ContinueOnError)
	SetFlags(f)
	if err := f.Parse([]string{"-snapshot", "other.json"}); err != nil {
		t.Fatal(err)
	}
	if global.snapshotFile != "other.json" {
		t.Errorf("snapshot = %q, want the flag value", global.snapshotFile)
	}
}

func TestDecodeSnapshot(t *testing.T) {
	setup(t)
	s, err := DecodeSnapshot()
	if err != nil {
		t.Fatalf("DecodeSnapshot() unexpected error: %v", err)
	}
	if len(s.Accounts) != 2 || len(s.Transactions) != 2 || len(s.Trips) != 0 {
		t.Errorf("DecodeSnapshot() = %d accounts, %d transactions, %d trips, want 2, 2, 0", len(s.Accounts), len(s.Transactions), len(s.Trips))
	}

	global.snapshotFile = filepath.Join(t.TempDir(), "missing.json")
	if _, err := DecodeSnapshot(); err == nil {
		t.Error("DecodeSnapshot() of a missing file succeeded")
	}
}

func TestReportFlagsInput(t *testing.T) {
	setup(t)
	testCases := []struct {
		date    string
		want    string
		wantErr bool
	}{
		{date: "", want: "0001-01-01"},
		{date: "2025-01-15", want: "2025-01-15"},
		{date: "not a date", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			r := reportFlags{date: tc.date}
			in, err := r.input()
			if tc.wantErr {
				if err == nil {
					t.Errorf("input() with date %q succeeded", tc.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("input() unexpected error: %v", err)
			}
			if tc.date != "" && in.Date.String() != tc.want {
				t.Errorf("input().Date = %v, want %v", in.Date, tc.want)
			}
			if tc.date == "" && !in.Date.IsZero() {
				t.Errorf("input().Date = %v, want zero", in.Date)
			}
		})
	}
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{args: []string{"dashboard", "-d", "2025-01-15"}, want: subcommands.ExitSuccess},
		{args: []string{"dashboard", "-d", "2025-01-15", "-json", "-extended"}, want: subcommands.ExitSuccess},
		{args: []string{"dashboard", "-view", "payee"}, want: subcommands.ExitUsageError},
		{args: []string{"cashflow", "-d", "2025-01-15", "-json"}, want: subcommands.ExitSuccess},
		{args: []string{"spending", "-view", "source"}, want: subcommands.ExitSuccess},
		{args: []string{"validate"}, want: subcommands.ExitSuccess},
		{args: []string{"validate", "-strict"}, want: subcommands.ExitFailure},
		{args: []string{"health", "-period", "0"}, want: subcommands.ExitSuccess},
	}
	for _, tc := range testCases {
		t.Run(tc.args[0], func(t *testing.T) {
			setup(t)
			f := flag.NewFlagSet("fin", flag.ContinueOnError)
			commander := subcommands.NewCommander(f, "fin")
			Register(commander)
			if err := f.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			if got := commander.Execute(context.Background()); got != tc.want {
				t.Errorf("fin %v = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}
