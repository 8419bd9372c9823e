// Command fin reports on a household finance snapshot.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/etnz/famfin/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, could not load .env: %v", err)
	}
	cmd.SetFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion().Complete("fin")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	c := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	for _, sub := range cmd.Commands {
		f := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(f)
		c.Sub[sub.Name()] = &complete.Command{Flags: predictFlags(f)}
	}
	return c
}

// predictFlags predicts the values of the flags of f.
func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "snapshot":
			flags[fl.Name] = predict.Files("*.json")
		case "view":
			flags[fl.Name] = predict.Set{"category", "source"}
		case "log-level":
			flags[fl.Name] = predict.Set{"debug", "info", "warning", "error"}
		default:
			flags[fl.Name] = predict.Nothing
		}
	})
	return flags
}
