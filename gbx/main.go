package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/gbce/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when the shell asks for completions, this answers and
	// exits before any command runs.
	symbols := predict.Set(cmd.SampleSymbols)
	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"summary": {},
			"price":   {Flags: map[string]complete.Predictor{"s": symbols}},
			"index":   {},
			"trade": {Flags: map[string]complete.Predictor{
				"s": symbols,
				"d": predict.Set{"buy", "sell"},
			}},
			"topic": {},
		},
	}
	cmp.Complete("gbx")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
