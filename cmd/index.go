package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

// indexCmd holds the flags for the 'index' subcommand.
type indexCmd struct {
	window time.Duration
}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "display the GBCE All-Share Index" }
func (*indexCmd) Usage() string {
	return `gbx index [-w <window>]

  Displays the geometric mean of all sample-market instrument prices.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "averaging window for prices")
}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := SampleMarket(time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sample market: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("GBCE All-Share Index over %s: %.4f\n", c.window, reg.AllShareIndex(c.window))
	return subcommands.ExitSuccess
}
