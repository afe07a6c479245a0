package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/etnz/gbce/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	window time.Duration
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the sample market" }
func (*summaryCmd) Usage() string {
	return `gbx summary [-w <window>]

  Displays every instrument's windowed price, dividend yield and P/E ratio,
  plus the GBCE All-Share Index.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "averaging window for prices")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := SampleMarket(time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sample market: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := gbce.NewMarketSummary(reg, c.window, time.Now())
	printMarkdown(renderer.MarketSummaryMarkdown(summary))

	return subcommands.ExitSuccess
}
