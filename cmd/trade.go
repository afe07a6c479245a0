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

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	symbol    string
	direction string
	quantity  int64
	price     int64
	ago       time.Duration
	window    time.Duration
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "record a trade and show the recomputed price" }
func (*tradeCmd) Usage() string {
	return `gbx trade [-s <symbol>] [-d buy|sell] -q <quantity> -p <price> [-ago <duration>]

  Records a trade on the sample market and displays the instrument's price
  before and after. The market is in memory only: the trade is gone once the
  command returns, this demonstrates recording and validation.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "ALE", "instrument symbol")
	f.StringVar(&c.direction, "d", "buy", "trade direction: buy or sell")
	f.Int64Var(&c.quantity, "q", 0, "number of shares")
	f.Int64Var(&c.price, "p", 0, "price per share in pence")
	f.DurationVar(&c.ago, "ago", 0, "how long ago the trade took place")
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "averaging window for prices")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := gbce.ParseDirection(c.direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	reg, err := SampleMarket(time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sample market: %v\n", err)
		return subcommands.ExitFailure
	}

	ins := reg.Get(c.symbol)
	if ins == nil {
		fmt.Fprintf(os.Stderr, "Unknown symbol %q, try one of %v\n", c.symbol, SampleSymbols)
		return subcommands.ExitUsageError
	}

	before := ins.Price(c.window)

	at := time.Now().Add(-c.ago)
	if err := ins.RecordTrade(dir, c.quantity, gbce.Money(c.price), at); err != nil {
		fmt.Fprintf(os.Stderr, "Trade rejected: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %d %s at %dp\n", dir, c.quantity, c.symbol, c.price)
	fmt.Printf("Price over %s: %s before, %s after\n",
		c.window, renderer.Pence(before), renderer.Pence(ins.Price(c.window)))

	return subcommands.ExitSuccess
}
