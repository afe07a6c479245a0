package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/etnz/gbce/renderer"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	symbol string
	window time.Duration
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display one instrument's price, yield and P/E" }
func (*priceCmd) Usage() string {
	return `gbx price [-s <symbol>] [-w <window>]

  Displays the volume-weighted price of one sample-market instrument over the
  window, with its dividend yield and price/earnings ratio.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "ALE", "instrument symbol")
	f.DurationVar(&c.window, "w", gbce.DefaultWindow, "averaging window for prices")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fmt.Println(ins)
	fmt.Printf("Price over %s: %s\n", c.window, renderer.Pence(ins.Price(c.window)))

	if yield, err := ins.DividendYield(c.window); err == nil {
		fmt.Printf("Dividend yield: %s%%\n", yield.Shift(2).Round(2))
	} else if errors.Is(err, gbce.ErrDivisionUndefined) {
		fmt.Println("Dividend yield: undefined (zero price)")
	}

	if pe, err := ins.PriceEarningsRatio(c.window); err == nil {
		fmt.Printf("P/E ratio: %s\n", pe.Round(2))
	} else if errors.Is(err, gbce.ErrDivisionUndefined) {
		fmt.Println("P/E ratio: undefined (zero dividend)")
	}

	return subcommands.ExitSuccess
}
