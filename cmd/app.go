// Package cmd implements the gbx CLI, a demonstration harness over an
// in-memory sample market.
package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/gbce"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package calls Register() to declare them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "market")
	c.Register(&priceCmd{}, "market")
	c.Register(&indexCmd{}, "market")
	c.Register(&tradeCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
}

// SampleSymbols are the instruments of the sample market, for completion.
var SampleSymbols = []string{"ALE", "GIN", "JOE", "POP", "TEA"}

// SampleMarket builds the GBCE sample instruments with a few trades recorded
// over the last half hour. Nothing is persisted: every gbx invocation starts
// from this market. JOE has no trades, so its price falls back to par.
func SampleMarket(now func() time.Time) (*gbce.Registry, error) {
	tea, err := gbce.NewCommon("TEA", 0, 100)
	if err != nil {
		return nil, err
	}
	pop, err := gbce.NewCommon("POP", 8, 100)
	if err != nil {
		return nil, err
	}
	ale, err := gbce.NewCommon("ALE", 23, 60)
	if err != nil {
		return nil, err
	}
	gin, err := gbce.NewPreferred("GIN", 8, 100, decimal.NewFromFloat(0.02))
	if err != nil {
		return nil, err
	}
	joe, err := gbce.NewCommon("JOE", 13, 250)
	if err != nil {
		return nil, err
	}

	reg := gbce.NewRegistry()
	for _, ins := range []*gbce.Instrument{tea, pop, ale, gin, joe} {
		ins.SetClock(now)
		if err := reg.Add(ins); err != nil {
			return nil, err
		}
	}

	// record appends a trade timestamped minutes ago, keeping the first error.
	record := func(ins *gbce.Instrument, dir gbce.Direction, qty int64, price gbce.Money, minutesAgo int) {
		if err == nil {
			at := now().Add(-time.Duration(minutesAgo) * time.Minute)
			err = ins.RecordTrade(dir, qty, price, at)
		}
	}

	record(tea, gbce.Buy, 10, 95, 30)
	record(tea, gbce.Sell, 12, 104, 25)
	record(tea, gbce.Buy, 24, 82, 15)
	record(tea, gbce.Sell, 25, 99, 10)
	record(tea, gbce.Buy, 82, 72, 5)
	record(tea, gbce.Sell, 129, 92, 5)

	record(pop, gbce.Buy, 100, 110, 12)
	record(pop, gbce.Sell, 40, 108, 3)

	record(ale, gbce.Buy, 500, 25, 8)
	record(ale, gbce.Sell, 300, 15, 4)

	record(gin, gbce.Buy, 100, 1000, 14)

	if err != nil {
		return nil, fmt.Errorf("could not seed sample trades: %w", err)
	}
	return reg, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// markdown when the terminal renderer is not usable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("markdown rendering unavailable: %v", err)
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("markdown rendering failed: %v", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
