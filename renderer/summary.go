// Package renderer renders market reports to markdown.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/gbce"
	"github.com/shopspring/decimal"
)

// MarketSummaryMarkdown renders the market summary as a markdown document.
func MarketSummaryMarkdown(s *gbce.MarketSummary) string {
	var b strings.Builder
	WriteMarketSummary(&b, s)
	return b.String()
}

// WriteMarketSummary writes the market summary to w as markdown.
func WriteMarketSummary(w io.Writer, s *gbce.MarketSummary) {
	fmt.Fprintf(w, "# GBCE Market Summary on %s\n\n", s.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Volume-weighted prices over the last %s. Prices are quoted in pence.\n\n", s.Window)
	fmt.Fprintln(w, "| Symbol | Kind | Last Div. | Fixed Div. | Par Value | Trades | Price | Yield | P/E |")
	fmt.Fprintln(w, "|---|---|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range s.Rows {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %d | %s | %s | %s |\n",
			row.Symbol, row.Kind, row.LastDividend, rateCell(row), row.ParValue,
			row.Trades, Pence(row.Price), yieldCell(row), peCell(row))
	}
	fmt.Fprintf(w, "\n**GBCE All-Share Index**: %.4f\n", s.Index)
}

// Pence formats a decimal amount of pennies, rounded to 3 places.
func Pence(d decimal.Decimal) string {
	return d.Round(3).String() + "p"
}

func rateCell(row gbce.SummaryRow) string {
	if row.Kind != gbce.Preferred {
		return "-"
	}
	return row.FixedDividendRate.Shift(2).String() + "%"
}

func yieldCell(row gbce.SummaryRow) string {
	if !row.YieldOk {
		return "-"
	}
	return row.Yield.Shift(2).Round(2).String() + "%"
}

func peCell(row gbce.SummaryRow) string {
	if !row.PEOk {
		return "-"
	}
	return row.PE.Round(2).String()
}
