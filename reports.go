package gbce

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSummary is a snapshot of every instrument's derived metrics plus the
// all-share index, ready for rendering.
type MarketSummary struct {
	Time   time.Time     // when the snapshot was taken
	Window time.Duration // the averaging window used
	Rows   []SummaryRow  // one row per instrument, in symbol order
	Index  float64       // the all-share index over the same window
}

// SummaryRow carries one instrument's attributes and derived metrics.
// Yield and PE are only meaningful when their Ok flag is set; the flag is
// false when the corresponding division is undefined.
type SummaryRow struct {
	Symbol            string
	Kind              Kind
	LastDividend      Money
	FixedDividendRate decimal.Decimal // zero for common instruments
	ParValue          Money
	Trades            int
	Price             decimal.Decimal // windowed price, in pennies
	Yield             decimal.Decimal
	YieldOk           bool
	PE                decimal.Decimal
	PEOk              bool
}

// NewMarketSummary computes a summary of all instruments in the registry at
// the given time. A non-positive window means DefaultWindow.
func NewMarketSummary(reg *Registry, window time.Duration, at time.Time) *MarketSummary {
	if window <= 0 {
		window = DefaultWindow
	}
	s := &MarketSummary{Time: at, Window: window, Index: reg.AllShareIndex(window)}
	for ins := range reg.AllInstruments() {
		row := SummaryRow{
			Symbol:            ins.Symbol(),
			Kind:              ins.Kind(),
			LastDividend:      ins.LastDividend(),
			FixedDividendRate: ins.FixedDividendRate(),
			ParValue:          ins.ParValue(),
			Trades:            ins.TradeCount(),
			Price:             ins.Price(window),
		}
		if yield, err := ins.DividendYield(window); err == nil {
			row.Yield, row.YieldOk = yield, true
		}
		if pe, err := ins.PriceEarningsRatio(window); err == nil {
			row.PE, row.PEOk = pe, true
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
