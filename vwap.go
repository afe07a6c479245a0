package gbce

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultWindow is the trailing span over which trades are averaged into a
// price when the caller does not pick one.
const DefaultWindow = 15 * time.Minute

// tradeWindowAnchor returns the instant the averaging window ends at.
//
// The window ends at now when at least one trade is recent (within the
// window of now); otherwise it ends at the newest trade, so instruments with
// only old trades are still priced over their densest available window
// instead of an arbitrarily empty one. Shifting the anchor keeps "no trade in
// the last window" from masquerading as "no trade at all".
func tradeWindowAnchor(trades []Trade, window time.Duration, now time.Time) time.Time {
	latest := trades[0].Time
	for _, t := range trades[1:] {
		if t.Time.After(latest) {
			latest = t.Time
		}
	}
	if now.Sub(latest) <= window {
		return now
	}
	return latest
}

// volumeWeightedPrice computes Σ(price×quantity)/Σ(quantity) over the trades
// whose timestamp falls in [anchor−window, anchor], both bounds included.
// With no trade at all, or none in range, the par value stands in.
//
// Trades may appear in any order: recording order is not chronological order.
func volumeWeightedPrice(trades []Trade, window time.Duration, now time.Time, par Money) decimal.Decimal {
	if len(trades) == 0 {
		return par.Decimal()
	}
	anchor := tradeWindowAnchor(trades, window, now)
	from := anchor.Add(-window)

	// Accumulate in decimals: price×quantity does not fit an int64 for large
	// block trades.
	value := decimal.Zero
	quantity := decimal.Zero
	for _, t := range trades {
		if t.Time.Before(from) || t.Time.After(anchor) {
			continue
		}
		q := decimal.NewFromInt(t.Quantity)
		value = value.Add(t.Price.Decimal().Mul(q))
		quantity = quantity.Add(q)
	}
	if quantity.IsZero() {
		return par.Decimal()
	}
	return value.Div(quantity)
}
