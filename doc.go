// Package gbce implements the trade-aggregation and derived-metric engine of
// the Global Beverage Corporation Exchange.
//
// The core functionalities include:
//   - Instrument Ledger: each Instrument owns its static attributes (symbol,
//     kind, dividend terms, par value) and an append-only trade history, and
//     answers the windowed price, dividend-yield and price/earnings queries.
//   - Trade Selection: every price query averages trades over a trailing time
//     window, with a documented fallback policy when no trade data is usable.
//   - Registry: an explicit, caller-populated collection of instruments. No
//     package-level state, so independent registries can coexist.
//   - All-Share Index: the geometric mean of all instrument prices, computed
//     in log space.
//
// All amounts are in minor currency units (pennies); derived figures are
// exact decimals. "Now" is an injectable dependency so window boundaries are
// deterministic under test.
//
// This package serves as the foundational logic for the `gbx` command-line
// tool.
package gbce
