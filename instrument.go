package gbce

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Kind selects which dividend formula applies to an instrument.
type Kind int

const (
	// Common instruments pay whatever their last dividend was.
	Common Kind = iota
	// Preferred instruments pay a fixed rate on their par value.
	Preferred
)

func (k Kind) String() string {
	switch k {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("unknown instrument kind: %q", s)
	}
}

// symbolRegex checks the format of instrument symbols: uppercase letters only.
var symbolRegex = regexp.MustCompile(`^[A-Z]+$`)

// one is the upper bound of the fixed dividend rate.
var one = decimal.NewFromInt(1)

// Instrument is a tradable security: static attributes plus an append-only
// trade history. The symbol is immutable once created, the history never
// shrinks, and trades are kept in recording order, which is not necessarily
// chronological.
//
// RecordTrade is the only mutator and takes the exclusive lock; queries share
// a read lock, so one writer and any number of readers can use the same
// Instrument concurrently.
type Instrument struct {
	symbol            string
	kind              Kind
	lastDividend      Money
	fixedDividendRate decimal.Decimal // set iff kind is Preferred, in [0,1]
	parValue          Money

	now func() time.Time

	mu     sync.RWMutex
	trades []Trade
}

// NewCommon creates a common instrument.
func NewCommon(symbol string, lastDividend, parValue Money) (*Instrument, error) {
	return newInstrument(symbol, Common, lastDividend, decimal.Zero, parValue)
}

// NewPreferred creates a preferred instrument with its fixed dividend rate, a
// fraction in [0, 1].
func NewPreferred(symbol string, lastDividend, parValue Money, rate decimal.Decimal) (*Instrument, error) {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return nil, fmt.Errorf("fixed dividend rate %s is not in [0, 1]", rate)
	}
	return newInstrument(symbol, Preferred, lastDividend, rate, parValue)
}

func newInstrument(symbol string, kind Kind, lastDividend Money, rate decimal.Decimal, parValue Money) (*Instrument, error) {
	if !symbolRegex.MatchString(symbol) {
		return nil, fmt.Errorf("invalid symbol %q: must be uppercase letters", symbol)
	}
	if lastDividend.IsNegative() {
		return nil, fmt.Errorf("last dividend %s is negative", lastDividend)
	}
	if parValue.IsNegative() {
		return nil, fmt.Errorf("par value %s is negative", parValue)
	}
	return &Instrument{
		symbol:            symbol,
		kind:              kind,
		lastDividend:      lastDividend,
		fixedDividendRate: rate,
		parValue:          parValue,
		now:               time.Now,
	}, nil
}

// SetClock replaces the time source used to validate trade timestamps and to
// anchor price windows. Meant for tests and simulations; call it before the
// instrument is shared.
func (s *Instrument) SetClock(now func() time.Time) { s.now = now }

// Symbol returns the instrument's unique uppercase identifier.
func (s *Instrument) Symbol() string { return s.symbol }

// Kind returns the dividend variant of the instrument.
func (s *Instrument) Kind() Kind { return s.kind }

// LastDividend returns the last dividend paid, in pennies.
func (s *Instrument) LastDividend() Money { return s.lastDividend }

// FixedDividendRate returns the fixed dividend rate of a preferred
// instrument, and zero for a common one.
func (s *Instrument) FixedDividendRate() decimal.Decimal { return s.fixedDividendRate }

// ParValue returns the nominal value used as fallback price.
func (s *Instrument) ParValue() Money { return s.parValue }

// TradeCount returns the number of trades recorded so far.
func (s *Instrument) TradeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// String prints a one-line summary of the instrument.
func (s *Instrument) String() string {
	if s.kind == Preferred {
		return fmt.Sprintf("%s (%s): LastDiv: %s, FixedDiv: %s%%, ParVal: %s",
			s.symbol, s.kind, s.lastDividend, s.fixedDividendRate.Shift(2), s.parValue)
	}
	return fmt.Sprintf("%s (%s): LastDiv: %s, ParVal: %s", s.symbol, s.kind, s.lastDividend, s.parValue)
}

// RecordTrade appends a trade to the history. It rejects, wrapping
// ErrInvalidTrade, a non-positive quantity, a negative price, or a timestamp
// after the current time; a rejected trade leaves the history unchanged.
func (s *Instrument) RecordTrade(dir Direction, quantity int64, price Money, at time.Time) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity %d must be positive", ErrInvalidTrade, quantity)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s must not be negative", ErrInvalidTrade, price)
	}
	if at.After(s.now()) {
		return fmt.Errorf("%w: timestamp %s is in the future", ErrInvalidTrade, at.Format(time.RFC3339))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append(s.trades, Trade{Direction: dir, Quantity: quantity, Price: price, Time: at})
	return nil
}

// Buy records a buy trade at the given time.
func (s *Instrument) Buy(quantity int64, price Money, at time.Time) error {
	return s.RecordTrade(Buy, quantity, price, at)
}

// Sell records a sell trade at the given time.
func (s *Instrument) Sell(quantity int64, price Money, at time.Time) error {
	return s.RecordTrade(Sell, quantity, price, at)
}

// Price computes the volume-weighted average trade price over the trailing
// window. It never fails: with no usable trade data the par value stands in.
// The result is in pennies and may be fractional. A non-positive window
// means DefaultWindow.
func (s *Instrument) Price(window time.Duration) decimal.Decimal {
	if window <= 0 {
		window = DefaultWindow
	}
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return volumeWeightedPrice(s.trades, window, now, s.parValue)
}

// dividendBase is the numerator of the yield and the denominator of the
// price/earnings ratio: the last dividend for common instruments, the fixed
// rate times the par value for preferred ones.
func (s *Instrument) dividendBase() decimal.Decimal {
	if s.kind == Preferred {
		return s.fixedDividendRate.Mul(s.parValue.Decimal())
	}
	return s.lastDividend.Decimal()
}

// DividendYield is lastDividend/price for common instruments and
// rate×parValue/price for preferred ones, over the windowed price. It fails
// with ErrDivisionUndefined when that price is zero.
func (s *Instrument) DividendYield(window time.Duration) (decimal.Decimal, error) {
	price := s.Price(window)
	if price.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s price is zero over the window", ErrDivisionUndefined, s.symbol)
	}
	return s.dividendBase().Div(price), nil
}

// PriceEarningsRatio is price/dividend over the windowed price, the dividend
// being lastDividend for common instruments and rate×parValue for preferred
// ones. It fails with ErrDivisionUndefined when that dividend is zero.
func (s *Instrument) PriceEarningsRatio(window time.Duration) (decimal.Decimal, error) {
	base := s.dividendBase()
	if base.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: %s dividend is zero", ErrDivisionUndefined, s.symbol)
	}
	return s.Price(window).Div(base), nil
}
