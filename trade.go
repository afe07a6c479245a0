package gbce

import (
	"fmt"
	"time"
)

// Direction tells whether a trade bought or sold shares.
type Direction int

const (
	// Buy records shares acquired.
	Buy Direction = iota
	// Sell records shares disposed of.
	Sell
)

func (d Direction) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade direction: %q", s)
	}
}

// Trade is a single buy or sell record. It is immutable once recorded.
type Trade struct {
	Direction Direction
	Quantity  int64     // number of shares, always positive
	Price     Money     // price per share, in pennies
	Time      time.Time // when the trade took place
}
