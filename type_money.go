package gbce

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount of minor currency units (pennies).
//
// The exchange quotes every static amount (dividends, par values, trade
// prices) in whole pennies, so a bounded integer is enough: int64 covers
// roughly ±92 quadrillion pounds.
type Money int64

// Decimal returns the amount as an exact decimal, still in pennies.
func (m Money) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(m)) }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m == 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m < 0 }

// String formats the amount as pounds and pence.
func (m Money) String() string { return money.New(int64(m), money.GBP).Display() }
