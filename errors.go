package gbce

import "errors"

// ErrInvalidTrade rejects a trade with a non-positive quantity, a negative
// price, or a timestamp later than the current time. A rejected trade is
// never recorded.
var ErrInvalidTrade = errors.New("invalid trade")

// ErrDivisionUndefined reports a yield or price/earnings query whose divisor
// (windowed price or dividend base) is zero. The caller must handle it or
// pick a different window.
var ErrDivisionUndefined = errors.New("division undefined")
