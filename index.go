package gbce

import (
	"math"
	"time"
)

// AllShareIndex summarizes the whole market in one figure: the geometric mean
// of every instrument's windowed price, computed in log space so many
// instruments or extreme price ratios do not overflow the product.
//
// Instruments whose price is exactly zero are excluded from the mean rather
// than collapsing the index to zero; when every price is zero, or the
// registry is empty, the index is 0. The exclusion is silent: callers that
// need to know about it must inspect prices directly. A non-positive window
// means DefaultWindow.
func (r *Registry) AllShareIndex(window time.Duration) float64 {
	var logSum float64
	var total, zeros int
	for ins := range r.AllInstruments() {
		total++
		price, _ := ins.Price(window).Float64()
		if price == 0 {
			zeros++
			continue
		}
		logSum += math.Log(price)
	}
	if zeros == total {
		return 0
	}
	return math.Exp(logSum / float64(total-zeros))
}
