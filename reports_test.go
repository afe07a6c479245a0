package gbce

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMarketSummary(t *testing.T) {
	reg := NewRegistry()
	ale := newTestCommon(t, "ALE", 23, 60)
	if err := ale.Buy(500, 25, ago(8)); err != nil {
		t.Fatal(err)
	}
	if err := ale.Sell(300, 15, ago(4)); err != nil {
		t.Fatal(err)
	}
	tea := newTestCommon(t, "TEA", 0, 100) // zero dividend: P/E undefined
	for _, ins := range []*Instrument{ale, tea} {
		if err := reg.Add(ins); err != nil {
			t.Fatal(err)
		}
	}

	s := NewMarketSummary(reg, 0, testNow)

	if s.Window != DefaultWindow {
		t.Errorf("Window = %s, want the default window", s.Window)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(s.Rows))
	}
	if s.Rows[0].Symbol != "ALE" || s.Rows[1].Symbol != "TEA" {
		t.Errorf("rows are not in symbol order: %v, %v", s.Rows[0].Symbol, s.Rows[1].Symbol)
	}

	aleRow := s.Rows[0]
	if want := decimal.NewFromFloat(21.875); !aleRow.Price.Equal(want) {
		t.Errorf("ALE price = %s, want %s", aleRow.Price, want)
	}
	if !aleRow.YieldOk || !aleRow.PEOk {
		t.Errorf("ALE yield/PE flags = %v/%v, want both true", aleRow.YieldOk, aleRow.PEOk)
	}

	teaRow := s.Rows[1]
	if !teaRow.YieldOk {
		t.Error("TEA yield flag = false, want true (price is par, dividend is zero)")
	}
	if teaRow.PEOk {
		t.Error("TEA P/E flag = true, want false for a zero dividend")
	}

	if s.Index == 0 {
		t.Error("Index = 0, want a positive index for non-zero prices")
	}
}
