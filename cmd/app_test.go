package cmd

import (
	"testing"
	"time"

	"github.com/etnz/gbce"
	"github.com/shopspring/decimal"
)

func TestSampleMarket(t *testing.T) {
	now := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
	reg, err := SampleMarket(func() time.Time { return now })
	if err != nil {
		t.Fatalf("SampleMarket() failed: %v", err)
	}

	if got, want := reg.Len(), len(SampleSymbols); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for _, symbol := range SampleSymbols {
		if reg.Get(symbol) == nil {
			t.Errorf("Get(%s) = nil, want a sample instrument", symbol)
		}
	}

	// ALE's two in-window trades give the documented weighted average.
	if got, want := reg.Get("ALE").Price(gbce.DefaultWindow), decimal.NewFromFloat(21.875); !got.Equal(want) {
		t.Errorf("ALE price = %s, want %s", got, want)
	}

	// GIN has one trade 14 minutes old.
	if got, want := reg.Get("GIN").Price(gbce.DefaultWindow), decimal.NewFromInt(1000); !got.Equal(want) {
		t.Errorf("GIN price = %s, want %s", got, want)
	}

	// JOE has no trades: its price is its par value.
	if got, want := reg.Get("JOE").Price(gbce.DefaultWindow), decimal.NewFromInt(250); !got.Equal(want) {
		t.Errorf("JOE price = %s, want %s", got, want)
	}

	if got := reg.AllShareIndex(gbce.DefaultWindow); got <= 0 {
		t.Errorf("AllShareIndex() = %v, want a positive index", got)
	}
}
