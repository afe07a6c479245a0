package gbce

import (
	"slices"
	"testing"
)

func TestRegistry_AddGet(t *testing.T) {
	reg := NewRegistry()
	ale := newTestCommon(t, "ALE", 23, 60)

	if err := reg.Add(ale); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := reg.Get("ALE"); got != ale {
		t.Errorf("Get(ALE) = %v, want the registered instrument", got)
	}
	if got := reg.Get("TEA"); got != nil {
		t.Errorf("Get(TEA) = %v, want nil for an unknown symbol", got)
	}
	if got := reg.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestRegistry_AddDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(newTestCommon(t, "ALE", 23, 60)); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := reg.Add(newTestCommon(t, "ALE", 0, 0)); err == nil {
		t.Error("Add() of a duplicate symbol expected an error, got nil")
	}
	if got := reg.Get("ALE").LastDividend(); got != 23 {
		t.Errorf("duplicate Add() replaced the instrument: LastDividend() = %s", got)
	}
}

func TestRegistry_AllInstruments(t *testing.T) {
	reg := NewRegistry()
	for _, symbol := range []string{"POP", "ALE", "TEA"} {
		if err := reg.Add(newTestCommon(t, symbol, 0, 100)); err != nil {
			t.Fatalf("Add(%s) failed: %v", symbol, err)
		}
	}

	var symbols []string
	for ins := range reg.AllInstruments() {
		symbols = append(symbols, ins.Symbol())
	}
	want := []string{"ALE", "POP", "TEA"}
	if !slices.Equal(symbols, want) {
		t.Errorf("AllInstruments() order = %v, want %v", symbols, want)
	}

	// Early break must not panic or leak.
	for range reg.AllInstruments() {
		break
	}
}
