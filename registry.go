package gbce

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"
)

// Registry indexes instruments by symbol.
//
// It is an explicit object rather than package state: callers populate it,
// hand it to whoever needs to iterate the market, and independent registries
// can coexist. The registry never creates or deletes instruments on its own.
type Registry struct {
	mu          sync.RWMutex
	instruments map[string]*Instrument
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instruments: make(map[string]*Instrument)}
}

// Add registers an instrument under its symbol. It refuses to replace a known
// symbol: symbols are immutable once created.
func (r *Registry) Add(ins *Instrument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instruments[ins.Symbol()]; ok {
		return fmt.Errorf("instrument %q already registered", ins.Symbol())
	}
	r.instruments[ins.Symbol()] = ins
	return nil
}

// Get returns the instrument registered with this symbol, or nil if unknown.
func (r *Registry) Get(symbol string) *Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.instruments[symbol]
}

// Len returns the number of registered instruments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instruments)
}

// AllInstruments iterates over registered instruments in symbol order.
func (r *Registry) AllInstruments() iter.Seq[*Instrument] {
	return func(yield func(*Instrument) bool) {
		r.mu.RLock()
		symbols := slices.Collect(maps.Keys(r.instruments))
		r.mu.RUnlock()
		slices.Sort(symbols)
		for _, symbol := range symbols {
			if ins := r.Get(symbol); ins != nil {
				if !yield(ins) {
					return
				}
			}
		}
	}
}
