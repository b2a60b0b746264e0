package denom

import (
	"fmt"

	"github.com/robotomize/denom/label"
)

// Table is an immutable mapping from currency symbol to its denominations.
// A Table is safe for concurrent use: it has no writers after construction
// and every value it returns is a copy
type Table struct {
	items map[label.Symbol]Denomination

	supported []label.Symbol
	withNotes []label.Symbol
	withCoins []label.Symbol
}

// NewTable validates entries and returns a table holding a deep copy of them
func NewTable(entries map[label.Symbol]Denomination) (*Table, error) {
	if err := Validate(entries); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return newTable(entries), nil
}

func newTable(entries map[label.Symbol]Denomination) *Table {
	items := make(map[label.Symbol]Denomination, len(entries))
	for symbol, d := range entries {
		items[symbol] = d.clone()
	}

	return &Table{
		items:     items,
		supported: sortedSymbols(items, nil),
		withNotes: sortedSymbols(items, func(d Denomination) bool {
			return len(d.Notes) > 0
		}),
		withCoins: sortedSymbols(items, func(d Denomination) bool {
			return len(d.Coins) > 0
		}),
	}
}

// Len returns the number of currencies in the table
func (t *Table) Len() int {
	return len(t.items)
}

// Get returns the denominations of the currency. The code is trimmed and upper-cased before lookup.
// The second value is false when the code is empty or unknown
func (t *Table) Get(code string) (Denomination, bool) {
	d, ok := t.lookup(code)
	if !ok {
		return Denomination{}, false
	}

	return d.clone(), true
}

// Has reports whether the table has an entry for the code
func (t *Table) Has(code string) bool {
	_, ok := t.lookup(code)
	return ok
}

// Notes returns the banknote values of the currency or an empty list if the code is unknown
func (t *Table) Notes(code string) []float64 {
	d, _ := t.lookup(code)
	return cloneValues(d.Notes)
}

// Coins returns the coin values of the currency or an empty list if the code is unknown
func (t *Table) Coins(code string) []float64 {
	d, _ := t.lookup(code)
	return cloneValues(d.Coins)
}

// Supported returns all currency symbols of the table in lexicographic order
func (t *Table) Supported() []label.Symbol {
	return cloneSymbols(t.supported)
}

// WithNotes returns the symbols of currencies that have at least one banknote, sorted
func (t *Table) WithNotes() []label.Symbol {
	return cloneSymbols(t.withNotes)
}

// WithCoins returns the symbols of currencies that have at least one coin, sorted
func (t *Table) WithCoins() []label.Symbol {
	return cloneSymbols(t.withCoins)
}

// All returns a deep copy of the table. Changing the result does not affect the table
func (t *Table) All() map[label.Symbol]Denomination {
	all := make(map[label.Symbol]Denomination, len(t.items))
	for symbol, d := range t.items {
		all[symbol] = d.clone()
	}

	return all
}

// HighestNote returns the largest banknote of the currency.
// The second value is false when the code is unknown or the currency has no notes
func (t *Table) HighestNote(code string) (float64, bool) {
	d, _ := t.lookup(code)
	return highest(d.Notes)
}

// LowestNote returns the smallest banknote of the currency
func (t *Table) LowestNote(code string) (float64, bool) {
	d, _ := t.lookup(code)
	return lowest(d.Notes)
}

// HighestCoin returns the largest coin of the currency
func (t *Table) HighestCoin(code string) (float64, bool) {
	d, _ := t.lookup(code)
	return highest(d.Coins)
}

// LowestCoin returns the smallest coin of the currency
func (t *Table) LowestCoin(code string) (float64, bool) {
	d, _ := t.lookup(code)
	return lowest(d.Coins)
}

// lookup returns the internal record without copying, callers must not leak it
func (t *Table) lookup(code string) (Denomination, bool) {
	symbol, ok := Normalize(code)
	if !ok {
		return Denomination{}, false
	}

	d, ok := t.items[symbol]

	return d, ok
}

func cloneSymbols(symbols []label.Symbol) []label.Symbol {
	list := make([]label.Symbol, len(symbols))
	copy(list, symbols)

	return list
}
