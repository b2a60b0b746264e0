// Package denom provides the banknote and coin face values in circulation for ISO-4217 currencies.
//
//	notes := denom.Notes("usd")          // [1 2 5 10 20 50 100]
//	coin, ok := denom.LowestCoin("EUR") // 0.01, true
//	_, ok = denom.Get("XYZ")            // false
//
// All lookups trim and upper-case the code first. Unknown codes are never an error:
// lookups return false or an empty list. Every slice and map handed out is a copy,
// so the built-in table can be shared by any number of goroutines.
package denom

import (
	"github.com/robotomize/denom/internal/strutil"
	"github.com/robotomize/denom/label"
)

//go:generate go run ./tools/denomgen --target .

var defaultTable = newTable(denominations)

// Default returns the built-in table
func Default() *Table {
	return defaultTable
}

// Normalize trims and upper-cases the code and reports whether the result looks like a currency symbol
func Normalize(code string) (label.Symbol, bool) {
	symbol := label.Symbol(strutil.NormalizeCode(code))
	if !symbol.Valid() {
		return "", false
	}

	return symbol, true
}

// Get returns the denominations of the currency from the built-in table
func Get(code string) (Denomination, bool) {
	return defaultTable.Get(code)
}

// Has reports whether the built-in table knows the currency
func Has(code string) bool {
	return defaultTable.Has(code)
}

// Notes returns the banknote values of the currency, or an empty list
func Notes(code string) []float64 {
	return defaultTable.Notes(code)
}

// Coins returns the coin values of the currency, or an empty list
func Coins(code string) []float64 {
	return defaultTable.Coins(code)
}

// Supported returns every currency symbol of the built-in table, sorted
func Supported() []label.Symbol {
	return defaultTable.Supported()
}

// All returns a deep copy of the built-in table
func All() map[label.Symbol]Denomination {
	return defaultTable.All()
}

// WithNotes returns the sorted symbols of currencies issuing banknotes
func WithNotes() []label.Symbol {
	return defaultTable.WithNotes()
}

// WithCoins returns the sorted symbols of currencies issuing coins
func WithCoins() []label.Symbol {
	return defaultTable.WithCoins()
}

func HighestNote(code string) (float64, bool) {
	return defaultTable.HighestNote(code)
}

func LowestNote(code string) (float64, bool) {
	return defaultTable.LowestNote(code)
}

func HighestCoin(code string) (float64, bool) {
	return defaultTable.HighestCoin(code)
}

func LowestCoin(code string) (float64, bool) {
	return defaultTable.LowestCoin(code)
}
