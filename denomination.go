package denom

import (
	"github.com/shopspring/decimal"
)

// Denomination holds the face values of the banknotes and coins in circulation for a currency.
// Values are expressed in the major unit of the currency and sorted in ascending order
type Denomination struct {
	Notes []float64
	Coins []float64
}

// Empty reports whether the currency has neither notes nor coins, e.g. XAU or XTS
func (d Denomination) Empty() bool {
	return len(d.Notes) == 0 && len(d.Coins) == 0
}

// NoteDecimals returns banknote values as decimals for exact cash arithmetic
func (d Denomination) NoteDecimals() []decimal.Decimal {
	return toDecimals(d.Notes)
}

// CoinDecimals returns coin values as decimals for exact cash arithmetic
func (d Denomination) CoinDecimals() []decimal.Decimal {
	return toDecimals(d.Coins)
}

func (d Denomination) clone() Denomination {
	return Denomination{
		Notes: cloneValues(d.Notes),
		Coins: cloneValues(d.Coins),
	}
}

// cloneValues always returns a non-nil slice so that "no values" is an empty list for callers
func cloneValues(values []float64) []float64 {
	list := make([]float64, len(values))
	copy(list, values)

	return list
}

func toDecimals(values []float64) []decimal.Decimal {
	list := make([]decimal.Decimal, len(values))
	for i, v := range values {
		list[i] = decimal.NewFromFloat(v)
	}

	return list
}

func highest(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}

	return m, true
}

func lowest(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m, true
}
