package denom

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/denom/label"
)

var (
	ErrInvalidSymbol       = errors.New("currency symbol must be three uppercase letters")
	ErrInvalidDenomination = errors.New("denomination values are not valid")
)

// Validate checks every entry of the table and returns all violations at once.
// A valid table has three-letter uppercase symbols, and notes and coins that are finite,
// positive and strictly increasing
func Validate(entries map[label.Symbol]Denomination) error {
	var result *multierror.Error

	for _, symbol := range sortedSymbols(entries, nil) {
		if !symbol.Valid() {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol))
		}

		d := entries[symbol]
		if err := validateValues(d.Notes); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s notes: %w", symbol, err))
		}

		if err := validateValues(d.Coins); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s coins: %w", symbol, err))
		}
	}

	return result.ErrorOrNil()
}

func validateValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %v at %d is not finite", ErrInvalidDenomination, v, i)
		}

		if v <= 0 {
			return fmt.Errorf("%w: value %v at %d is not positive", ErrInvalidDenomination, v, i)
		}

		if i > 0 && values[i-1] >= v {
			return fmt.Errorf("%w: value %v at %d does not follow %v", ErrInvalidDenomination, v, i, values[i-1])
		}
	}

	return nil
}

// sortedSymbols returns the symbols of entries accepted by filter in lexicographic order.
// A nil filter accepts every entry
func sortedSymbols(entries map[label.Symbol]Denomination, filter func(Denomination) bool) []label.Symbol {
	list := make([]label.Symbol, 0, len(entries))
	for symbol, d := range entries {
		if filter != nil && !filter(d) {
			continue
		}

		list = append(list, symbol)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})

	return list
}
