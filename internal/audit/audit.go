package audit

import (
	"context"
	"fmt"
	"sort"

	"github.com/robotomize/denom/internal/iso"
	"github.com/robotomize/denom/label"
)

// Report is the difference between the ISO 4217 registry and a set of supported symbols
type Report struct {
	Published string
	// Missing holds codes active in the registry but absent from the table
	Missing []label.Symbol
	// Extra holds table codes the registry no longer lists
	Extra []label.Symbol
}

// Clean reports whether the table and the registry agree
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Compare fetches the registry from src and compares its codes with supported
func Compare(ctx context.Context, src iso.Source, supported []label.Symbol, withFunds bool) (Report, error) {
	registry, err := src.FetchRegistry(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("fetch registry: %w", err)
	}

	return Diff(registry, supported, withFunds), nil
}

// Diff compares an already fetched registry with supported
func Diff(registry iso.Registry, supported []label.Symbol, withFunds bool) Report {
	active := make(map[label.Symbol]struct{})
	for _, symbol := range registry.Codes(withFunds) {
		active[symbol] = struct{}{}
	}

	known := make(map[label.Symbol]struct{}, len(supported))
	for _, symbol := range supported {
		known[symbol] = struct{}{}
	}

	report := Report{
		Published: registry.Published,
		Missing:   make([]label.Symbol, 0),
		Extra:     make([]label.Symbol, 0),
	}

	for symbol := range active {
		if _, ok := known[symbol]; !ok {
			report.Missing = append(report.Missing, symbol)
		}
	}

	for symbol := range known {
		if _, ok := active[symbol]; !ok {
			report.Extra = append(report.Extra, symbol)
		}
	}

	sortSymbols(report.Missing)
	sortSymbols(report.Extra)

	return report
}

func sortSymbols(list []label.Symbol) {
	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})
}
