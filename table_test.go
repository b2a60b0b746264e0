package denom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/denom/label"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		entries  map[label.Symbol]Denomination
		errs     []error
		expected int
	}{
		{
			name:    "test_valid",
			entries: map[label.Symbol]Denomination{label.USD: usdDenomination, label.XAU: {}},
		},
		{
			name:    "test_nil",
			entries: nil,
		},
		{
			name: "test_lower_symbol",
			entries: map[label.Symbol]Denomination{
				"usd": usdDenomination,
			},
			errs:     []error{ErrInvalidSymbol},
			expected: 1,
		},
		{
			name: "test_unsorted_notes",
			entries: map[label.Symbol]Denomination{
				label.USD: {Notes: []float64{1, 5, 2}},
			},
			errs:     []error{ErrInvalidDenomination},
			expected: 1,
		},
		{
			name: "test_duplicate_coin",
			entries: map[label.Symbol]Denomination{
				label.USD: {Coins: []float64{0.01, 0.01}},
			},
			errs:     []error{ErrInvalidDenomination},
			expected: 1,
		},
		{
			name: "test_negative_and_zero",
			entries: map[label.Symbol]Denomination{
				label.USD: {Notes: []float64{-1}, Coins: []float64{0}},
			},
			errs:     []error{ErrInvalidDenomination},
			expected: 2,
		},
		{
			name: "test_not_finite",
			entries: map[label.Symbol]Denomination{
				label.USD: {Notes: []float64{math.NaN()}},
				label.EUR: {Coins: []float64{1, math.Inf(1)}},
			},
			errs:     []error{ErrInvalidDenomination},
			expected: 2,
		},
		{
			name: "test_all_violations_collected",
			entries: map[label.Symbol]Denomination{
				"US":      usdDenomination,
				label.EUR: {Notes: []float64{10, 5}},
			},
			errs:     []error{ErrInvalidSymbol, ErrInvalidDenomination},
			expected: 2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.entries)
			if tc.expected == 0 {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}

			var multiErr *multierror.Error
			if !errors.As(err, &multiErr) {
				t.Fatalf("expected *multierror.Error, got %T: %v", err, err)
			}

			if diff := cmp.Diff(tc.expected, len(multiErr.WrappedErrors())); diff != "" {
				t.Errorf("bad expected len (-want, +got): %s", diff)
			}

			for _, e := range tc.errs {
				if !errors.Is(err, e) {
					t.Errorf("expected error %v in %v", e, err)
				}
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	entries := map[label.Symbol]Denomination{
		label.USD: usdDenomination.clone(),
		label.PAB: {Coins: []float64{0.01, 0.05}},
		label.XAU: {},
	}

	table, err := NewTable(entries)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	entries[label.USD].Notes[0] = 99
	entries[label.EUR] = eurDenomination

	if diff := cmp.Diff(3, table.Len()); diff != "" {
		t.Errorf("bad expected len (-want, +got): %s", diff)
	}

	if diff := cmp.Diff(usdDenomination.Notes, table.Notes("usd")); diff != "" {
		t.Errorf("table changed through source map (-want, +got): %s", diff)
	}

	if table.Has("EUR") {
		t.Errorf("table keys changed through source map")
	}

	if diff := cmp.Diff([]label.Symbol{label.PAB, label.USD, label.XAU}, table.Supported()); diff != "" {
		t.Errorf("bad supported (-want, +got): %s", diff)
	}

	if diff := cmp.Diff([]label.Symbol{label.USD}, table.WithNotes()); diff != "" {
		t.Errorf("bad with notes (-want, +got): %s", diff)
	}

	if diff := cmp.Diff([]label.Symbol{label.PAB, label.USD}, table.WithCoins()); diff != "" {
		t.Errorf("bad with coins (-want, +got): %s", diff)
	}

	if v, ok := table.HighestCoin("pab"); !ok || v != 0.05 {
		t.Errorf("bad highest coin: got %v, %t", v, ok)
	}

	if _, ok := table.LowestNote("PAB"); ok {
		t.Errorf("expected no notes for PAB")
	}
}

func TestNewTable_Invalid(t *testing.T) {
	t.Parallel()

	table, err := NewTable(map[label.Symbol]Denomination{
		label.USD: {Notes: []float64{5, 1}},
	})
	if err == nil {
		t.Fatalf("expected error, got table with %d entries", table.Len())
	}

	if !errors.Is(err, ErrInvalidDenomination) {
		t.Errorf("expected %v, got %v", ErrInvalidDenomination, err)
	}

	if table != nil {
		t.Errorf("expected nil table")
	}
}

func TestNewTable_Empty(t *testing.T) {
	t.Parallel()

	table, err := NewTable(nil)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	if table.Len() != 0 || len(table.Supported()) != 0 || len(table.All()) != 0 {
		t.Errorf("expected empty table")
	}

	if table.Supported() == nil {
		t.Errorf("expected empty, non-nil symbol list")
	}

	if _, ok := table.Get("USD"); ok {
		t.Errorf("unexpected entry in empty table")
	}
}
