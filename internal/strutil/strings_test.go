package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "test_not_modifying_upper",
			source: "USD",
			want:   "USD",
		},
		{
			name:   "test_lower",
			source: "eur",
			want:   "EUR",
		},
		{
			name:   "test_mixed_case",
			source: "gBp",
			want:   "GBP",
		},
		{
			name:   "test_outer_spaces",
			source: "   usd   ",
			want:   "USD",
		},
		{
			name: "test_outer_tabs_newlines",
			source: "	jpy\n",
			want: "JPY",
		},
		{
			name:   "test_inner_space_kept",
			source: " u sd ",
			want:   "U SD",
		},
		{
			name:   "test_empty",
			source: "",
			want:   "",
		},
		{
			name:   "test_whitespace_only",
			source: " \t\n ",
			want:   "",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeCode(test.source)
			if got != test.want {
				diff := cmp.Diff(test.want, got)
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source float64
		want   string
	}{
		{
			name:   "test_integer",
			source: 100,
			want:   "100",
		},
		{
			name:   "test_cent",
			source: 0.01,
			want:   "0.01",
		},
		{
			name:   "test_mill",
			source: 0.005,
			want:   "0.005",
		},
		{
			name:   "test_fraction",
			source: 2.5,
			want:   "2.5",
		},
		{
			name:   "test_large_without_exponent",
			source: 1000000,
			want:   "1000000",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := FormatFloat(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestJoinFloats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		source []float64
		want   string
	}{
		{
			name:   "test_empty",
			source: nil,
			want:   "",
		},
		{
			name:   "test_single",
			source: []float64{0.25},
			want:   "0.25",
		},
		{
			name:   "test_usd_coins",
			source: []float64{0.01, 0.05, 0.1, 0.25},
			want:   "0.01, 0.05, 0.1, 0.25",
		},
	}

	for _, test := range testCases {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := JoinFloats(test.source)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
