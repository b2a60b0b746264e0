package gen

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/denom/internal/hashio"
	"github.com/robotomize/denom/internal/logging"
	"go.uber.org/zap"
)

func testContext() context.Context {
	return logging.WithLogger(context.Background(), zap.NewNop().Sugar())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	entries, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(entries) < 170 {
		t.Errorf("expected at least 170 entries, got %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Code >= entries[i].Code {
			t.Fatalf("entries are not sorted: %s before %s", entries[i-1].Code, entries[i].Code)
		}
	}

	for _, entry := range entries {
		if entry.Code != "USD" {
			continue
		}

		expected := Entry{
			Code:  "USD",
			Notes: []float64{1, 2, 5, 10, 20, 50, 100},
			Coins: []float64{0.01, 0.05, 0.1, 0.25},
		}
		if diff := cmp.Diff(expected, entry); diff != "" {
			t.Errorf("bad USD entry (-want, +got): %s", diff)
		}
		return
	}

	t.Errorf("unable find entry: USD")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		entries  []Entry
		expected int
	}{
		{
			name: "test_valid",
			entries: []Entry{
				{Code: "EUR", Notes: []float64{5, 10}, Coins: []float64{0.01}},
				{Code: "XAU"},
			},
		},
		{
			name:     "test_bad_code",
			entries:  []Entry{{Code: "eu"}},
			expected: 1,
		},
		{
			name:     "test_duplicate_code",
			entries:  []Entry{{Code: "EUR"}, {Code: "EUR"}},
			expected: 1,
		},
		{
			name:     "test_unsorted_and_negative",
			entries:  []Entry{{Code: "EUR", Notes: []float64{10, 5}, Coins: []float64{-0.01}}},
			expected: 2,
		},
		{
			name:     "test_not_finite",
			entries:  []Entry{{Code: "EUR", Notes: []float64{math.Inf(1)}}},
			expected: 1,
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

			if !errors.Is(err, ErrInvalidEntry) {
				t.Fatalf("expected %v, got %v", ErrInvalidEntry, err)
			}

			var multiErr *multierror.Error
			if !errors.As(err, &multiErr) {
				t.Fatalf("expected *multierror.Error, got %T", err)
			}

			if diff := cmp.Diff(tc.expected, len(multiErr.WrappedErrors())); diff != "" {
				t.Errorf("bad expected len (-want, +got): %s", diff)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := testContext()

	if err := Generate(ctx, dir, hashio.SHA256()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	table, err := os.ReadFile(filepath.Join(dir, "table_gen.go"))
	if err != nil {
		t.Fatalf("read table: %v", err)
	}

	for _, want := range []string{
		"// Code generated by denomgen. DO NOT EDIT.",
		"package denom",
		`import "github.com/robotomize/denom/label"`,
		"\tlabel.USD: {\n\t\tNotes: []float64{1, 2, 5, 10, 20, 50, 100},\n\t\tCoins: []float64{0.01, 0.05, 0.1, 0.25},\n\t},",
		"\tlabel.XAU: {\n\t\tNotes: []float64{},\n\t\tCoins: []float64{},\n\t},",
		"Notes: []float64{2, 5, 10, 20, 50, 100, 200, 500, 1000000},",
		"Coins: []float64{0.005, 0.01, 0.025, 0.05, 0.1},",
	} {
		if !strings.Contains(string(table), want) {
			t.Errorf("generated table does not contain %q", want)
		}
	}

	symbols, err := os.ReadFile(filepath.Join(dir, "label", "symbol_gen.go"))
	if err != nil {
		t.Fatalf("read symbols: %v", err)
	}

	for _, want := range []string{"package label", "\tUSD Symbol = \"USD\"\n", "\tALL,\n"} {
		if !strings.Contains(string(symbols), want) {
			t.Errorf("generated symbols do not contain %q", want)
		}
	}

	err = Generate(ctx, dir, hashio.SHA256())
	if !errors.Is(err, ErrHashingContentEqual) {
		t.Fatalf("expected %v on unchanged content, got %v", ErrHashingContentEqual, err)
	}

	var multiErr *multierror.Error
	if !errors.As(err, &multiErr) {
		t.Fatalf("expected *multierror.Error, got %T", err)
	}

	if diff := cmp.Diff(2, len(multiErr.WrappedErrors())); diff != "" {
		t.Errorf("bad expected len (-want, +got): %s", diff)
	}
}

func TestGenerate_RewritesChangedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := testContext()
	fileName := filepath.Join(dir, "table_gen.go")

	if err := os.WriteFile(fileName, []byte("package denom\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := Generate(ctx, dir, nil); err != nil {
		t.Fatalf("generate: %v", err)
	}

	b, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("read table: %v", err)
	}

	if !strings.Contains(string(b), "var denominations = map[label.Symbol]Denomination{") {
		t.Errorf("stale table was not rewritten")
	}
}

// Generated sources are committed, so they must match what the generator renders from the assets
func TestGenerate_CommittedFilesUpToDate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := Generate(testContext(), dir, nil); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{"table_gen.go", filepath.Join("label", "symbol_gen.go")} {
		want, err := os.ReadFile(filepath.Join("..", "..", name))
		if err != nil {
			t.Fatalf("read committed %s: %v", name, err)
		}

		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read generated %s: %v", name, err)
		}

		if diff := cmp.Diff(string(want), string(got)); diff != "" {
			t.Errorf("%s is out of date, run go generate (-committed, +generated): %s", name, diff)
		}
	}
}
