package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/robotomize/denom/internal/hashio"
	"github.com/robotomize/denom/internal/iso"
)

func TestLoadGen(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected Gen
		err      error
	}{
		{
			name:     "test_defaults",
			args:     []string{"--target", "."},
			expected: Gen{Target: ".", Hash: hashio.NameMD5, LogLevel: "info"},
		},
		{
			name:     "test_all_flags",
			args:     []string{"--target=/tmp/denom", "--hash=sha256", "--log-level=debug"},
			expected: Gen{Target: "/tmp/denom", Hash: hashio.NameSHA256, LogLevel: "debug"},
		},
		{
			name: "test_target_required",
			args: []string{"--hash", "sha1"},
			err:  ErrTargetRequired,
		},
		{
			name: "test_unknown_hash",
			args: []string{"--target", ".", "--hash", "crc32"},
			err:  hashio.ErrUnknownHasher,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadGen(tc.args)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("load: %v", err)
			}

			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("bad config (-want, +got): %s", diff)
			}
		})
	}
}

func TestLoadGen_Env(t *testing.T) {
	t.Setenv("DENOMGEN_TARGET", "/srv/denom")
	t.Setenv("DENOMGEN_LOG_LEVEL", "warn")

	cfg, err := LoadGen(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	expected := Gen{Target: "/srv/denom", Hash: hashio.NameMD5, LogLevel: "warn"}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("bad config (-want, +got): %s", diff)
	}

	cfg, err = LoadGen([]string{"--target", "."})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(".", cfg.Target); diff != "" {
		t.Errorf("flag must take precedence over env (-want, +got): %s", diff)
	}
}

func TestLoadAudit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected Audit
		err      error
	}{
		{
			name: "test_defaults",
			expected: Audit{
				URL:      iso.DefaultURL,
				Timeout:  iso.DefaultRequestTimeout,
				Retries:  iso.DefaultRetryNum,
				Backoff:  iso.DefaultRetryDuration,
				LogLevel: "info",
			},
		},
		{
			name: "test_all_flags",
			args: []string{
				"--url", "http://localhost:8080/list_one.xml",
				"--timeout", "3s",
				"--retries", "5",
				"--backoff", "100ms",
				"--strict",
				"--with-funds",
				"--log-level", "error",
			},
			expected: Audit{
				URL:       "http://localhost:8080/list_one.xml",
				Timeout:   3 * time.Second,
				Retries:   5,
				Backoff:   100 * time.Millisecond,
				Strict:    true,
				WithFunds: true,
				LogLevel:  "error",
			},
		},
		{
			name: "test_invalid_url",
			args: []string{"--url", "list_one.xml"},
			err:  ErrInvalidURL,
		},
		{
			name: "test_invalid_timeout",
			args: []string{"--timeout", "0s"},
			err:  ErrInvalidTimeout,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadAudit(tc.args)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("load: %v", err)
			}

			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("bad config (-want, +got): %s", diff)
			}
		})
	}
}

func TestLoadAudit_Env(t *testing.T) {
	t.Setenv("DENOMAUDIT_STRICT", "true")
	t.Setenv("DENOMAUDIT_RETRIES", "7")
	t.Setenv("DENOMAUDIT_TIMEOUT", "250ms")

	cfg, err := LoadAudit(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Strict {
		t.Errorf("expected strict from env")
	}

	if diff := cmp.Diff(uint64(7), cfg.Retries); diff != "" {
		t.Errorf("bad retries (-want, +got): %s", diff)
	}

	if diff := cmp.Diff(250*time.Millisecond, cfg.Timeout); diff != "" {
		t.Errorf("bad timeout (-want, +got): %s", diff)
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := LoadAudit([]string{"--unknown"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
