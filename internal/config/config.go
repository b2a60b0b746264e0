package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robotomize/denom/internal/hashio"
	"github.com/robotomize/denom/internal/iso"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	GenEnvPrefix   = "DENOMGEN"
	AuditEnvPrefix = "DENOMAUDIT"
)

var (
	ErrTargetRequired = errors.New("target path is required")
	ErrInvalidURL     = errors.New("invalid registry url")
	ErrInvalidTimeout = errors.New("timeout must be positive")
)

// Gen configures the table generator
type Gen struct {
	Target   string
	Hash     string
	LogLevel string
}

// Audit configures the registry audit
type Audit struct {
	URL       string
	Timeout   time.Duration
	Retries   uint64
	Backoff   time.Duration
	Strict    bool
	WithFunds bool
	LogLevel  string
}

// LoadGen parses generator flags; unset flags fall back to DENOMGEN_* environment variables
func LoadGen(args []string) (Gen, error) {
	fs := pflag.NewFlagSet("denomgen", pflag.ContinueOnError)
	fs.String("target", "", "path to the module root that receives the generated files")
	fs.String("hash", hashio.NameMD5, "hash alg for compare files, variants: md5, sha1, sha256")
	fs.String("log-level", "info", "log level: debug, info, warn, error")

	v, err := load(fs, GenEnvPrefix, args)
	if err != nil {
		return Gen{}, err
	}

	cfg := Gen{
		Target:   strings.TrimSpace(v.GetString("target")),
		Hash:     v.GetString("hash"),
		LogLevel: v.GetString("log-level"),
	}

	if cfg.Target == "" {
		return Gen{}, ErrTargetRequired
	}

	if _, err := hashio.ByName(cfg.Hash); err != nil {
		return Gen{}, fmt.Errorf("hash: %w", err)
	}

	return cfg, nil
}

// LoadAudit parses audit flags; unset flags fall back to DENOMAUDIT_* environment variables
func LoadAudit(args []string) (Audit, error) {
	fs := pflag.NewFlagSet("denomaudit", pflag.ContinueOnError)
	fs.String("url", iso.DefaultURL, "url of the ISO 4217 list_one.xml document")
	fs.Duration("timeout", iso.DefaultRequestTimeout, "timeout of a single download attempt")
	fs.Uint64("retries", iso.DefaultRetryNum, "number of repeated downloads on failure")
	fs.Duration("backoff", iso.DefaultRetryDuration, "pause between repeated downloads")
	fs.Bool("strict", false, "exit with a non-zero code when registry codes are missing from the table")
	fs.Bool("with-funds", false, "include fund codes (e.g. USN, CLF) in the comparison")
	fs.String("log-level", "info", "log level: debug, info, warn, error")

	v, err := load(fs, AuditEnvPrefix, args)
	if err != nil {
		return Audit{}, err
	}

	cfg := Audit{
		URL:       strings.TrimSpace(v.GetString("url")),
		Timeout:   v.GetDuration("timeout"),
		Retries:   v.GetUint64("retries"),
		Backoff:   v.GetDuration("backoff"),
		Strict:    v.GetBool("strict"),
		WithFunds: v.GetBool("with-funds"),
		LogLevel:  v.GetString("log-level"),
	}

	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Audit{}, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.URL)
	}

	if cfg.Timeout <= 0 {
		return Audit{}, ErrInvalidTimeout
	}

	return cfg, nil
}

func load(fs *pflag.FlagSet, prefix string, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("flag parse: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}
