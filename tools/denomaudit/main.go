package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/robotomize/denom"
	"github.com/robotomize/denom/internal/audit"
	"github.com/robotomize/denom/internal/config"
	"github.com/robotomize/denom/internal/httputil"
	"github.com/robotomize/denom/internal/iso"
	"github.com/robotomize/denom/internal/logging"
)

func main() {
	cfg, err := config.LoadAudit(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "denomaudit: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger("denomaudit", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "denomaudit: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithLogger(ctx, logger)

	code := realMain(ctx, cfg)

	stop()
	_ = logger.Sync()

	os.Exit(code)
}

func realMain(ctx context.Context, cfg config.Audit) int {
	logger := logging.FromContext(ctx)

	u, err := url.Parse(cfg.URL)
	if err != nil {
		logger.Errorf("url parse: %v", err)
		return 1
	}

	source := iso.NewSource(
		httputil.DefaultClient(),
		*u,
		iso.WithRetryNum(cfg.Retries),
		iso.WithRetryDuration(cfg.Backoff),
		iso.WithRequestTimeout(cfg.Timeout),
	)

	report, err := audit.Compare(ctx, source, denom.Supported(), cfg.WithFunds)
	if err != nil {
		logger.Errorf("audit: %v", err)
		return 1
	}

	logger.Infow("registry compared",
		"published", report.Published,
		"supported", len(denom.Supported()),
		"missing", len(report.Missing),
		"extra", len(report.Extra),
	)

	for _, symbol := range report.Missing {
		logger.Warnw("registry code missing from the table", "code", symbol)
	}

	for _, symbol := range report.Extra {
		logger.Infow("table code not listed in the registry", "code", symbol)
	}

	if cfg.Strict && len(report.Missing) > 0 {
		return 1
	}

	return 0
}
