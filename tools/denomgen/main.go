package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/denom/internal/config"
	"github.com/robotomize/denom/internal/gen"
	"github.com/robotomize/denom/internal/hashio"
	"github.com/robotomize/denom/internal/logging"
)

func main() {
	cfg, err := config.LoadGen(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "denomgen: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger("denomgen", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "denomgen: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := logging.WithLogger(context.Background(), logger)

	hasher, err := hashio.ByName(cfg.Hash)
	if err != nil {
		logger.Fatalf("hasher: %v", err)
	}

	if err := gen.Generate(ctx, cfg.Target, hasher); err != nil {
		var multiErr *multierror.Error
		if !errors.As(err, &multiErr) {
			logger.Fatal(err)
		}

		for _, wrErr := range multiErr.WrappedErrors() {
			if !errors.Is(wrErr, gen.ErrHashingContentEqual) {
				logger.Fatal(multiErr)
			}

			logger.Warn(wrErr)
		}
	}

	logger.Infow("files were completed successfully", "target", cfg.Target)
}
