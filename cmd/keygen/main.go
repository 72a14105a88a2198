// Command keygen prints the anonymous and service role API keys signed with a
// project's JWT secret, ready to be copied into a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/keygen/internal/app"
	"github.com/ferdiebergado/keygen/internal/config"
	errx "github.com/ferdiebergado/keygen/internal/error"
	"github.com/ferdiebergado/keygen/internal/pkg/env"
	"github.com/ferdiebergado/keygen/internal/pkg/logging"
)

func main() {
	logging.SetupLogger(env.Env("ENV", "development"), env.Env("LOG_LEVEL", "info"), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errx.IsContextError(err) {
			slog.Warn("Key generation cancelled.")
		} else {
			slog.Error("Key generation failed.", "reason", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	secret := fs.String("secret", "", "JWT secret used to sign the keys (default $JWT_SECRET)")
	alg := fs.String("alg", "", "HMAC algorithm: HS256, HS384 or HS512 (default $JWT_ALGORITHM or HS256)")
	format := fs.String("format", "", "output format: text or env (default $OUTPUT_FORMAT or text)")
	envFile := fs.String("env-file", config.DefaultEnvFile, "env file to load outside production, skipped when missing")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parse flags: %w", err)
	}

	opts, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags given on the command line win, even when empty.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "secret":
			opts.Secret = *secret
		case "alg":
			opts.Algorithm = *alg
		case "format":
			opts.Format = *format
		}
	})

	logging.SetupLogger(opts.Env, opts.LogLevel, stderr)
	slog.Debug("Options resolved.", slog.Any("config", opts))

	v, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("new validator: %w", err)
	}

	if err := opts.Validate(v); err != nil {
		return err
	}

	return app.Run(ctx, opts, stdout)
}
