package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	errx "github.com/ferdiebergado/keygen/internal/error"
	pkgenv "github.com/ferdiebergado/keygen/internal/pkg/env"
	"github.com/ferdiebergado/keygen/internal/pkg/message"
	"github.com/ferdiebergado/keygen/internal/platform/jwt"
	"github.com/ferdiebergado/keygen/internal/platform/validation"
	"github.com/joho/godotenv"
)

const (
	FormatText = "text"
	FormatEnv  = "env"

	DefaultEnvFile = ".env"

	envProduction = "production"
	ruleJWTSecret = "jwtsecret"
	fieldSecret   = "secret"
)

type Options struct {
	Secret    string `json:"secret" env:"JWT_SECRET" validate:"required,jwtsecret"`
	Algorithm string `json:"algorithm" env:"JWT_ALGORITHM" validate:"required,oneof=HS256 HS384 HS512"`
	Format    string `json:"format" env:"OUTPUT_FORMAT" validate:"required,oneof=text env"`
	Env       string `json:"env" env:"ENV"`
	LogLevel  string `json:"log_level" env:"LOG_LEVEL"`
}

// LogValue never exposes the secret.
func (o *Options) LogValue() slog.Value {
	secret := "[unset]"
	if o.Secret != "" {
		secret = "[redacted]"
	}

	return slog.GroupValue(
		slog.String("secret", secret),
		slog.String("algorithm", o.Algorithm),
		slog.String("format", o.Format),
		slog.String("env", o.Env),
		slog.String("log_level", o.LogLevel),
	)
}

func Default() *Options {
	return &Options{
		Algorithm: jwt.DefaultAlgorithm,
		Format:    FormatText,
		Env:       "development",
		LogLevel:  "info",
	}
}

// Load returns the defaults overridden by the environment. Outside production,
// envFile is loaded into the environment first when it exists. Variables
// already set in the environment take precedence over the file.
func Load(envFile string) (*Options, error) {
	if os.Getenv("ENV") != envProduction && envFile != "" {
		if err := loadEnvFile(envFile); err != nil {
			return nil, err
		}
	}

	opts := Default()
	if err := pkgenv.OverrideStruct(opts); err != nil {
		return nil, fmt.Errorf("override options with env: %w", err)
	}

	slog.Debug("Config loaded.", slog.Any("config", opts))
	return opts, nil
}

func loadEnvFile(envFile string) error {
	envFile = filepath.Clean(envFile)
	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Env file not found, skipping.", "file", envFile)
			return nil
		}
		return fmt.Errorf("stat env file %s: %w", envFile, err)
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	return nil
}

// NewValidator returns a validator that knows the jwtsecret rule used by Options.
func NewValidator() (*validation.GoPlaygroundValidator, error) {
	v := validation.NewGoPlaygroundValidator()
	err := v.RegisterStringRule(ruleJWTSecret, message.SecretInvalid, func(s string) bool {
		return jwt.CheckSecret(s) == nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Validate reports the first invalid field, in field name order, as a
// *errx.ConfigurationError.
func (o *Options) Validate(v validation.Validator) error {
	errs := v.ValidateStruct(o)
	if len(errs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	field := fields[0]
	if field == fieldSecret {
		if err := jwt.CheckSecret(o.Secret); err != nil {
			return err
		}
	}

	return &errx.ConfigurationError{Field: field, Reason: errs[field]}
}
