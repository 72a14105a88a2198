package error_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errx "github.com/ferdiebergado/keygen/internal/error"
)

func TestConfigurationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *errx.ConfigurationError
		wantMsg string
	}{
		{"With reason", &errx.ConfigurationError{Field: "format", Reason: "must be one of text env"}, "invalid format: must be one of text env"},
		{"Without reason", &errx.ConfigurationError{Field: "secret", Err: errx.ErrEmptySecret}, "invalid secret: secret is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("err.Error() = %q, want: %q", got, tt.wantMsg)
			}
		})
	}
}

func TestConfigurationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", &errx.ConfigurationError{Field: "secret", Err: errx.ErrPlaceholderSecret})

	if !errors.Is(err, errx.ErrPlaceholderSecret) {
		t.Errorf("errors.Is(err, ErrPlaceholderSecret) = false, want: true")
	}

	var cfgErr *errx.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("errors.As(err, &cfgErr) = false, want: true")
	}

	if cfgErr.Field != "secret" {
		t.Errorf("cfgErr.Field = %q, want: %q", cfgErr.Field, "secret")
	}
}

func TestSigningError(t *testing.T) {
	t.Parallel()

	err := &errx.SigningError{Alg: "RS256", Err: errx.ErrUnsupportedAlgorithm}

	const wantMsg = "sign with RS256: unsupported signing algorithm"
	if got := err.Error(); got != wantMsg {
		t.Errorf("err.Error() = %q, want: %q", got, wantMsg)
	}

	if !errors.Is(err, errx.ErrUnsupportedAlgorithm) {
		t.Errorf("errors.Is(err, ErrUnsupportedAlgorithm) = false, want: true")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Canceled", context.Canceled, true},
		{"Deadline exceeded", fmt.Errorf("run: %w", context.DeadlineExceeded), true},
		{"Other error", errx.ErrEmptyClaims, false},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errx.IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %t, want: %t", tt.err, got, tt.want)
			}
		})
	}
}
