package error

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptySecret          = errors.New("secret is empty")
	ErrPlaceholderSecret    = errors.New("secret is still the placeholder value")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrEmptyClaims          = errors.New("claims are empty")
)

// ConfigurationError reports an operator supplied value that cannot be used.
// No token is generated when it is returned.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// SigningError reports a failure of the signing operation itself.
type SigningError struct {
	Alg string
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign with %s: %v", e.Alg, e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

func IsContextError(err error) bool {
	ctxErrs := []error{context.Canceled, context.DeadlineExceeded}
	for _, ctxErr := range ctxErrs {
		if errors.Is(err, ctxErr) {
			return true
		}
	}

	return false
}
