package jwt

import (
	"strings"

	errx "github.com/ferdiebergado/keygen/internal/error"
)

const (
	// PlaceholderSecret is the value shipped in configuration templates.
	PlaceholderSecret = "YOUR_JWT_SECRET_FROM_STEP_5.1_HERE"

	DefaultAlgorithm = "HS256"
)

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(claims map[string]any) (token string, err error)
	Verify(tokenString string) (map[string]any, error)
}

// CheckSecret rejects secrets that must never be used as key material.
func CheckSecret(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return &errx.ConfigurationError{Field: "secret", Err: errx.ErrEmptySecret}
	}

	if secret == PlaceholderSecret {
		return &errx.ConfigurationError{Field: "secret", Err: errx.ErrPlaceholderSecret}
	}

	return nil
}

// Generate signs claims with secret using the HMAC algorithm alg.
func Generate(secret string, claims map[string]any, alg string) (string, error) {
	signer, err := NewGolangJWTSigner(secret, alg)
	if err != nil {
		return "", err
	}

	return signer.Sign(claims)
}

// Verify parses a token signed by Generate and returns its claims.
func Verify(tokenString, secret, alg string) (map[string]any, error) {
	signer, err := NewGolangJWTSigner(secret, alg)
	if err != nil {
		return nil, err
	}

	return signer.Verify(tokenString)
}
