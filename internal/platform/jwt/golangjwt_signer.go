package jwt

import (
	"fmt"

	errx "github.com/ferdiebergado/keygen/internal/error"
	"github.com/golang-jwt/jwt/v5"
)

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method *jwt.SigningMethodHMAC
	key    []byte
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates a Signer for the given secret and HMAC algorithm.
// The secret is checked before the algorithm.
func NewGolangJWTSigner(secret, alg string) (Signer, error) {
	if err := CheckSecret(secret); err != nil {
		return nil, err
	}

	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, &errx.SigningError{Alg: alg, Err: errx.ErrUnsupportedAlgorithm}
	}

	return &golangJWTSigner{
		method: method,
		key:    []byte(secret),
	}, nil
}

// Sign encodes exactly the given claims. No registered claims are added, so
// identical inputs always produce the same token.
func (s *golangJWTSigner) Sign(claims map[string]any) (string, error) {
	if len(claims) == 0 {
		return "", &errx.SigningError{Alg: s.method.Alg(), Err: errx.ErrEmptyClaims}
	}

	token := jwt.NewWithClaims(s.method, jwt.MapClaims(claims))
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", &errx.SigningError{Alg: s.method.Alg(), Err: fmt.Errorf("signed string: %w", err)}
	}
	return signedToken, nil
}

// Verify parses and validates a JWT token string and returns its claims.
func (s *golangJWTSigner) Verify(tokenString string) (map[string]any, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unknown claims type: %T", token.Claims)
	}

	return map[string]any(claims), nil
}
