package jwt

import (
	"errors"
)

type StubSigner struct {
	SignFunc   func(claims map[string]any) (string, error)
	VerifyFunc func(tokenString string) (map[string]any, error)
}

var _ Signer = (*StubSigner)(nil)

func (s *StubSigner) Sign(claims map[string]any) (string, error) {
	if s.SignFunc == nil {
		return "", errors.New("Sign() not implemented by stub")
	}

	return s.SignFunc(claims)
}

func (s *StubSigner) Verify(tokenString string) (map[string]any, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}

	return s.VerifyFunc(tokenString)
}
