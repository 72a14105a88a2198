package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ferdiebergado/keygen/internal/config"
	"github.com/ferdiebergado/keygen/internal/platform/jwt"
)

const (
	LabelAnonKey        = "ANON_KEY"
	LabelServiceRoleKey = "SERVICE_ROLE_KEY"
)

// Key is a signed token together with the variable name it is stored under.
type Key struct {
	Label string
	Token string
}

type role struct {
	label  string
	claims func() map[string]any
}

var roles = []role{
	{LabelAnonKey, jwt.AnonClaims},
	{LabelServiceRoleKey, jwt.ServiceRoleClaims},
}

type Generator struct {
	signer jwt.Signer
}

func NewGenerator(signer jwt.Signer) *Generator {
	return &Generator{signer: signer}
}

// Keys signs the anonymous and service role claim sets, in that order.
// Either both keys are returned or none.
func (g *Generator) Keys(ctx context.Context) ([]Key, error) {
	keys := make([]Key, 0, len(roles))
	for _, r := range roles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := g.signer.Sign(r.claims())
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", r.label, err)
		}
		keys = append(keys, Key{Label: r.label, Token: token})
	}
	return keys, nil
}

// Run generates both keys with the configured secret and algorithm and writes
// them to out. Nothing is written unless every key was generated and rendered.
func Run(ctx context.Context, opts *config.Options, out io.Writer) error {
	signer, err := jwt.NewGolangJWTSigner(opts.Secret, opts.Algorithm)
	if err != nil {
		return fmt.Errorf("new jwt signer: %w", err)
	}

	keys, err := NewGenerator(signer).Keys(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, keys, opts.Format); err != nil {
		return err
	}

	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("write keys: %w", err)
	}

	slog.Info("Keys generated.", "count", len(keys), "algorithm", opts.Algorithm, "format", opts.Format)
	return nil
}
