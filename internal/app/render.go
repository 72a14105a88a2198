package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ferdiebergado/keygen/internal/config"
	errx "github.com/ferdiebergado/keygen/internal/error"
	"github.com/ferdiebergado/keygen/internal/pkg/message"
)

// Render writes keys to w in the given format.
//
// The text format labels each token on its own line for manual copying:
//
//	--- YOUR GENERATED KEYS ---
//
//	[ANON_KEY]
//	eyJ...
//
// The env format writes LABEL=token lines that can be appended to a .env file.
func Render(w io.Writer, keys []Key, format string) error {
	bw := bufio.NewWriter(w)

	switch format {
	case config.FormatText:
		fmt.Fprintf(bw, "\n%s\n", message.KeysHeader)
		for _, k := range keys {
			fmt.Fprintf(bw, "\n[%s]\n%s\n", k.Label, k.Token)
		}
		fmt.Fprintf(bw, "\n%s\n\n", message.CopyInstruction)
	case config.FormatEnv:
		for _, k := range keys {
			fmt.Fprintf(bw, "%s=%s\n", k.Label, k.Token)
		}
	default:
		return &errx.ConfigurationError{Field: "format", Reason: fmt.Sprintf("unknown output format %q", format)}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
