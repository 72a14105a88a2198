package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/keygen/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		given string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.given, func(t *testing.T) {
			t.Parallel()

			if got := logging.ParseLevel(tc.given); got != tc.want {
				t.Errorf("logging.ParseLevel(%q) = %v, want: %v", tc.given, got, tc.want)
			}
		})
	}
}

func TestNewLogger_Production(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewLogger("production", "info", &buf)
	logger.Info("Keys generated.", "count", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production log line is not json: %q: %v", buf.String(), err)
	}

	if entry["msg"] != "Keys generated." {
		t.Errorf("entry[msg] = %v, want: %q", entry["msg"], "Keys generated.")
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewLogger("development", "error", &buf)
	logger.Info("hidden")
	logger.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at error level: %q", out)
	}

	if !strings.Contains(out, "msg=shown") {
		t.Errorf("error message missing from text output: %q", out)
	}
}
