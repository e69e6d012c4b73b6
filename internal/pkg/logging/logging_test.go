package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/for-hk/linkup-auth/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run("Level "+tc.name, func(t *testing.T) {
			t.Parallel()

			if got := logging.ParseLevel(tc.name); got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want: %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer

	logging.SetupLogger("development", "DEBUG", &buf)
	slog.Debug("started")
	if out := buf.String(); !strings.Contains(out, "msg=started") {
		t.Errorf("text output = %q, want: it to contain %q", out, "msg=started")
	}

	buf.Reset()
	logging.SetupLogger("production", "INFO", &buf)
	slog.Debug("dropped")
	slog.Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production output is not a single JSON entry: %v (output: %q)", err, buf.String())
	}
	if got, want := entry["msg"], "started"; got != want {
		t.Errorf(`entry["msg"] = %v, want: %v`, got, want)
	}
}
