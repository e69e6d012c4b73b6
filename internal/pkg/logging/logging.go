package logging

import (
	"io"
	"log/slog"
	"strings"
)

var levelNames = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// SetupLogger installs the process-wide slog default: text output for local
// work, JSON once the service runs in production.
func SetupLogger(appEnv, logLevel string, out io.Writer) {
	opts := &slog.HandlerOptions{Level: ParseLevel(logLevel)}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a level name to its slog level, case-insensitively.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	if lvl, ok := levelNames[strings.ToUpper(name)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
