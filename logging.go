package neonstreet

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// logger is shared by every component. It discards output until InitLogger
// or SetLogger is called so library users opt in to diagnostics.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ResolveLogLevel maps a level name to an slog.Level.
func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// InitLogger installs a text logger on stderr at the given level.
func InitLogger(level string) error {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger = slog.New(handler).With("pkg", "neonstreet")
	return nil
}

// SetLogger replaces the package logger. A nil logger restores the silent
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Logger returns the package logger so frontends can share its handler.
func Logger() *slog.Logger {
	return logger
}
