package periodic

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for the table and its helpers.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// LogLevel returns the level controlled by SetVerbose, for use in handlers
// passed to SetLogger.
func LogLevel() slog.Leveler {
	return logLevel
}

// logger is the package logger.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogger replaces the package logger. Nil is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the package logger, for helpers that log alongside the table.
func Logger() *slog.Logger {
	return logger
}
