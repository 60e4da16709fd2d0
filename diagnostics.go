package sparse

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for the fault diagnostics emitted by sparse sets.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var defaultLogger = NewLogger(nil)

// reportFault logs a contract violation and halts the calling path by panicking with err.
func reportFault(logger *Logger, msg string, err error, attrs ...any) {
	if logger == nil {
		logger = defaultLogger
	}
	logger.Error(msg, append(attrs, "error", err)...)
	panic(err)
}
