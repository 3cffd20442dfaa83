package errors

import (
	"context"
	"log/slog"
)

// LogHandler is an ErrorHandler that writes through a structured logger.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose includes stack traces for recovered panics.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs an absorbed condition. Degenerate input is expected in
// normal operation, so it is logged at debug level; config errors at warn.
func (h *LogHandler) HandleError(err *OverlayError) {
	if err == nil {
		return
	}
	level := slog.LevelDebug
	if err.Kind == KindConfig || err.Kind == KindAnimation {
		level = slog.LevelWarn
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Widget != "" {
		attrs = append(attrs, "widget", err.Widget)
	}
	h.logger().Log(context.Background(), level, "overlay condition absorbed", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("overlay panic recovered", attrs...)
}
