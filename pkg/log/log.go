// Package log provides structured logging for the demo command and the
// estimator packages. It wraps log/slog with a JSON handler that extracts
// cockroachdb/errors stacktraces into a dedicated attribute, and bridges the
// pkg/errors warning system to zerolog.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

const (
	// ErrAttrKey is the attribute key used for error values.
	ErrAttrKey = "error"
	// StacktraceAttrKey is the attribute key the handler fills with the
	// stacktrace extracted from a cockroachdb error.
	StacktraceAttrKey = "stacktrace"
)

// Setup installs the default slog logger. Logs go to stderr so that the
// report printed by the demo command stays alone on stdout.
func Setup(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     toLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	slog.SetDefault(slog.New(wrapByErrFmtHandler(handler)))
}

func toLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// errFmtHandler is a slog handler to format stacktrace from cockroachdb/errors.
type errFmtHandler struct {
	handler slog.Handler
}

// wrapByErrFmtHandler wraps the standard slog handler so that records carrying
// an error attribute also emit a stacktrace attribute.
func wrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &errFmtHandler{
		handler: handler,
	}
}

func (eh *errFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *errFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			err, ok := attr.Value.Any().(error)
			if ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *errFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *errFmtHandler) WithGroup(g string) slog.Handler {
	return &errFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
