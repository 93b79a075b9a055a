// Package logging bootstraps the slog logger that shape events are emitted
// through: a console handler, plus shipping to a Seq server when SEQ_URL is
// set. Library code never calls this; it exists for pipeline binaries that
// want both sinks without wiring the fan-out themselves.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enabled if any handler is
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// level resolves the minimum level from the DEBUG env toggle
func level() slog.Level {
	if os.Getenv("DEBUG") == "1" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Setup initializes a logger writing to stdout and, when SEQ_URL is set, to
// a Seq server. The returned func flushes and closes the Seq handler; it is
// a no-op for console-only loggers.
func Setup() (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: level()}
	consoleHandler := slog.NewTextHandler(os.Stdout, opts)

	seqURL := os.Getenv("SEQ_URL")
	if seqURL == "" {
		return slog.New(consoleHandler), func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		seqURL,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(opts),
	)
	if seqHandler == nil {
		return slog.New(consoleHandler), func() {}
	}

	multi := &multiHandler{handlers: []slog.Handler{consoleHandler, seqHandler}}
	return slog.New(multi), func() { seqHandler.Close() }
}
