// Package slog provides logging decorators for kursdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hfal/kursdoc"
)

// Ensure LoggingEmbedder implements kursdoc.Embedder.
var _ kursdoc.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with debug logging of call latency.
type LoggingEmbedder struct {
	next   kursdoc.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next kursdoc.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedText delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedText(ctx context.Context, text string) (vec []float32, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("embed text",
			"chars", len(text),
			"dims", len(vec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedText(ctx, text)
}
