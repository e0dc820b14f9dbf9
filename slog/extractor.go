// Package slog provides logging decorators for catidx interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/catalogix/catidx"
)

// Ensure LoggingExtractor implements catidx.TextExtractor.
var _ catidx.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with per-page logging. Failed or
// empty extractions are logged at warn level, since they degrade the
// page's record without failing the run.
type LoggingExtractor struct {
	next   catidx.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next catidx.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	begin := time.Now()
	text, err := e.next.ExtractText(ctx, path)
	switch {
	case err != nil:
		e.logger.Warn("text extraction failed",
			"path", path,
			"duration", time.Since(begin),
			"error", err,
		)
	case text == "":
		e.logger.Warn("no text extracted",
			"path", path,
			"duration", time.Since(begin),
		)
	default:
		e.logger.Debug("text extracted",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
		)
	}
	return text, err
}
