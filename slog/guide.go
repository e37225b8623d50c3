package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/campusguide"
)

// Ensure LoggingGuide implements campusguide.Guide.
var _ campusguide.Guide = (*LoggingGuide)(nil)

// LoggingGuide wraps a Guide with logging. Questions and answers are logged
// by length only.
type LoggingGuide struct {
	next   campusguide.Guide
	logger *slog.Logger
}

// NewLoggingGuide creates a new LoggingGuide.
func NewLoggingGuide(next campusguide.Guide, logger *slog.Logger) *LoggingGuide {
	return &LoggingGuide{next: next, logger: logger}
}

// Ask delegates to the wrapped guide and logs the operation.
func (g *LoggingGuide) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("guide ask",
			"question_len", len(question),
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Ask(ctx, question)
}
