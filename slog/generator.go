package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingGenerator implements sitechat.TextGenerator.
var _ sitechat.TextGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a TextGenerator with logging.
// When a TokenCounter is set, the prompt's token count is logged too.
type LoggingGenerator struct {
	next    sitechat.TextGenerator
	logger  *slog.Logger
	counter sitechat.TokenCounter
}

// NewLoggingGenerator creates a new LoggingGenerator. counter may be nil.
func NewLoggingGenerator(next sitechat.TextGenerator, logger *slog.Logger, counter sitechat.TokenCounter) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger, counter: counter}
}

// Generate logs the prompt size, candidate count and duration.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (candidates []sitechat.Candidate, err error) {
	attrs := []any{"prompt_bytes", len(prompt)}
	if g.counter != nil {
		if n, cerr := g.counter.CountTokens(ctx, prompt); cerr == nil {
			attrs = append(attrs, "prompt_tokens", n)
		}
	}

	defer func(begin time.Time) {
		g.logger.Debug("generate", append(attrs,
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)...)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
