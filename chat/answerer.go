// Package chat implements the question-answering session: an Answerer that
// turns (website context, query) pairs into answers, and a Conversation
// that drives it from interactive input.
package chat

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitechat"
)

// DefaultGenerateTimeout bounds each call to the text-generation endpoint.
const DefaultGenerateTimeout = 30 * time.Second

// Ensure Answerer implements sitechat.Answerer at compile time.
var _ sitechat.Answerer = (*Answerer)(nil)

// Answerer implements sitechat.Answerer by prompting a TextGenerator and
// caching the cleaned-up answers.
type Answerer struct {
	generator sitechat.TextGenerator
	cache     sitechat.ResponseCache
	logger    *slog.Logger
	timeout   time.Duration
}

// AnswererOption configures an Answerer.
type AnswererOption func(*Answerer)

// WithGenerateTimeout sets the timeout for each generation call.
// Defaults to DefaultGenerateTimeout (30s) if not specified.
func WithGenerateTimeout(d time.Duration) AnswererOption {
	return func(a *Answerer) {
		a.timeout = d
	}
}

// WithLogger sets the logger used for notices and failure diagnostics.
func WithLogger(logger *slog.Logger) AnswererOption {
	return func(a *Answerer) {
		a.logger = logger
	}
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(generator sitechat.TextGenerator, cache sitechat.ResponseCache, opts ...AnswererOption) *Answerer {
	a := &Answerer{
		generator: generator,
		cache:     cache,
		logger:    slog.New(slog.DiscardHandler),
		timeout:   DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer returns a cached answer when one exists, otherwise generates one.
// Generation failures are logged and answered with sitechat.FallbackAnswer;
// nothing is cached for them.
func (a *Answerer) Answer(ctx context.Context, websiteContext, query string) (string, error) {
	if a.generator == nil || a.cache == nil {
		return "", sitechat.Errorf(sitechat.EINTERNAL, "answerer is not configured")
	}

	key := sitechat.NewCacheKey(websiteContext, query)
	if answer, ok := a.cache.Lookup(key); ok {
		a.logger.Info("using cached response", "query", query)
		return answer, nil
	}

	a.logger.Info("generating response", "query", query)
	answer, err := a.generate(ctx, websiteContext, query)
	if err != nil {
		a.logger.Error("response generation failed",
			"query", query,
			"context_hash", ContextHash(websiteContext),
			"err", err,
		)
		return sitechat.FallbackAnswer(websiteContext), nil
	}

	a.cache.Store(key, answer)
	return answer, nil
}

func (a *Answerer) generate(ctx context.Context, websiteContext, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	candidates, err := a.generator.Generate(ctx, sitechat.BuildPrompt(websiteContext, query))
	if err != nil {
		return "", err
	}
	return sitechat.ExtractAnswer(sitechat.FirstGeneratedText(candidates))
}

// ContextHash returns a short, stable digest of a website context for logs.
func ContextHash(websiteContext string) string {
	return strconv.FormatUint(xxhash.Sum64String(websiteContext), 16)
}
