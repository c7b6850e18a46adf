package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingScraper implements sitechat.Scraper.
var _ sitechat.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   sitechat.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next sitechat.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the scraped URL and the size of its text.
// Failures are logged at Error level since they end the session.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (text string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "scrape",
			"url", url,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
