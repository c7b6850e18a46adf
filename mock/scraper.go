package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitechat.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (string, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	return s.ScrapeFn(ctx, url)
}
