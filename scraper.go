package sitechat

import "context"

// Scraper turns a URL into the website context for a chat session.
type Scraper interface {
	// Scrape fetches the page at url and returns its extracted text.
	// Returns EINVALID for malformed URLs and ENOTFOUND when the page
	// yields no text.
	Scrape(ctx context.Context, url string) (string, error)
}
