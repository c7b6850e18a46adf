// Package scrape turns a single URL into website context by orchestrating
// fetching, content extraction and text conversion.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/sitechat"
)

// Ensure Scraper implements sitechat.Scraper at compile time.
var _ sitechat.Scraper = (*Scraper)(nil)

// Scraper implements sitechat.Scraper through injected dependencies.
//
// Extractor is optional; without it the whole page is converted. Converter
// is optional when Extractor is set, in which case the extractor's plain
// text is used.
type Scraper struct {
	Fetcher   sitechat.Fetcher
	Extractor sitechat.Extractor
	Converter sitechat.Converter
}

// Scrape fetches rawURL once and returns its text, prefixed by the page
// title when one was extracted. Failures are not retried.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}
	if s.Extractor == nil && s.Converter == nil {
		return "", sitechat.Errorf(sitechat.EINTERNAL, "scraper needs an extractor or a converter")
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	var title string
	content, text := html, ""
	if s.Extractor != nil {
		result, err := s.Extractor.Extract(html)
		if err != nil {
			return "", fmt.Errorf("extracting %s: %w", rawURL, err)
		}
		title = result.Title
		content, text = result.ContentHTML, result.TextContent
	}

	if s.Converter != nil {
		text, err = s.Converter.Convert(content)
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", rawURL, err)
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", sitechat.Errorf(sitechat.ENOTFOUND, "no text found at %s", rawURL)
	}
	if title != "" && !strings.HasPrefix(text, title) {
		text = title + "\n\n" + text
	}
	return text, nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return sitechat.Errorf(sitechat.EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return sitechat.Errorf(sitechat.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return sitechat.Errorf(sitechat.EINVALID, "url %q must be an absolute http or https URL", rawURL)
	}
	return nil
}
