// Package readability extracts a page's main content with go-readability,
// dropping navigation, sidebars and footers before the text reaches the model.
package readability

import (
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as HTML and text.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitechat.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
		TextContent: strings.TrimSpace(article.TextContent),
	}, nil
}
