// Package trafilatura extracts a page's main content with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Fallback extractors are enabled, trading speed for recall on pages
// that are not article-shaped, such as shop listings.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract processes raw HTML and returns the main content as HTML and text.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &sitechat.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
		TextContent: strings.TrimSpace(result.ContentText),
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
