// Package goquery converts page HTML into the plain visible text used as
// website context.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitechat"
	"golang.org/x/net/html"
)

// Ensure TextConverter implements sitechat.Converter at compile time.
var _ sitechat.Converter = (*TextConverter)(nil)

// hiddenSelector matches elements whose content is never shown as page text.
const hiddenSelector = "head, script, style, noscript, template, svg, iframe, object, [hidden], [aria-hidden=true]"

var whitespace = regexp.MustCompile(`\s+`)

// blockElements get a separator on both sides so words in adjacent blocks
// don't run together.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// TextConverter extracts the visible text of an HTML document.
type TextConverter struct {
	hidden string
}

// TextOption configures a TextConverter.
type TextOption func(*TextConverter)

// WithHiddenSelector replaces the selector for elements dropped before
// text extraction.
func WithHiddenSelector(selector string) TextOption {
	return func(c *TextConverter) {
		c.hidden = selector
	}
}

// NewTextConverter creates a new TextConverter.
func NewTextConverter(opts ...TextOption) *TextConverter {
	c := &TextConverter{hidden: hiddenSelector}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the page's visible text on a single line, with runs of
// whitespace collapsed to one space.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", sitechat.Errorf(sitechat.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", sitechat.Errorf(sitechat.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(c.hidden).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	for _, n := range root.Nodes {
		writeText(&sb, n)
	}

	return strings.TrimSpace(whitespace.ReplaceAllString(sb.String(), " ")), nil
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		sb.WriteByte(' ')
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(sb, child)
	}
	if block {
		sb.WriteByte(' ')
	}
}
