package sitechat

import "context"

// Answerer answers natural language questions about a website.
type Answerer interface {
	// Answer returns an answer to query using websiteContext as background.
	// Generation failures are turned into a fallback answer, so an error is
	// only returned when the Answerer itself is unusable.
	Answer(ctx context.Context, websiteContext, query string) (string, error)
}
