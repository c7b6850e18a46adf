package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var _ sitechat.TextGenerator = (*TextGenerator)(nil)

// TextGenerator is a mock implementation of sitechat.TextGenerator.
type TextGenerator struct {
	GenerateFn func(ctx context.Context, prompt string) ([]sitechat.Candidate, error)
}

func (g *TextGenerator) Generate(ctx context.Context, prompt string) ([]sitechat.Candidate, error) {
	return g.GenerateFn(ctx, prompt)
}
