// Package gemini provides sitechat implementations backed by Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/sitechat"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements sitechat.TextGenerator at compile time.
var _ sitechat.TextGenerator = (*Generator)(nil)

// Generator implements sitechat.TextGenerator using Google Gemini.
//
// Gemini returns only the continuation; Generator prepends the prompt so
// the candidate has the same shape as a text-generation endpoint's output.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator for model.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate asks Gemini to continue prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]sitechat.Candidate, error) {
	if prompt == "" {
		return nil, sitechat.Errorf(sitechat.EINVALID, "prompt required")
	}
	if g.client == nil {
		return nil, sitechat.Errorf(sitechat.EINTERNAL, "gemini client not configured")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, sitechat.Errorf(sitechat.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return nil, nil
	}
	return []sitechat.Candidate{{GeneratedText: prompt + " " + text}}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You answer questions about a website using only the page text given as context. Reply with a single short paragraph on one line.",
			}},
		},
		Temperature: &temp,
	}
}
