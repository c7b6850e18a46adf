package sitechat

import "context"

// Candidate is one completion returned by a text-generation endpoint.
type Candidate struct {
	GeneratedText string `json:"generated_text"`
}

// TextGenerator submits a prompt to a remote text-generation endpoint.
type TextGenerator interface {
	// Generate returns the endpoint's candidates in the order received.
	// Implementations return the prompt followed by the continuation,
	// the way text-generation endpoints do by default.
	Generate(ctx context.Context, prompt string) ([]Candidate, error)
}

// PlaceholderText stands in for the generated text when the endpoint
// returns no candidates.
const PlaceholderText = "I couldn't generate a specific response based on the context."

// FirstGeneratedText returns the text of the first candidate, or
// PlaceholderText when there is none or it is empty.
func FirstGeneratedText(candidates []Candidate) string {
	if len(candidates) == 0 || candidates[0].GeneratedText == "" {
		return PlaceholderText
	}
	return candidates[0].GeneratedText
}
