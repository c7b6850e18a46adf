package sitechat

import (
	"strings"
	"unicode"
)

// QuitCommand ends a chat session.
const QuitCommand = "quit"

// SanitizeQuery removes every character that is not a letter, digit,
// whitespace or question mark, then trims the result.
func SanitizeQuery(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '?' {
			return r
		}
		return -1
	}, raw)
	return strings.TrimSpace(cleaned)
}

// IsQuitCommand reports whether a sanitized query asks to end the session.
func IsQuitCommand(query string) bool {
	return strings.EqualFold(query, QuitCommand)
}
