package sitechat

// Converter converts HTML to the text handed to the model as website context.
type Converter interface {
	// Convert transforms HTML content into text (plain or Markdown).
	Convert(html string) (string, error)
}
