package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Walnut Coffee Table | Example Furniture</title>
<meta property="og:title" content="Walnut Coffee Table">
</head>
<body><article><p>A walnut coffee table with a lower shelf for magazines and books.</p></article></body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Walnut Coffee Table")
	})

	t.Run("extracts main content as html and text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Delivery</title></head>
<body>
<nav><ul><li><a href="/">Home</a></li><li><a href="/shop">Shop</a></li></ul></nav>
<main>
<article>
<h1>Delivery information</h1>
<p>Orders placed before noon are dispatched the same day from our warehouse.</p>
<p>Large furniture such as coffee tables is delivered by a two-person team.</p>
</article>
</main>
<footer><p>Copyright 2024 Example Furniture Ltd. All rights reserved.</p></footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "dispatched the same day")
		assert.Contains(t, result.TextContent, "two-person team")
		assert.NotContains(t, result.TextContent, "All rights reserved")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, sitechat.EINVALID, sitechat.ErrorCode(err))
	})
}
