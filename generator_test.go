package sitechat_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestFirstGeneratedText(t *testing.T) {
	t.Parallel()

	t.Run("returns first candidate", func(t *testing.T) {
		t.Parallel()

		text := sitechat.FirstGeneratedText([]sitechat.Candidate{
			{GeneratedText: "first"},
			{GeneratedText: "second"},
		})

		assert.Equal(t, "first", text)
	})

	t.Run("returns placeholder when no candidates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sitechat.PlaceholderText, sitechat.FirstGeneratedText(nil))
	})

	t.Run("returns placeholder when text is empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sitechat.PlaceholderText, sitechat.FirstGeneratedText([]sitechat.Candidate{{}}))
	})
}

func TestNewCacheKey(t *testing.T) {
	t.Parallel()

	t.Run("identical pairs produce equal keys", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sitechat.NewCacheKey("ctx", "q"), sitechat.NewCacheKey("ctx", "q"))
	})

	t.Run("separator in values does not collide", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, sitechat.NewCacheKey("a-b", "c"), sitechat.NewCacheKey("a", "b-c"))
	})
}
