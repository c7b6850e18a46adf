package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	main "github.com/fwojciec/sitechat/cmd/sitechat"
	"github.com/fwojciec/sitechat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdin string, scraper sitechat.Scraper, answerer sitechat.Answerer) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    strings.NewReader(stdin),
		Stdout:   &stdout,
		Stderr:   &stderr,
		Logger:   slog.New(slog.DiscardHandler),
		Scraper:  scraper,
		Answerer: answerer,
	}, &stdout, &stderr
}

func TestChatCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("uses URL argument", func(t *testing.T) {
		t.Parallel()

		var scraped string
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (string, error) {
				scraped = url
				return "Glass coffee table.", nil
			},
		}
		var gotContext, gotQuery string
		answerer := &mock.Answerer{
			AnswerFn: func(_ context.Context, websiteContext, query string) (string, error) {
				gotContext, gotQuery = websiteContext, query
				return "It is glass.", nil
			},
		}
		deps, stdout, _ := newDeps("What is it made of?!\nquit\n", scraper, answerer)

		cmd := &main.ChatCmd{URL: "https://shop.example.com/table"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com/table", scraped)
		assert.Equal(t, "Glass coffee table.", gotContext)
		assert.Equal(t, "What is it made of?", gotQuery)
		assert.True(t, strings.HasPrefix(stdout.String(), main.Banner+"\n"))
		assert.NotContains(t, stdout.String(), main.URLPrompt)
		assert.Contains(t, stdout.String(), "Chatbot: It is glass.\n")
	})

	t.Run("prompts for URL when none given", func(t *testing.T) {
		t.Parallel()

		var scraped string
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (string, error) {
				scraped = url
				return "context", nil
			},
		}
		answerer := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) (string, error) {
				t.Error("answerer should not be called")
				return "", nil
			},
		}
		deps, stdout, _ := newDeps("  https://example.com/page  \nQuit\n", scraper, answerer)

		err := (&main.ChatCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/page", scraped)
		assert.Contains(t, stdout.String(), main.URLPrompt)
		assert.Contains(t, stdout.String(), "Chatbot session ended.")
	})

	t.Run("scrape failure ends before any question", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (string, error) {
				return "", sitechat.Errorf(sitechat.EUNAVAILABLE, "HTTP 503")
			},
		}
		answerer := &mock.Answerer{
			AnswerFn: func(context.Context, string, string) (string, error) {
				t.Error("answerer should not be called")
				return "", nil
			},
		}
		deps, stdout, _ := newDeps("hello\n", scraper, answerer)

		err := (&main.ChatCmd{URL: "https://example.com"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "initialization failed")
		assert.Equal(t, sitechat.EUNAVAILABLE, sitechat.ErrorCode(err))
		assert.NotContains(t, stdout.String(), "Ask a question")
	})

	t.Run("end of input after URL ends quietly", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (string, error) {
				return "context", nil
			},
		}
		deps, _, _ := newDeps("", scraper, &mock.Answerer{})

		err := (&main.ChatCmd{URL: "https://example.com"}).Run(deps)

		assert.NoError(t, err)
	})
}
