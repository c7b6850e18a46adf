package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/sitechat/chat"
)

// Messages written while setting up a session.
const (
	Banner    = "Website Contextual Chatbot"
	URLPrompt = "Enter the website URL to explore: "
)

// Run scrapes the website once, then answers questions until the user quits.
// A scrape failure ends the command before any question is asked.
func (c *ChatCmd) Run(deps *Dependencies) error {
	in := bufio.NewReader(deps.Stdin)

	fmt.Fprintln(deps.Stdout, Banner)

	url := strings.TrimSpace(c.URL)
	if url == "" {
		fmt.Fprint(deps.Stdout, URLPrompt)
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading url: %w", err)
		}
		url = strings.TrimSpace(line)
	}

	websiteContext, err := deps.Scraper.Scrape(deps.Ctx, url)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	conv := &chat.Conversation{
		Answerer: deps.Answerer,
		Stdin:    in,
		Stdout:   deps.Stdout,
		Stderr:   deps.Stderr,
		Logger:   deps.Logger,
	}
	return conv.Run(deps.Ctx, websiteContext)
}
