package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/sitechat"
	"github.com/google/uuid"
)

// Messages written to the user during a conversation.
const (
	QuestionPrompt = `Ask a question (or type "quit"): `
	GoodbyeMessage = "Chatbot session ended."
	AnswerPrefix   = "Chatbot: "
)

// State is a step of the conversation state machine.
type State int

// Conversation states. StateTerminated is final.
const (
	StateAwaitingInput State = iota
	StateProcessing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateProcessing:
		return "processing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Conversation reads questions one line at a time, answers each before
// reading the next, and stops on "quit", end of input, or an Answerer error.
type Conversation struct {
	Answerer sitechat.Answerer
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger

	state State
}

// State returns the current state of the conversation.
func (c *Conversation) State() State {
	return c.state
}

// Run drives the conversation about websiteContext until it terminates.
// It returns nil when the user quits or input ends.
func (c *Conversation) Run(ctx context.Context, websiteContext string) error {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("session", uuid.New().String())
	logger.Debug("session started",
		"context_bytes", len(websiteContext),
		"context_hash", ContextHash(websiteContext),
	)

	in := bufio.NewReader(c.Stdin)
	c.state = StateAwaitingInput

	for {
		if err := ctx.Err(); err != nil {
			c.state = StateTerminated
			return err
		}

		fmt.Fprint(c.Stdout, QuestionPrompt)
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			c.state = StateTerminated
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		query := sitechat.SanitizeQuery(line)
		if sitechat.IsQuitCommand(query) {
			fmt.Fprintln(c.Stdout, GoodbyeMessage)
			c.state = StateTerminated
			return nil
		}

		c.state = StateProcessing
		answer, err := c.Answerer.Answer(ctx, websiteContext, query)
		if err != nil {
			fmt.Fprintf(c.Stderr, "error: %s\n", sitechat.ErrorMessage(err))
			c.state = StateTerminated
			return err
		}

		fmt.Fprintln(c.Stdout, AnswerPrefix+answer)
		c.state = StateAwaitingInput
	}
}
