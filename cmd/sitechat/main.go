package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/cache"
	"github.com/fwojciec/sitechat/chat"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/fwojciec/sitechat/goquery"
	"github.com/fwojciec/sitechat/htmltomarkdown"
	sitehttp "github.com/fwojciec/sitechat/http"
	"github.com/fwojciec/sitechat/huggingface"
	"github.com/fwojciec/sitechat/readability"
	"github.com/fwojciec/sitechat/rod"
	"github.com/fwojciec/sitechat/scrape"
	siteslog "github.com/fwojciec/sitechat/slog"
	"github.com/fwojciec/sitechat/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Path of an optional dotenv file loaded before flags are parsed.
	// Variables already set in the environment take precedence.
	// Empty disables loading.
	EnvFile string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitechat"),
		kong.Description("Chat with a website: scrape a page, then ask questions about it"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// Wire the content fetcher
	var fetcher sitechat.Fetcher
	if cli.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.FetchTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = sitehttp.NewFetcher(sitehttp.WithTimeout(cli.FetchTimeout))
	}
	fetcher = siteslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	deps.Scraper = siteslog.NewLoggingScraper(newScraper(cli, fetcher), logger)

	// Wire the answer generator
	generator, err := newGenerator(ctx, cli, stderr, logger)
	if err != nil {
		return err
	}

	deps.Answerer = chat.NewAnswerer(
		generator,
		cache.New(cache.WithTTL(cli.CacheTTL)),
		chat.WithGenerateTimeout(cli.GenerateTimeout),
		chat.WithLogger(logger),
	)

	cmd := &ChatCmd{URL: cli.URL}
	return cmd.Run(deps)
}

// newLogger returns the diagnostic logger. Debug output is enabled by --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newScraper assembles the extraction pipeline selected by flags.
// With an extractor and plain text output, the extractor's own text is used.
func newScraper(cli *CLI, fetcher sitechat.Fetcher) *scrape.Scraper {
	s := &scrape.Scraper{Fetcher: fetcher}

	switch cli.Extractor {
	case "readability":
		s.Extractor = readability.NewExtractor()
	case "trafilatura":
		s.Extractor = trafilatura.NewExtractor()
	}

	switch {
	case cli.Format == "markdown":
		s.Converter = htmltomarkdown.NewConverter()
	case s.Extractor == nil:
		s.Converter = goquery.NewTextConverter()
	}

	return s
}

// newGenerator returns the text-generation backend selected by flags,
// wrapped with logging.
func newGenerator(ctx context.Context, cli *CLI, stderr io.Writer, logger *slog.Logger) (sitechat.TextGenerator, error) {
	if cli.Backend != "gemini" {
		generator := huggingface.NewGenerator(cli.HFAPIKey,
			huggingface.WithEndpoint(cli.Endpoint),
			huggingface.WithTimeout(cli.GenerateTimeout),
		)
		return siteslog.NewLoggingGenerator(generator, logger, nil), nil
	}

	if cli.GeminiAPIKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cli.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// Token counts are only logged at debug level.
	var counter sitechat.TokenCounter
	if cli.Verbose {
		tc, err := gemini.NewTokenCounter(cli.GeminiModel)
		if err != nil {
			logger.Warn("token counting disabled", "model", cli.GeminiModel, "err", err)
		} else {
			counter = tc
		}
	}

	return siteslog.NewLoggingGenerator(gemini.NewGenerator(client, cli.GeminiModel), logger, counter), nil
}
