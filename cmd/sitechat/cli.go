package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  sitechat.Scraper
	Answerer sitechat.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL             string        `arg:"" optional:"" help:"Website URL to chat about (prompted for when omitted)"`
	Backend         string        `short:"b" enum:"huggingface,gemini" default:"huggingface" help:"Text-generation backend (${enum})"`
	Endpoint        string        `default:"https://api-inference.huggingface.co/models/gpt2" help:"Hugging Face inference endpoint"`
	GeminiModel     string        `default:"gemini-2.5-flash" help:"Gemini model for the gemini backend"`
	Render          bool          `short:"r" help:"Render the page in headless Chrome before extracting text"`
	Extractor       string        `short:"e" enum:"none,readability,trafilatura" default:"none" help:"Main-content extractor (${enum})"`
	Format          string        `short:"f" enum:"text,markdown" default:"text" help:"Website context format (${enum})"`
	FetchTimeout    time.Duration `default:"10s" help:"Page fetch timeout"`
	GenerateTimeout time.Duration `default:"30s" help:"Text generation timeout"`
	CacheTTL        time.Duration `name:"cache-ttl" default:"60s" help:"How long answers stay cached"`
	Verbose         bool          `short:"v" help:"Log debug diagnostics to stderr"`

	HFAPIKey     string `name:"hf-api-key" env:"HF_API_KEY" hidden:"" help:"Hugging Face API key"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" hidden:"" help:"Gemini API key"`
}

// ChatCmd runs one interactive chat session about a website.
type ChatCmd struct {
	URL string
}
