// Package huggingface provides a sitechat.TextGenerator backed by the
// Hugging Face Inference API text-generation task.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
)

// DefaultEndpoint is the hosted GPT-2 text-generation model.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/gpt2"

// DefaultTimeout is the default timeout for generation requests.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// Ensure Generator implements sitechat.TextGenerator at compile time.
var _ sitechat.TextGenerator = (*Generator)(nil)

// Generator posts prompts to a Hugging Face inference endpoint.
type Generator struct {
	client   *http.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithEndpoint sets the inference endpoint URL.
// Defaults to DefaultEndpoint if not specified.
func WithEndpoint(url string) Option {
	return func(g *Generator) {
		g.endpoint = url
	}
}

// WithTimeout sets the timeout for generation requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator creates a new Generator authenticating with apiKey.
// An empty key is sent as-is; the endpoint will reject the request.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	g := &Generator{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.client = &http.Client{
		Timeout: g.timeout,
	}

	return g
}

type request struct {
	Inputs string `json:"inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Generate submits prompt and returns the endpoint's candidates.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]sitechat.Candidate, error) {
	body, err := json.Marshal(request{Inputs: prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var candidates []sitechat.Candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "malformed generation response: %v", err)
	}

	return candidates, nil
}

// statusError builds an error for a non-2xx response, using the API's
// error message when the body carries one.
func statusError(resp *http.Response) error {
	msg := fmt.Sprintf("HTTP %d", resp.StatusCode)

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr errorResponse
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
		msg += ": " + apiErr.Error
	}

	code := sitechat.EUNAVAILABLE
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		code = sitechat.EUNAUTHORIZED
	}
	return sitechat.Errorf(code, "%s", msg)
}
