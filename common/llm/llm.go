package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

const defaultMaxTokens = 400

var (
	// ErrAuthentication is in the chain of every error caused by the provider
	// rejecting (or the service lacking) the configured credential.
	ErrAuthentication = errors.New("authentication failed")

	ErrNoChoices = errors.New("no choices in response")
)

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai", "anthropic" or "gemini"; empty means openai
	APIKey   string // Empty yields a client whose calls fail with ErrAuthentication
	BaseURL  string // Optional: custom API endpoint (openai, anthropic)
	Model    string // Optional: provider default when empty
}

// Client performs single-turn text completions.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Model() string
	Provider() string
	Close() error
}

type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

type Response struct {
	Text             string
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

// New creates a Client for cfg.Provider. A missing API key is not an error here:
// the returned client reports ErrAuthentication on its first call instead.
func New(ctx context.Context, cfg Config) (Client, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	if cfg.APIKey == "" {
		switch provider {
		case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
			return &unconfiguredClient{provider: provider, model: modelOrDefault(provider, cfg.Model)}, nil
		}
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	case ProviderGemini:
		return newGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// IsAuthError reports whether err was caused by a rejected or missing credential.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

func Temp(t float64) *float64 {
	return &t
}

func modelOrDefault(provider, model string) string {
	if model != "" {
		return model
	}
	switch provider {
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderGemini:
		return "gemini-1.5-flash"
	default:
		return "gpt-4o-mini"
	}
}

// maxTokensOrDefault is capped at MaxInt32, the widest limit every provider accepts.
func maxTokensOrDefault(n int) int {
	switch {
	case n <= 0:
		return defaultMaxTokens
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return n
	}
}

// authError keeps the provider error message and still matches ErrAuthentication.
type authError struct {
	err error
}

func (e *authError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAuthentication, e.err)
}

func (e *authError) Unwrap() []error {
	return []error{ErrAuthentication, e.err}
}

type unconfiguredClient struct {
	provider string
	model    string
}

func (c *unconfiguredClient) Complete(context.Context, Request) (*Response, error) {
	return nil, &authError{err: fmt.Errorf("no API key configured for provider %s", c.provider)}
}

func (c *unconfiguredClient) Model() string {
	return c.model
}

func (c *unconfiguredClient) Provider() string {
	return c.provider
}

func (c *unconfiguredClient) Close() error {
	return nil
}
