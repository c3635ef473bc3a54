package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Gemini reports a bad key as 400 INVALID_ARGUMENT with this message.
const geminiInvalidKeyMessage = "API key not valid"

type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  modelOrDefault(ProviderGemini, cfg.Model),
	}, nil
}

// Complete builds a fresh GenerativeModel per call; the model's settings are
// mutable and must not be shared between concurrent requests.
func (c *geminiClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := c.client.GenerativeModel(c.model)
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}
	}
	model.SetMaxOutputTokens(int32(maxTokensOrDefault(req.MaxTokens)))
	if req.Temperature != nil {
		model.SetTemperature(float32(*req.Temperature))
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoChoices
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	result := &Response{
		Text:         strings.TrimSpace(text.String()),
		FinishReason: strings.ToLower(candidate.FinishReason.String()),
	}
	if resp.UsageMetadata != nil {
		result.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	slog.DebugContext(ctx, "llm completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens,
		"finish_reason", result.FinishReason)

	return result, nil
}

func (c *geminiClient) Model() string {
	return c.model
}

func (c *geminiClient) Provider() string {
	return ProviderGemini
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}

func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden ||
			strings.Contains(apiErr.Message, geminiInvalidKeyMessage) {
			return &authError{err: err}
		}
		return fmt.Errorf("gemini completion: %w", err)
	}

	if st, ok := status.FromError(err); ok {
		switch {
		case st.Code() == codes.Unauthenticated, st.Code() == codes.PermissionDenied:
			return &authError{err: err}
		case strings.Contains(st.Message(), geminiInvalidKeyMessage):
			return &authError{err: err}
		}
	}
	return fmt.Errorf("gemini completion: %w", err)
}
