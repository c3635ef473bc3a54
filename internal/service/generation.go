package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"promptrelay.app/relay/common/llm"
	"promptrelay.app/relay/common/logger"
	"promptrelay.app/relay/internal/content"
)

// SystemPrompt is sent with every completion.
const SystemPrompt = "You are a professional content generator that writes formal, well-structured materials."

type GenerationService interface {
	Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error)
}

type GenerateParams struct {
	Type     string
	FormData map[string]string
}

type GenerateResult struct {
	Type          content.Type
	GeneratedText string
}

// GenerationConfig carries the completion settings read once at startup.
type GenerationConfig struct {
	MaxTokens   int
	Temperature float64
}

type generationService struct {
	llm llm.Client
	cfg GenerationConfig
}

func NewGenerationService(client llm.Client, cfg GenerationConfig) GenerationService {
	return &generationService{llm: client, cfg: cfg}
}

// Generate validates the type, renders its prompt and relays it to the completion client.
// Validation failures are content.ErrMissingType / content.ErrInvalidType; completion
// failures are returned unwrapped so their message reaches the caller as-is.
func (s *generationService) Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	contentType, err := content.ParseType(params.Type)
	if err != nil {
		slog.InfoContext(ctx, "rejected generation request", "type", params.Type, "reason", err)
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ContentType: logger.Ptr(string(contentType)),
		Provider:    logger.Ptr(s.llm.Provider()),
		Component:   "relay.service.generation",
	})

	fields := content.Normalize(contentType, params.FormData)
	prompt, err := content.Render(contentType, fields)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render prompt", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "generating content", "model", s.llm.Model(), "prompt_chars", len(prompt))

	sc := logger.StartSpan(ctx, "llm.complete", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()
	sc.SetAttributes(
		attribute.String("llm.provider", s.llm.Provider()),
		attribute.String("llm.model", s.llm.Model()),
		attribute.String("content.type", string(contentType)),
	)

	start := time.Now()
	resp, err := s.llm.Complete(sc.Context(), llm.Request{
		SystemPrompt: SystemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    s.cfg.MaxTokens,
		Temperature:  llm.Temp(s.cfg.Temperature),
	})
	if err != nil {
		sc.RecordError(err)
		if llm.IsAuthError(err) {
			slog.WarnContext(ctx, "completion provider rejected credentials", "error", err)
		} else {
			slog.ErrorContext(ctx, "completion failed", "error", err)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "content generated",
		"duration_ms", time.Since(start).Milliseconds(),
		"completion_tokens", resp.CompletionTokens,
		"chars", len(resp.Text))

	return &GenerateResult{
		Type:          contentType,
		GeneratedText: resp.Text,
	}, nil
}
