package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"promptrelay.app/relay/common/llm"
)

type Config struct {
	OTel           OTelConfig
	LLM            LLMConfig
	Env            string
	Port           string
	AllowedOrigins []string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type LLMConfig struct {
	Provider    string // "openai", "anthropic" or "gemini"
	APIKey      string // May be empty; the first generation call then fails as unauthenticated
	BaseURL     string // Optional: for custom endpoints
	Model       string // Empty selects the provider default
	MaxTokens   int
	Temperature float64
}

// Load loads configuration from environment variables.
// In development a .env file in the working directory is loaded first when present;
// variables already set in the environment win over the file.
func Load() Config {
	if getEnv("APP_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", llm.ProviderOpenAI))

	return Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "prompt-relay"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		LLM: LLMConfig{
			Provider:    provider,
			APIKey:      apiKeyFor(provider),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Model:       getEnv("LLM_MODEL", ""),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 400),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c LLMConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

func apiKeyFor(provider string) string {
	switch provider {
	case llm.ProviderAnthropic:
		return getEnv("ANTHROPIC_API_KEY", "")
	case llm.ProviderGemini:
		return getEnv("GEMINI_API_KEY", "")
	default:
		return getEnv("OPENAI_API_KEY", "")
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
