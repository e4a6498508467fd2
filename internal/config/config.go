package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultPort          = "5000"
	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultMaxTokens     = 500
	defaultTemperature   = 0.2
	defaultBindInterface = "0.0.0.0"
)

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// Completion configures the completion client. It is read once at startup
// and handed to the client constructor.
type Completion struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	// Timeout bounds a single completion call. Zero leaves the client library default.
	Timeout time.Duration
}

// CompletionFromEnv resolves the completion settings for the selected provider.
func CompletionFromEnv() Completion {
	cfg := Completion{
		Provider:    Provider(),
		MaxTokens:   MaxTokens(),
		Temperature: Temperature(),
		Timeout:     CompletionTimeout(),
	}
	switch cfg.Provider {
	case ProviderGemini:
		cfg.APIKey = GeminiAPIKey()
		cfg.BaseURL = strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
		cfg.Model = envOr("GEMINI_MODEL", defaultGeminiModel)
	default:
		cfg.APIKey = OpenAIAPIKey()
		cfg.BaseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
		cfg.Model = envOr("OPENAI_MODEL", defaultOpenAIModel)
	}
	return cfg
}

// Provider returns the completion backend name (LLM_PROVIDER), lowercased.
func Provider() string {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))); v != "" {
		return v
	}
	return ProviderOpenAI
}

// OpenAIAPIKey returns the OpenAI API key.
func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// GeminiAPIKey returns the Google Gemini API key.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// MaxTokens returns the completion token cap. Defaults to 500; values that do
// not fit an int32 (the Gemini field width) fall back to the default.
func MaxTokens() int {
	if v := os.Getenv("COMPLETION_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= math.MaxInt32 {
			return n
		}
	}
	return defaultMaxTokens
}

// Temperature returns the sampling temperature. Defaults to 0.2; values outside [0, 2] are ignored.
func Temperature() float32 {
	if v := os.Getenv("COMPLETION_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 && f <= 2 {
			return float32(f)
		}
	}
	return defaultTemperature
}

// CompletionTimeout returns COMPLETION_TIMEOUT as a duration, or 0 when unset or invalid.
func CompletionTimeout() time.Duration {
	if v := os.Getenv("COMPLETION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 0
}

// Port returns the listening port without a leading colon.
func Port() string {
	port := strings.TrimPrefix(strings.TrimSpace(os.Getenv("PORT")), ":")
	if port == "" {
		return defaultPort
	}
	return port
}

// Addr returns the listen address. The server always binds all interfaces.
func Addr() string {
	return defaultBindInterface + ":" + Port()
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
