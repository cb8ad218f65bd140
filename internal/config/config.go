// Package config assembles the run configuration from the environment.
// Anything wrong here is a configuration error: fatal, and raised before
// the first generation attempt.
package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	defaultGroqModel   = "llama-3.1-8b-instant"
	defaultGeminiModel = "gemini-2.5-flash"

	// DefaultMaxAttempts is the fixed retry budget of the correction loop.
	DefaultMaxAttempts = 3
)

type Config struct {
	Target        string
	Provider      string
	Model         string
	APIKey        string
	DataRoot      string
	ParserPath    string
	Python        string
	MaxAttempts   int
	VerifyTimeout time.Duration
}

// Load reads .env (when present) and the process environment, applying
// defaults. The API key for the selected provider is the one required
// secret; its absence fails the run before any attempt.
func Load(target string, getenv func(string) string) (*Config, error) {
	_ = godotenv.Load()

	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("config: target is required")
	}

	provider := strings.ToLower(firstNonEmpty(getenv("PARSEFORGE_PROVIDER"), ProviderGroq))
	var model, apiKey, keyName string
	switch provider {
	case ProviderGroq:
		model = firstNonEmpty(getenv("PARSEFORGE_MODEL"), defaultGroqModel)
		apiKey, keyName = getenv("GROQ_API_KEY"), "GROQ_API_KEY"
	case ProviderGemini:
		model = firstNonEmpty(getenv("PARSEFORGE_MODEL"), defaultGeminiModel)
		apiKey, keyName = getenv("GEMINI_API_KEY"), "GEMINI_API_KEY"
	default:
		return nil, fmt.Errorf("config: unknown provider %q", provider)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("config: %s is not set", keyName)
	}

	attempts := DefaultMaxAttempts
	if raw := strings.TrimSpace(getenv("PARSEFORGE_MAX_ATTEMPTS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config: invalid PARSEFORGE_MAX_ATTEMPTS %q", raw)
		}
		attempts = n
	}

	timeout := 30 * time.Second
	if raw := strings.TrimSpace(getenv("PARSEFORGE_VERIFY_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config: invalid PARSEFORGE_VERIFY_TIMEOUT %q", raw)
		}
		timeout = d
	}

	parserDir := firstNonEmpty(getenv("PARSEFORGE_PARSER_DIR"), "custom_parsers")

	return &Config{
		Target:        target,
		Provider:      provider,
		Model:         model,
		APIKey:        apiKey,
		DataRoot:      firstNonEmpty(getenv("PARSEFORGE_DATA_ROOT"), "data"),
		ParserPath:    filepath.Join(parserDir, target+"_parser.py"),
		Python:        firstNonEmpty(getenv("PARSEFORGE_PYTHON"), "python3"),
		MaxAttempts:   attempts,
		VerifyTimeout: timeout,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
