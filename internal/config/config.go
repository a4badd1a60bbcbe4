package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port        string
	LLM         LLMConfig
	OrderName   string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
}

type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// Load reads the environment, loading a .env file first outside production.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		OrderName:   getEnv("ORDER_NAME", "miftah"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	timeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI))
	switch provider {
	case ProviderOpenAI:
		cfg.LLM = LLMConfig{
			Provider: provider,
			APIKey:   os.Getenv("LLM_API_KEY"),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Model:    os.Getenv("LLM_MODEL"),
			Timeout:  timeout,
		}
	case ProviderGemini:
		cfg.LLM = LLMConfig{
			Provider: provider,
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Model:    os.Getenv("GEMINI_MODEL"),
			Timeout:  timeout,
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}

	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("missing API key for provider %s", provider)
	}
	if cfg.LLM.Model == "" {
		return nil, fmt.Errorf("missing model for provider %s", provider)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
