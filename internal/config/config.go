// README: Config loader with env defaults for HTTP and AI provider settings.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type AIConfig struct {
	// Provider selects the LLM backend: "gemini" (default) or "openai".
	Provider string
	// GeminiKey is required at startup; a missing key is a fatal condition,
	// not a per-call error.
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	AI   AIConfig
	Maps struct {
		// APIKey enables the Places-backed nearby finder. Empty means the
		// AI-backed finder is used instead.
		APIKey string
	}
	Planner struct {
		MaxSessions int
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("PLANORA_HTTP_ADDR", ":8080")
	cfg.AI.Provider = envOrDefault("PLANORA_AI_PROVIDER", "gemini")
	cfg.AI.GeminiModel = envOrDefault("PLANORA_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.AI.OpenAIModel = envOrDefault("PLANORA_OPENAI_MODEL", "gpt-4o-mini")
	switch cfg.AI.Provider {
	case "gemini":
		cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
		cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	case "openai":
		cfg.AI.OpenAIKey = envOrError("OPENAI_API_KEY")
		cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	default:
		return cfg, fmt.Errorf("unknown AI provider %q", cfg.AI.Provider)
	}
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Planner.MaxSessions = envOrDefaultInt("PLANORA_MAX_SESSIONS", 1024)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
