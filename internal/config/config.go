// Package config loads the runtime configuration from environment
// variables. The three credentials (model API key, database URL,
// database password) are required; everything else has a default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Required credentials
	GeminiAPIKey     string
	DatabaseURL      string // Supabase Postgres DSN, password omitted
	DatabasePassword string

	// Model settings
	GeminiModel   string
	OpenAIAPIKey  string // optional translation fallback
	MaxInputRunes int    // prompt size cap before the summarize call

	// HTTP settings
	ListenAddr     string
	MaxUploadBytes int64
	RequestTimeout time.Duration

	// Languages file for the translation target options
	LanguagesPath string

	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		GeminiModel:    "gemini-2.5-flash",
		MaxInputRunes:  20000,
		ListenAddr:     ":8080",
		MaxUploadBytes: 10 << 20,
		RequestTimeout: 90 * time.Second,
		LanguagesPath:  "configs/languages.yaml",
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DatabasePassword = os.Getenv("DATABASE_PASSWORD")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if path := os.Getenv("LANGUAGES_PATH"); path != "" {
		cfg.LanguagesPath = path
	}
	if v := os.Getenv("MAX_INPUT_RUNES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxInputRunes = val
		}
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.MaxUploadBytes = int64(val) << 20
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if os.Getenv("DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}
	return nil
}
