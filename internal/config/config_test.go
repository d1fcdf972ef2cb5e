package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateRequiresAllCredentials(t *testing.T) {
	base := Config{
		GeminiAPIKey:     "key",
		DatabaseURL:      "postgres://app@db/postgres",
		DatabasePassword: "pw",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no gemini key", func(c *Config) { c.GeminiAPIKey = "" }},
		{"no database url", func(c *Config) { c.DatabaseURL = "" }},
		{"no database password", func(c *Config) { c.DatabasePassword = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadLanguagesMissingFileUsesDefaults(t *testing.T) {
	opts, err := LoadLanguages(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadLanguages: %v", err)
	}
	if len(opts) == 0 || opts[0].Name != NoTranslation {
		t.Errorf("opts = %+v, want defaults with No Translation first", opts)
	}
}

func TestLoadLanguagesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	content := "targets:\n  - name: French\n    code: fr\n  - name: German\n    code: de\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadLanguages(path)
	if err != nil {
		t.Fatalf("LoadLanguages: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("got %d options, want sentinel + 2", len(opts))
	}
	if opts[0].Name != NoTranslation {
		t.Errorf("first option = %q, want sentinel", opts[0].Name)
	}
	if opts[1].Name != "French" || opts[1].Code != "fr" {
		t.Errorf("opts[1] = %+v", opts[1])
	}
}

func TestLoadLanguagesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	if err := os.WriteFile(path, []byte("targets: {broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLanguages(path); err == nil {
		t.Error("expected parse error")
	}
}
