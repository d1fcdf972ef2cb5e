package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NoTranslation is the sentinel option meaning "do not translate".
const NoTranslation = "No Translation"

// LanguageOption is one translation target offered to the user.
type LanguageOption struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code,omitempty" json:"code,omitempty"`
}

type languagesFile struct {
	Targets []LanguageOption `yaml:"targets"`
}

// DefaultLanguages mirrors the built-in option list used when no
// languages file is present.
func DefaultLanguages() []LanguageOption {
	return []LanguageOption{
		{Name: NoTranslation},
		{Name: "Arabic", Code: "ar"},
		{Name: "English", Code: "en"},
		{Name: "French", Code: "fr"},
		{Name: "Spanish", Code: "es"},
	}
}

// LoadLanguages reads the translation target options from a YAML file.
// A missing file is not an error: the default list is returned so the
// service can start without any config directory.
func LoadLanguages(path string) ([]LanguageOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLanguages(), nil
		}
		return nil, fmt.Errorf("read languages file: %w", err)
	}

	var f languagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse languages file: %w", err)
	}
	if len(f.Targets) == 0 {
		return DefaultLanguages(), nil
	}

	// The no-translation sentinel must always be present and first.
	opts := make([]LanguageOption, 0, len(f.Targets)+1)
	opts = append(opts, LanguageOption{Name: NoTranslation})
	for _, t := range f.Targets {
		if t.Name == "" || t.Name == NoTranslation {
			continue
		}
		opts = append(opts, t)
	}
	return opts, nil
}
