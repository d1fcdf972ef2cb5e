// Package detect wraps lingua for best-effort source-language detection.
package detect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all supported languages. Construction loads
// the language models once; share the instance.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns the lowercased ISO 639-1 code of the most likely
// language ("en", "ar", ...). ok is false when the text gives the
// detector nothing to work with; callers fall back to "unknown".
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
