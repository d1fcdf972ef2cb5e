package summary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
	"github.com/nader0889-cyber/smart-summarizer/internal/metrics"
)

// NoTranslation is the sentinel target meaning "do not translate".
const NoTranslation = "No Translation"

// defaultTitle is used when the model output carries no title ("summary").
const defaultTitle = "ملخص"

// ErrEmptyInput is returned when the effective input text is empty or
// whitespace-only; no model call is made in that case.
var ErrEmptyInput = errors.New("input text is empty")

// Summarizer is the summarization side of the model service.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Translator is the translation side of the model service.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Detector performs best-effort source-language detection. ok is false
// when no language could be determined.
type Detector interface {
	Detect(text string) (code string, ok bool)
}

// Store persists assembled results.
type Store interface {
	InsertSummary(ctx context.Context, r *Result) error
}

// Service orchestrates one summarization action: detect, summarize,
// parse, optionally translate, assemble, persist. All collaborators are
// injected; none is a package-level singleton.
type Service struct {
	summarizer Summarizer
	translator Translator
	detector   Detector
	store      Store
}

func NewService(s Summarizer, t Translator, d Detector, store Store) *Service {
	return &Service{summarizer: s, translator: t, detector: d, store: store}
}

// Run executes the single user-triggered action. targetLanguage equal to
// the empty string or the NoTranslation sentinel skips the translate
// call. The two model calls are sequential and blocking; there is no
// retry and no cancellation beyond ctx.
func (s *Service) Run(ctx context.Context, input, targetLanguage string) (*Result, error) {
	start := time.Now()

	input = strings.TrimSpace(input)
	if input == "" {
		metrics.Global.IncrementEmptyInputRejections()
		return nil, ErrEmptyInput
	}

	// Detection is best-effort and never fatal.
	language := "unknown"
	if s.detector != nil {
		if code, ok := s.detector.Detect(input); ok {
			language = code
		}
	}

	raw, err := s.summarizer.Summarize(ctx, input)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return nil, err
	}

	parsed, mode := Parse(raw)
	if mode == ModeFallback {
		metrics.Global.IncrementParserFallbacks()
		logger.Warn("model response contained no JSON object, using degraded record",
			"raw_length", len(raw))
	}

	title := parsed.Title
	if title == "" {
		title = defaultTitle
	}
	keywords := parsed.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	var translation *string
	if targetLanguage != "" && targetLanguage != NoTranslation {
		translated, err := s.translator.Translate(ctx, parsed.Summary, targetLanguage)
		if err != nil {
			// Keeps the detected source language on failure.
			metrics.Global.IncrementTranslationFailures()
			logger.Warn("translation failed, keeping detected language",
				"target", targetLanguage, "error", err)
		} else {
			trimmed := strings.TrimSpace(translated)
			translation = &trimmed
			language = targetLanguage
			metrics.Global.IncrementTranslations()
		}
	}

	result := &Result{
		Title:       title,
		Summary:     parsed.Summary,
		Keywords:    keywords,
		Translation: translation,
		Language:    language,
		InputText:   input,
		CreatedAt:   time.Now().UTC(),
	}

	// Persistence is best-effort relative to the user-facing outcome:
	// a failed insert is logged and counted, never surfaced.
	if s.store != nil {
		if err := s.store.InsertSummary(ctx, result); err != nil {
			metrics.Global.IncrementPersistenceFailures()
			logger.Error("failed to persist summary", "error", err)
		}
	}

	metrics.Global.IncrementSummaries()
	metrics.Global.RecordRun(time.Since(start))
	return result, nil
}
