// Package metrics holds process-wide counters exposed on /healthz.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	SummariesGenerated   int64
	TranslationsDone     int64
	TranslationFailures  int64
	ParserFallbacks      int64
	ExtractionFailures   int64
	PersistenceFailures  int64
	DocumentsComposed    int64
	EmptyInputRejections int64

	// Timings
	LastRunDuration    time.Duration
	TotalRunDuration   time.Duration
	AverageRunDuration time.Duration
	RunCount           int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementSummaries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummariesGenerated++
}

func (m *Metrics) IncrementTranslations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsDone++
}

func (m *Metrics) IncrementTranslationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationFailures++
}

func (m *Metrics) IncrementParserFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ParserFallbacks++
}

func (m *Metrics) IncrementExtractionFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExtractionFailures++
}

func (m *Metrics) IncrementPersistenceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceFailures++
}

func (m *Metrics) IncrementDocumentsComposed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocumentsComposed++
}

func (m *Metrics) IncrementEmptyInputRejections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmptyInputRejections++
}

func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRunDuration = duration
	m.TotalRunDuration += duration
	m.RunCount++
	m.AverageRunDuration = m.TotalRunDuration / time.Duration(m.RunCount)
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"summaries_generated":     m.SummariesGenerated,
		"translations_done":       m.TranslationsDone,
		"translation_failures":    m.TranslationFailures,
		"parser_fallbacks":        m.ParserFallbacks,
		"extraction_failures":     m.ExtractionFailures,
		"persistence_failures":    m.PersistenceFailures,
		"documents_composed":      m.DocumentsComposed,
		"empty_input_rejections":  m.EmptyInputRejections,
		"last_run_duration_ms":    m.LastRunDuration.Milliseconds(),
		"average_run_duration_ms": m.AverageRunDuration.Milliseconds(),
		"last_run_time":           m.LastRunTime.Format(time.RFC3339),
		"last_error_time":         m.LastErrorTime.Format(time.RFC3339),
		"last_error":              m.LastError,
		"is_healthy":              m.IsHealthy,
	}
}
