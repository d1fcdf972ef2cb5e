// Package summary holds the result record, the tolerant model-output
// parser and the orchestration service around the model calls.
package summary

import "time"

// Result is the record assembled once per user action. It is write-once:
// persisted after assembly and optionally rendered to a document, never
// mutated.
type Result struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Keywords    []string  `json:"keywords"`
	Translation *string   `json:"translation"`
	Language    string    `json:"language"`
	InputText   string    `json:"input_text"`
	CreatedAt   time.Time `json:"created_at"`
}
