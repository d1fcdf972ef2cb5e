package summary

import (
	"encoding/json"
	"strings"
)

// FallbackTitle is the degraded-record placeholder ("unspecified").
const FallbackTitle = "غير محدد"

// fallbackSummaryLimit caps the raw output kept as the degraded summary.
const fallbackSummaryLimit = 1500

// Output is the shape the model is prompted to return.
type Output struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Mode reports which branch of the fallback chain produced the Output.
type Mode int

const (
	// ModeStrict: the whole response was a JSON object.
	ModeStrict Mode = iota
	// ModeEmbedded: a JSON object was found inside surrounding prose.
	ModeEmbedded
	// ModeFallback: no JSON object anywhere; degraded record built from
	// the raw text.
	ModeFallback
)

// Parse extracts a structured Output from a raw model response. The
// model is prompted to reply with a JSON object but may wrap it in prose
// or code fences, so parsing degrades gracefully and never fails: the
// worst case is a placeholder title and the truncated raw text as the
// summary.
func Parse(raw string) (Output, Mode) {
	if out, ok := parseObject(raw); ok {
		return out, ModeStrict
	}

	// Greedy brace-delimited span: first '{' through last '}'.
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if out, ok := parseObject(raw[start : end+1]); ok {
			return out, ModeEmbedded
		}
	}

	return Output{
		Title:    FallbackTitle,
		Summary:  truncateRunes(raw, fallbackSummaryLimit),
		Keywords: []string{},
	}, ModeFallback
}

func parseObject(s string) (Output, bool) {
	// Reject non-object JSON (arrays, bare strings) up front; the
	// contract is specifically an object with the three known keys.
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return Output{}, false
	}

	var out Output
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return Output{}, false
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	return out, true
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
