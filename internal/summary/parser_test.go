package summary

import (
	"strings"
	"testing"
)

func TestParseStrictJSON(t *testing.T) {
	raw := `{"title":"T","summary":"S","keywords":["a","b"]}`

	out, mode := Parse(raw)
	if mode != ModeStrict {
		t.Fatalf("mode = %v, want ModeStrict", mode)
	}
	if out.Title != "T" || out.Summary != "S" {
		t.Errorf("got title=%q summary=%q", out.Title, out.Summary)
	}
	if len(out.Keywords) != 2 || out.Keywords[0] != "a" || out.Keywords[1] != "b" {
		t.Errorf("keywords = %v, want [a b]", out.Keywords)
	}
}

func TestParseJSONWrappedInProse(t *testing.T) {
	raw := `Sure! Here's the JSON: {"title":"T","summary":"S","keywords":["a","b"]}`

	out, mode := Parse(raw)
	if mode != ModeEmbedded {
		t.Fatalf("mode = %v, want ModeEmbedded", mode)
	}
	if out.Title != "T" || out.Summary != "S" {
		t.Errorf("got title=%q summary=%q", out.Title, out.Summary)
	}
	if len(out.Keywords) != 2 {
		t.Errorf("keywords = %v, want 2 entries", out.Keywords)
	}
}

func TestParseJSONInCodeFence(t *testing.T) {
	raw := "```json\n{\"title\":\"Fenced\",\"summary\":\"Body\",\"keywords\":[]}\n```"

	out, mode := Parse(raw)
	if mode != ModeEmbedded {
		t.Fatalf("mode = %v, want ModeEmbedded", mode)
	}
	if out.Title != "Fenced" || out.Summary != "Body" {
		t.Errorf("got title=%q summary=%q", out.Title, out.Summary)
	}
}

func TestParseNoJSONFallsBack(t *testing.T) {
	raw := "The model decided to reply in plain prose instead."

	out, mode := Parse(raw)
	if mode != ModeFallback {
		t.Fatalf("mode = %v, want ModeFallback", mode)
	}
	if out.Title != FallbackTitle {
		t.Errorf("title = %q, want %q", out.Title, FallbackTitle)
	}
	if out.Summary != raw {
		t.Errorf("summary = %q, want raw input", out.Summary)
	}
	if out.Keywords == nil || len(out.Keywords) != 0 {
		t.Errorf("keywords = %#v, want empty non-nil slice", out.Keywords)
	}
}

func TestParseFallbackTruncatesTo1500Runes(t *testing.T) {
	raw := strings.Repeat("ق", 2000)

	out, mode := Parse(raw)
	if mode != ModeFallback {
		t.Fatalf("mode = %v, want ModeFallback", mode)
	}
	if got := len([]rune(out.Summary)); got != 1500 {
		t.Errorf("summary length = %d runes, want 1500", got)
	}
}

func TestParseMalformedBraceSpanFallsBack(t *testing.T) {
	raw := `prefix {not json at all} suffix`

	out, mode := Parse(raw)
	if mode != ModeFallback {
		t.Fatalf("mode = %v, want ModeFallback", mode)
	}
	if out.Summary != raw {
		t.Errorf("summary = %q, want raw input", out.Summary)
	}
}

func TestParseNilKeywordsBecomesEmptySlice(t *testing.T) {
	out, mode := Parse(`{"title":"T","summary":"S"}`)
	if mode != ModeStrict {
		t.Fatalf("mode = %v, want ModeStrict", mode)
	}
	if out.Keywords == nil {
		t.Error("keywords is nil, want empty slice")
	}
}

func TestParseRejectsNonObjectJSON(t *testing.T) {
	out, mode := Parse(`["just","an","array"]`)
	if mode != ModeFallback {
		t.Fatalf("mode = %v, want ModeFallback", mode)
	}
	if out.Title != FallbackTitle {
		t.Errorf("title = %q, want fallback", out.Title)
	}
}
