package summary

import (
	"regexp"
	"strings"
	"time"
)

var (
	reFilenameDrop = regexp.MustCompile(`[^\p{L}\p{N}_\-\s]`)
	reWhitespace   = regexp.MustCompile(`\s+`)
)

// Filename turns a result title into a filesystem-safe download name:
// letters, digits, underscore and hyphen only, at most 60 runes, with a
// UTC second-precision timestamp appended so repeated exports of the
// same title never collide.
func Filename(title string) string {
	s := reFilenameDrop.ReplaceAllString(strings.TrimSpace(title), "")
	s = reWhitespace.ReplaceAllString(s, "_")

	runes := []rune(s)
	if len(runes) > 60 {
		s = string(runes[:60])
	}

	ts := time.Now().UTC().Format("20060102_150405")
	return s + "_" + ts
}
