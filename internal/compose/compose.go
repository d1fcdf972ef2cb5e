// Package compose renders a summary result into a downloadable PDF or
// DOCX buffer. Both renderers emit the same logical structure in the
// same field order.
package compose

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatDOCX:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// ContentType returns the MIME type for the download response.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Extension returns the filename extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// block is one line or paragraph of the shared document layout.
type block struct {
	text    string
	heading bool
}

// layout builds the common field sequence both renderers share: heading,
// title, summary label and body, optional translation label (with the
// language tag) and body, then the joined keyword list.
func layout(r *summary.Result) []block {
	blocks := []block{
		{text: "Text Summary", heading: true},
		{text: "Title: " + r.Title},
		{text: "Summary:"},
		{text: r.Summary},
	}
	if r.Translation != nil {
		blocks = append(blocks,
			block{text: fmt.Sprintf("Translation (%s):", r.Language)},
			block{text: *r.Translation},
		)
	}
	blocks = append(blocks, block{text: "Keywords: " + joinKeywords(r.Keywords)})
	return blocks
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// Compose renders the result in the requested format. The returned
// buffer is complete and positioned at the start.
func Compose(r *summary.Result, format Format) (*bytes.Buffer, error) {
	switch format {
	case FormatPDF:
		return composePDF(r)
	case FormatDOCX:
		return composeDOCX(r)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
