package compose

import (
	"bytes"
	"fmt"

	docx "github.com/fumiama/go-docx"

	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

const (
	docxBodySize    = "24" // half-points: 12pt
	docxHeadingSize = "36" // 18pt
)

// composeDOCX renders the layout as a heading followed by a paragraph
// sequence.
func composeDOCX(r *summary.Result) (*bytes.Buffer, error) {
	doc := docx.New().WithDefaultTheme()

	for _, b := range layout(r) {
		p := doc.AddParagraph()
		if b.heading {
			p.Justification("center")
			p.AddText(b.text).Size(docxHeadingSize).Bold()
			continue
		}
		p.AddText(b.text).Size(docxBodySize)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render docx: %w", err)
	}
	return &buf, nil
}
