package compose

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

// composePDF renders the layout as an A4 page-flow document: centered
// bold heading, then flowing paragraphs with spacing between blocks.
func composePDF(r *summary.Result) (*bytes.Buffer, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	blocks := layout(r)
	for i, b := range blocks {
		if b.heading {
			doc.SetFont("Helvetica", "B", 18)
			doc.CellFormat(0, 12, tr(b.text), "", 1, "C", false, 0, "")
			doc.Ln(2)
			continue
		}
		doc.SetFont("Helvetica", "", 12)
		doc.MultiCell(0, 6, tr(b.text), "", "L", false)
		if i < len(blocks)-1 {
			doc.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &buf, nil
}
