// Package extract converts uploaded file bytes into plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType reports a file extension outside {.docx, .pdf, .txt}.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extract returns the plain text of a .docx, .pdf or .txt file. The
// dispatch is by lowercased filename extension. Failures return an empty
// string together with the error; the HTTP layer shows the same warning
// for every failure kind, but callers that need to distinguish can.
func Extract(data []byte, filename string) (text string, err error) {
	// The underlying parsers can panic on malformed input.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse %s: %v", filepath.Ext(filename), r)
		}
	}()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return extractDocx(data)
	case ".pdf":
		return extractPDF(data)
	case ".txt":
		// Invalid UTF-8 sequences are dropped, not replaced.
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", ErrUnsupportedType
	}
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			parts = append(parts, p.String())
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			parts = append(parts, "")
			continue
		}
		// Pages that yield no text contribute an empty line, matching
		// the joined-with-newlines contract.
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
