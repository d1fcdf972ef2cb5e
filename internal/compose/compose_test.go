package compose

import (
	"bytes"
	"strings"
	"testing"
	"time"

	docx "github.com/fumiama/go-docx"

	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
)

func sampleResult(withTranslation bool) *summary.Result {
	r := &summary.Result{
		Title:     "Test Title",
		Summary:   "A short summary body.",
		Keywords:  []string{"alpha", "beta", "gamma"},
		Language:  "en",
		InputText: "original input",
		CreatedAt: time.Now().UTC(),
	}
	if withTranslation {
		tr := "Un court résumé."
		r.Translation = &tr
		r.Language = "French"
	}
	return r
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("pdf"); err != nil {
		t.Errorf("pdf: %v", err)
	}
	if _, err := ParseFormat("docx"); err != nil {
		t.Errorf("docx: %v", err)
	}
	if _, err := ParseFormat("odt"); err == nil {
		t.Error("odt: expected error")
	}
}

func TestLayoutFieldOrder(t *testing.T) {
	blocks := layout(sampleResult(true))

	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.text)
	}
	joined := strings.Join(texts, "\n")

	wantOrder := []string{
		"Text Summary",
		"Title: Test Title",
		"Summary:",
		"A short summary body.",
		"Translation (French):",
		"Un court résumé.",
		"Keywords: alpha, beta, gamma",
	}
	pos := 0
	for _, want := range wantOrder {
		idx := strings.Index(joined[pos:], want)
		if idx < 0 {
			t.Fatalf("missing or out-of-order block %q in:\n%s", want, joined)
		}
		pos += idx + len(want)
	}
}

func TestLayoutSkipsTranslationWhenAbsent(t *testing.T) {
	blocks := layout(sampleResult(false))
	for _, b := range blocks {
		if strings.HasPrefix(b.text, "Translation") {
			t.Errorf("unexpected translation block: %q", b.text)
		}
	}
}

func TestComposePDF(t *testing.T) {
	buf, err := Compose(sampleResult(true), FormatPDF)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty pdf buffer")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("buffer does not start with %%PDF header: %q", buf.Bytes()[:8])
	}
}

func TestComposeDOCXRoundTrip(t *testing.T) {
	res := sampleResult(true)
	buf, err := Compose(res, FormatDOCX)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty docx buffer")
	}

	doc, err := docx.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("parse composed docx: %v", err)
	}

	var texts []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			texts = append(texts, p.String())
		}
	}
	joined := strings.Join(texts, "\n")

	for _, want := range []string{
		res.Title,
		res.Summary,
		*res.Translation,
		"Translation (French):",
		"alpha, beta, gamma",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("composed docx is missing %q in:\n%s", want, joined)
		}
	}
}

func TestComposeDOCXWithoutTranslation(t *testing.T) {
	buf, err := Compose(sampleResult(false), FormatDOCX)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	doc, err := docx.Parse(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("parse composed docx: %v", err)
	}
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			if strings.Contains(p.String(), "Translation") {
				t.Errorf("unexpected translation paragraph: %q", p.String())
			}
		}
	}
}
