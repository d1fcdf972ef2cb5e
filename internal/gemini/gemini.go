// Package gemini wraps the Gemini API behind the two operations the
// orchestrator needs: summarize and translate.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Client struct {
	client        *genai.Client
	model         string
	maxInputRunes int
}

func NewClient(ctx context.Context, apiKey, model string, maxInputRunes int) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: model, maxInputRunes: maxInputRunes}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Summarize asks the model for a JSON object with title, summary and
// keywords. The reply is returned raw: the model is instructed but not
// guaranteed to comply, and the tolerant parsing lives with the caller.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Respond with a JSON object only, no prose and no code fences:
{"title":"...","summary":"...","keywords":["..."]}
Write title, summary and keywords in the same language as the text.

Text:
%s
`, c.capInput(text))

	return c.generate(ctx, prompt)
}

// Translate returns the text translated into the named target language,
// trimmed of surrounding whitespace.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text into %s. Reply with the translation only, no comments or disclaimers.\n\n%s",
		targetLanguage, text)

	out, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text part in Gemini response")
	}
	return b.String(), nil
}

// capInput keeps over-long inputs inside the prompt budget, cutting on a
// sentence boundary when one is close enough.
func (c *Client) capInput(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
	if c.maxInputRunes <= 0 || utf8.RuneCountInString(text) <= c.maxInputRunes {
		return text
	}

	runes := []rune(text)
	trimmed := string(runes[:c.maxInputRunes])
	if idx := strings.LastIndex(trimmed, ". "); idx > c.maxInputRunes/4 {
		trimmed = trimmed[:idx+1]
	}
	return trimmed + "\n[TRUNCATED]"
}
