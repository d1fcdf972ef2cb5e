// Package translate chains the primary model translation with an
// optional OpenAI fallback. The fallback fires once per action when the
// primary call fails and an OpenAI key is configured; there is no retry
// of either provider.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
)

// Func is a single translation operation.
type Func func(ctx context.Context, text, targetLanguage string) (string, error)

type Chain struct {
	primary   Func
	openaiKey string
	timeout   time.Duration
}

func NewChain(primary Func, openaiKey string) *Chain {
	return &Chain{primary: primary, openaiKey: openaiKey, timeout: 20 * time.Second}
}

func (c *Chain) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	out, err := c.primary(ctx, text, targetLanguage)
	if err == nil && out != "" {
		return out, nil
	}

	if c.openaiKey == "" {
		if err == nil {
			err = errors.New("empty translation from primary model")
		}
		return "", err
	}

	logger.Warn("primary translation failed, falling back to OpenAI",
		"target", targetLanguage, "error", err)
	return c.translateWithOpenAI(ctx, text, targetLanguage)
}

func (c *Chain) translateWithOpenAI(ctx context.Context, text, targetLanguage string) (string, error) {
	client := openai.NewClient(c.openaiKey)

	prompt := fmt.Sprintf(`Translate the following text to %s.
Keep the meaning and tone of the original.
Translate only the text itself, without additional comments.

Text to translate:
%s`, targetLanguage, text)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxCompletionTokens: 2000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
