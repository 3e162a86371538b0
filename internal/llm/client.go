// Package llm calls the text generation and evaluation endpoints.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the OpenAI-compatible Groq endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the chat model used for both generation and evaluation.
	DefaultModel = "openai/gpt-oss-120b"
)

// Client issues the two blocking operations the trainer needs. Both are
// single-attempt; the caller bounds them with a context deadline.
type Client interface {
	GenerateText(ctx context.Context, length int) (string, error)
	EvaluateSummary(ctx context.Context, original, summary string) (string, error)
	ValidateCredentials(ctx context.Context) error
}

// ChatClient talks to an OpenAI-compatible chat-completions API.
type ChatClient struct {
	client *openai.Client
	model  string
}

// New builds a ChatClient for the given endpoint. Empty baseURL and model
// fall back to the Groq defaults.
func New(apiKey, baseURL, model string) *ChatClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &ChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// ValidateCredentials checks the API key with a lightweight models call.
func (c *ChatClient) ValidateCredentials(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}
	return nil
}

// GenerateText requests a reading passage of roughly `length` characters.
func (c *ChatClient) GenerateText(ctx context.Context, length int) (string, error) {
	prompt := fmt.Sprintf(
		"Write an informative, self-contained passage of roughly %d characters on a "+
			"topic of general interest (science, history, technology, or culture). "+
			"Output only the passage text, no title and no commentary.", length)
	return c.complete(ctx, prompt)
}

// EvaluateSummary asks the evaluator to score a summary against its passage.
func (c *ChatClient) EvaluateSummary(ctx context.Context, original, summary string) (string, error) {
	prompt := fmt.Sprintf(`Evaluate how well the summary condenses the passage.

Respond with exactly these lines:
IMPORTANCE: <1-5, coverage of the key points>
CONCISENESS: <1-5>
ACCURACY: <1-5>
IMPROVEMENT1: <one concrete suggestion>
IMPROVEMENT2: <one concrete suggestion>
IMPROVEMENT3: <one concrete suggestion>
OVERALL: <PASS or FAIL>

# Passage
%s

# Summary
%s`, original, summary)
	return c.complete(ctx, prompt)
}

func (c *ChatClient) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("api request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("api response contained no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("api response was empty")
	}
	return content, nil
}
