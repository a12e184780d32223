package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model("claude-haiku-4-5"),
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) HealthMessage(facts WeatherFacts) (string, error) {
	content, err := c.complete(healthMessagePrompt, healthMessageUserPrompt(facts))
	if err != nil {
		return "", err
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	if parsed.Message == "" {
		return "", fmt.Errorf("empty message in response: %s", content)
	}
	return parsed.Message, nil
}

func (c *AnthropicClient) SummarizeTranscript(title, transcript string) (string, string, error) {
	content, err := c.complete(transcriptSummaryPrompt, transcriptUserPrompt(title, transcript))
	if err != nil {
		return "", "", err
	}

	var parsed struct {
		Summary string `json:"summary"`
		Tagline string `json:"tagline"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", "", fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	return parsed.Summary, parsed.Tagline, nil
}

func (c *AnthropicClient) complete(system, user string) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return cleanJSONResponse(resp.Content[0].Text), nil
}
