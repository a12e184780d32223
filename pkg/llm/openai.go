package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) HealthMessage(facts WeatherFacts) (string, error) {
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

func (c *OpenAIClient) SummarizeTranscript(title, transcript string) (string, string, error) {
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

func (c *OpenAIClient) complete(system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return cleanJSONResponse(resp.Choices[0].Message.Content), nil
}
