// Package llm implements the LLM-backed agents of the generation pipelines:
// entry curation, article drafting, script writing and visualization coding.
// All agents talk to the same OpenAI-compatible endpoint.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/newsdraft/newsdraft/pkg/config"
)

// newClient builds an OpenAI-compatible client from config
func newClient(cfg config.LLMConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(clientConfig)
}

// chat sends a single system+user exchange and returns the response text.
// jsonMode switches the endpoint to JSON object responses when the model
// supports it.
func chat(ctx context.Context, client *openai.Client, cfg config.LLMConfig, systemMsg, userMsg string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMsg,
			},
		},
	}

	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return resp.Choices[0].Message.Content, nil
}

// truncate cuts s at limit characters, appending an ellipsis when cut
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
