package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultDeepSeekBaseURL = "https://api.deepseek.com"
	deepSeekModel          = "deepseek-chat"
)

// DeepSeekClient talks to DeepSeek's chat completions endpoint, which mirrors
// the OpenAI wire format with Bearer authentication.
type DeepSeekClient struct {
	apiKey  string
	baseURL string
}

func NewDeepSeekClient(apiKey, baseURL string) *DeepSeekClient {
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}
	return &DeepSeekClient{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *DeepSeekClient) Name() string { return "deepseek" }

func (c *DeepSeekClient) GenerateCompletion(ctx context.Context, prompt string, opts Options) (string, error) {
	opts = opts.withDefaults()

	reqBody, err := json.Marshal(chatCompletionRequest{
		Model:       deepSeekModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("deepseek: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepseek: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek: api status %d: %s", resp.StatusCode, body)
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("deepseek: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("deepseek: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("deepseek: API returned empty choices array (raw: %s)", body)
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
