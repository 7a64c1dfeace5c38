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
	defaultClaudeBaseURL = "https://api.anthropic.com"
	claudeModel          = "claude-3-haiku-20240307"
	anthropicVersion     = "2023-06-01"
)

// ClaudeClient talks to Anthropic's messages endpoint.
type ClaudeClient struct {
	apiKey  string
	baseURL string
}

// NewClaudeClient builds a client. baseURL may be empty to use the default.
func NewClaudeClient(apiKey, baseURL string) *ClaudeClient {
	if baseURL == "" {
		baseURL = defaultClaudeBaseURL
	}
	return &ClaudeClient{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *ClaudeClient) Name() string { return "claude" }

type claudeRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateCompletion sends prompt as a single user turn and returns the first
// content block's text.
func (c *ClaudeClient) GenerateCompletion(ctx context.Context, prompt string, opts Options) (string, error) {
	opts = opts.withDefaults()

	reqBody, err := json.Marshal(claudeRequest{
		Model:       claudeModel,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("claude: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("claude: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude: api status %d: %s", resp.StatusCode, body)
	}

	var cr claudeResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("claude: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("claude: api error: %s", cr.Error.Message)
	}
	if len(cr.Content) == 0 {
		return "", fmt.Errorf("claude: API returned empty content array (raw: %s)", body)
	}
	return strings.TrimSpace(cr.Content[0].Text), nil
}
