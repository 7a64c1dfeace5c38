package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeClientGenerateCompletion(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody claudeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": " [1] "}]}`))
	}))
	defer srv.Close()

	c := NewClaudeClient("test-key", srv.URL)
	out, err := c.GenerateCompletion(context.Background(), "hello", Options{})
	require.NoError(t, err)
	assert.Equal(t, "[1]", out)
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, claudeModel, gotBody.Model)
	assert.Equal(t, DefaultMaxTokens, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "hello", gotBody.Messages[0].Content)
}

func TestDeepSeekClientGenerateCompletion(t *testing.T) {
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	}))
	defer srv.Close()

	c := NewDeepSeekClient("ds-key", srv.URL)
	out, err := c.GenerateCompletion(context.Background(), "ping", Options{MaxTokens: 50})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer ds-key", gotAuth)
}

func TestOpenAIClientGenerateCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer oa-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "pong"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("oa-key", srv.URL)
	out, err := c.GenerateCompletion(context.Background(), "ping", Options{})
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

// Non-200 statuses surface as errors so the orchestrator can degrade.
func TestClientsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	providers := []Provider{
		NewClaudeClient("k", srv.URL),
		NewDeepSeekClient("k", srv.URL),
		NewOpenAIClient("k", srv.URL),
	}
	for _, p := range providers {
		out, err := p.GenerateCompletion(context.Background(), "x", Options{})
		assert.Error(t, err, "provider %s", p.Name())
		assert.Empty(t, out, "provider %s", p.Name())
	}
}

func TestClientsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	providers := []Provider{
		NewClaudeClient("k", srv.URL),
		NewDeepSeekClient("k", srv.URL),
		NewOpenAIClient("k", srv.URL),
	}
	for _, p := range providers {
		_, err := p.GenerateCompletion(context.Background(), "x", Options{})
		assert.Error(t, err, "provider %s", p.Name())
	}
}

func TestClientsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewDeepSeekClient("k", srv.URL)
	_, err := c.GenerateCompletion(context.Background(), "x", Options{})
	assert.Error(t, err)
}
