package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provider(kind, baseURL string) domain.ProviderConfig {
	return domain.ProviderConfig{
		ID:      kind + "-test",
		Name:    "Test",
		Kind:    kind,
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Enabled: true,
	}
}

func TestChat_OpenAIShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("x-api-key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		assert.Equal(t, 0.7, body["temperature"])
		assert.Equal(t, float64(2000), body["max_tokens"])

		messages := body["messages"].([]interface{})
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Equal(t, "Hi", msg["content"])

		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-123",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hello there!"}}]
		}`))
	}))
	defer server.Close()

	client := llm.NewClientWithHTTP(server.Client(), nil)
	reply, err := client.Chat(context.Background(), provider("openai", server.URL+"/v1/"), "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello there!", reply)
}

func TestChat_AnthropicShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"content": [{"type": "text", "text": "Hello from Claude"}]}`))
	}))
	defer server.Close()

	client := llm.NewClientWithHTTP(server.Client(), nil)
	reply, err := client.Chat(context.Background(), provider("anthropic", server.URL), "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello from Claude", reply)
}

func TestChat_UsesProviderGenerationParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 0.2, body["temperature"])
		assert.Equal(t, float64(128), body["max_tokens"])
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	p := provider("deepseek", server.URL)
	temperature, maxTokens := 0.2, 128
	p.Temperature = &temperature
	p.MaxTokens = &maxTokens

	reply, err := llm.NewClientWithHTTP(server.Client(), nil).Chat(context.Background(), p, "Hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestChat_OllamaWithoutKeySendsNoAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "local"}}]}`))
	}))
	defer server.Close()

	p := provider("ollama", server.URL)
	p.APIKey = ""

	reply, err := llm.NewClientWithHTTP(server.Client(), nil).Chat(context.Background(), p, "Hi")
	require.NoError(t, err)
	assert.Equal(t, "local", reply)
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		status   int
		body     string
		wantKind domain.Kind
	}{
		{name: "upstream 401", kind: "openai", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, wantKind: domain.KindUpstream},
		{name: "invalid json", kind: "openai", status: http.StatusOK, body: `not json`, wantKind: domain.KindParse},
		{name: "no choices", kind: "openai", status: http.StatusOK, body: `{"choices": []}`, wantKind: domain.KindEmptyResponse},
		{name: "non-string content", kind: "openai", status: http.StatusOK, body: `{"choices": [{"message": {"content": 42}}]}`, wantKind: domain.KindEmptyResponse},
		{name: "anthropic missing text", kind: "anthropic", status: http.StatusOK, body: `{"content": [{"type": "text"}]}`, wantKind: domain.KindEmptyResponse},
		{name: "anthropic shape sent to openai kind", kind: "openai", status: http.StatusOK, body: `{"content": [{"text": "hi"}]}`, wantKind: domain.KindEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := llm.NewClientWithHTTP(server.Client(), nil).Chat(context.Background(), provider(tt.kind, server.URL), "Hi")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestChat_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	_, err := llm.NewClientWithHTTP(server.Client(), nil).Chat(context.Background(), provider("openai", server.URL), "Hi")

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Equal(t, http.StatusUnauthorized, de.Status)
	assert.Equal(t, `{"error":"bad key"}`, de.Body)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), `{"error":"bad key"}`)
}

func TestChat_UnreachableIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := llm.NewClientWithHTTP(http.DefaultClient, nil).Chat(context.Background(), provider("openai", url), "Hi")
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

func TestChat_UnknownKind(t *testing.T) {
	_, err := llm.NewClientWithHTTP(http.DefaultClient, nil).Chat(context.Background(), provider("mystery", "http://localhost"), "Hi")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestApplyDefaults(t *testing.T) {
	p, err := llm.ApplyDefaults(domain.ProviderConfig{ID: "a", Kind: "anthropic"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.anthropic.com/v1", p.BaseURL)
	assert.Equal(t, "claude-3-5-sonnet-20241022", p.Model)

	p, err = llm.ApplyDefaults(domain.ProviderConfig{ID: "b", Kind: "openai", BaseURL: "https://proxy.local/v1", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.local/v1", p.BaseURL)
	assert.Equal(t, "gpt-4o", p.Model)

	_, err = llm.ApplyDefaults(domain.ProviderConfig{ID: "c", Kind: "mystery"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"anthropic", "custom", "deepseek", "ollama", "openai"}, llm.Kinds())
}

func TestRequiresKey(t *testing.T) {
	for kind, want := range map[string]bool{"openai": true, "deepseek": true, "anthropic": true, "custom": true, "ollama": false} {
		d, err := llm.Get(kind)
		require.NoError(t, err)
		assert.Equal(t, want, d.RequiresKey(), kind)
	}
}
