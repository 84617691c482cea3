package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizSchema() *Schema {
	return &Schema{
		Name: "proxy-test-quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
			},
			"required": []any{"question"},
		},
	}
}

func TestProxyProvider_StructuredResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req proxyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "generate a question", req.Prompt)

		json.NewEncoder(w).Encode(proxyResponse{
			Text:  "Sure:\n```json\n{\"question\": \"What is Go?\"}\n```",
			Model: "test-model",
		})
	}))
	defer srv.Close()

	p, err := NewProxyProvider(srv.URL, "test-key")
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		Prompt: "generate a question",
		Schema: quizSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question": "What is Go?"}`, string(resp.Content))
	assert.Equal(t, "test-model", resp.Model)
}

func TestProxyProvider_RateLimitMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p, err := NewProxyProvider(srv.URL, "")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "hi"})
	var rateLimited *ErrRateLimit
	assert.ErrorAs(t, err, &rateLimited)
}

func TestProxyProvider_ServerErrorMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p, err := NewProxyProvider(srv.URL, "")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "hi"})
	var unavailable *ErrUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestProxyProvider_SchemaMismatchIsInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(proxyResponse{Text: `{"answer": 42}`, Model: "test-model"})
	}))
	defer srv.Close()

	p, err := NewProxyProvider(srv.URL, "")
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "hi", Schema: quizSchema()})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestProxyProvider_RequiresURL(t *testing.T) {
	_, err := NewProxyProvider("", "key")
	assert.Error(t, err)
}
