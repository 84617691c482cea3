package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterRateLimit(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok": true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(resp.Content))
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)

	var unavailable *ErrUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`{"ok": true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)

	// One retry for a malformed response, then give up. The third canned
	// response must never be consumed.
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_ContextCanceledNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: json.RawMessage(`{"ok": true}`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestChain_FallsThroughToNextProvider(t *testing.T) {
	broken := NewMockProvider(MockResponse{Err: &ErrUnavailable{Err: errors.New("down")}})
	healthy := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok": true}`)})

	chain := NewChainProvider(broken, healthy)

	resp, err := chain.Generate(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(resp.Content))
	assert.Equal(t, 1, broken.CallCount())
	assert.Equal(t, 1, healthy.CallCount())
}

func TestChain_AllProvidersFail(t *testing.T) {
	chain := NewChainProvider(
		NewMockProvider(MockResponse{Err: &ErrUnavailable{}}),
		NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}}),
	)

	_, err := chain.Generate(context.Background(), Request{Prompt: "hello"})
	require.Error(t, err)
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
			},
			"required": []any{"title"},
		},
	}

	assert.NoError(t, ValidateAgainstSchema(schema, json.RawMessage(`{"title": "hi"}`)))
	assert.Error(t, ValidateAgainstSchema(schema, json.RawMessage(`{"count": 2}`)))
	assert.Error(t, ValidateAgainstSchema(schema, json.RawMessage(`not json`)))
}
