package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProxyProvider calls the managed function endpoint that fronts the model
// server-side. The proxy returns free-form text, so the JSON payload is
// extracted from the response and validated here.
type ProxyProvider struct {
	client *resty.Client
	url    string
	apiKey string
}

// NewProxyProvider creates a provider backed by the managed proxy endpoint.
func NewProxyProvider(url, apiKey string) (*ProxyProvider, error) {
	if url == "" {
		return nil, fmt.Errorf("proxy URL is required")
	}

	client := resty.New().SetTimeout(60 * time.Second)

	return &ProxyProvider{client: client, url: url, apiKey: apiKey}, nil
}

type proxyRequest struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type proxyResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Error string `json:"error"`
}

func (p *ProxyProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := proxyRequest{
		System:      req.System,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	r := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if p.apiKey != "" {
		r.SetHeader("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := r.Post(p.url)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{Err: fmt.Errorf("proxy returned 429")}
	case resp.StatusCode() >= 500:
		return nil, &ErrUnavailable{Err: fmt.Errorf("proxy returned %d", resp.StatusCode())}
	case resp.StatusCode() != http.StatusOK:
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("proxy returned %d: %s", resp.StatusCode(), resp.String())}
	}

	var out proxyResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		// Some proxy deployments return the completion as plain text.
		out.Text = resp.String()
	}
	if out.Error != "" {
		return nil, &ErrUnavailable{Err: fmt.Errorf("proxy error: %s", out.Error)}
	}

	content := json.RawMessage(out.Text)
	if req.Schema != nil {
		extracted := ExtractJSON(out.Text)
		if extracted == nil {
			return nil, &ErrInvalidResponse{
				Content: json.RawMessage(out.Text),
				Err:     fmt.Errorf("no JSON payload in proxy response"),
			}
		}
		if err := ValidateAgainstSchema(req.Schema, extracted); err != nil {
			return nil, err
		}
		content = extracted
	}

	return &Response{Content: content, Model: out.Model}, nil
}

func (p *ProxyProvider) Name() string {
	return "proxy"
}
