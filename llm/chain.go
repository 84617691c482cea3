package llm

import (
	"context"
	"log"
)

// ChainProvider tries each backend in order and returns the first success.
// Used to model the managed-proxy-first, direct-API-second generation flow.
type ChainProvider struct {
	providers []Provider
}

// NewChainProvider creates a chain over the given providers.
// At least one provider is required.
func NewChainProvider(providers ...Provider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

func (c *ChainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for _, p := range c.providers {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		log.Printf("Provider %s failed: %v", p.Name(), err)
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if lastErr == nil {
		lastErr = &ErrUnavailable{}
	}
	return nil, lastErr
}

func (c *ChainProvider) Name() string {
	return "chain"
}
