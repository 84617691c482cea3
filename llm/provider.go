package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a text-generation backend. Callers describe the JSON
// shape they want via Request.Schema and get validated JSON back; providers
// that cannot do native structured output fall back to extracting a JSON
// substring from free-form text.
type Provider interface {
	// Generate sends a prompt and returns the model output. When the
	// request carries a Schema, the returned Content is JSON that has been
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name identifies the provider for logging.
	Name() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Generation here is always single-turn.
	Prompt string

	// Schema is the JSON Schema the response must conform to. When nil the
	// raw text is returned as-is.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "module-content".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request had
	// a Schema, raw text otherwise.
	Content json.RawMessage

	// Model is the model that served the request.
	Model string
}
