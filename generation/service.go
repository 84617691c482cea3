package generation

import (
	"context"
	"encoding/json"
	"log"

	"skillflow/config"
	"skillflow/llm"

	"golang.org/x/sync/singleflight"
)

// Generation limits
const (
	MaxModulesPerCourse = 10
	ModuleQuizQuestions = 5
	CourseQuizQuestions = 10
)

// Generator is the get-or-generate service for module content, quizzes, and
// course outlines. Results are cached in the database; concurrent requests
// for the same key share one in-flight generation.
type Generator struct {
	provider    llm.Provider
	group       singleflight.Group
	maxTokens   int
	temperature float64
}

// Default is the process-wide generator, set up by Init.
var Default *Generator

// New creates a Generator over the given provider. A nil provider is valid
// and serves placeholder content only.
func New(provider llm.Provider) *Generator {
	maxTokens := 4096
	temperature := 0.7
	if config.AppConfig != nil {
		maxTokens = config.AppConfig.GenerationMaxTokens
		temperature = config.AppConfig.GenerationTemperature
	}
	return &Generator{
		provider:    provider,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Init wires the default generator from AppConfig: the managed proxy first,
// direct Gemini second, each with retries.
func Init() {
	var providers []llm.Provider

	if config.AppConfig.GenerationProxyUrl != "" {
		proxy, err := llm.NewProxyProvider(config.AppConfig.GenerationProxyUrl, config.AppConfig.GenerationProxyKey)
		if err != nil {
			log.Printf("Failed to set up generation proxy: %v", err)
		} else {
			providers = append(providers, llm.WithRetry(proxy, llm.DefaultRetryConfig()))
		}
	}

	if config.AppConfig.GeminiApiKey != "" {
		gemini, err := llm.NewGeminiProvider(context.Background(), config.AppConfig.GeminiApiKey, config.AppConfig.GeminiModel)
		if err != nil {
			log.Printf("Failed to set up Gemini provider: %v", err)
		} else {
			providers = append(providers, llm.WithRetry(gemini, llm.DefaultRetryConfig()))
		}
	}

	switch len(providers) {
	case 0:
		log.Println("Generation running in placeholder-only mode.")
		Default = New(nil)
	case 1:
		Default = New(providers[0])
	default:
		Default = New(llm.NewChainProvider(providers...))
	}
}

// generate runs one structured-output request through the provider.
func (g *Generator) generate(ctx context.Context, system, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	if g.provider == nil {
		return nil, &llm.ErrUnavailable{}
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		Schema:      schema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}
