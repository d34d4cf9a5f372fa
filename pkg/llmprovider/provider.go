package llmprovider

import "context"

// Provider is a single LLM backend capable of text completion.
type Provider interface {
	// GenerateText sends one completion request and returns the raw text.
	GenerateText(ctx context.Context, req *Request) (string, error)

	// Name returns the provider name (e.g. "gemini", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized single-turn completion request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response carries the completion text plus provenance.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
