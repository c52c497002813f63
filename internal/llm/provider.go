package llm

import "context"

// Provider is the core abstraction for LLM interaction.
// Quiz generation is single-turn plain text: one prompt in, one text
// payload out. Providers do not interpret the payload.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the raw text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	// Empty is valid; the quiz prompt is self-contained.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the LLM's output.
type Response struct {
	// Text is the raw generated text, uninterpreted.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
