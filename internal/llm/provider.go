package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the generative text service. The planner,
// enhancer, and intent analyzer all speak to it; none of them know which
// vendor is behind it.
type Provider interface {
	// Generate sends a single-turn prompt and returns the model's output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON that
	// validated against that schema. Providers make exactly one attempt:
	// callers own the fallback policy.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role, e.g. "expert technical curriculum designer".
	System string

	// Messages is the conversation. Path construction is single-turn, so
	// this normally holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]. Zero value means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "learning-roadmap".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is a JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. With a Schema it is the validated
	// JSON value; without one it is the raw text wrapped as JSON.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
