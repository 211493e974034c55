// Core request types and remote status reporting
package llm

import "time"

// DefaultHealthCheckInterval defines how often health checks should be
// refreshed to avoid excessive API calls to the remote provider
const DefaultHealthCheckInterval = 5 * time.Minute

// CompletionRequest represents a single completion exchange: one optional
// system prompt and one user prompt. There is no multi-turn state; every
// request stands on its own.
type CompletionRequest struct {
	// Model overrides the client's configured model when non-empty
	Model string `json:"model,omitempty"`
	// SystemPrompt, when non-empty, is sent as a separate system-level
	// content block. It is never concatenated into the user content.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// UserPrompt is the user message text. Required.
	UserPrompt string `json:"user_prompt"`

	// Optional sampling parameters forwarded to the model
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	TopP        *float32 `json:"top_p,omitempty"`
}

// ClientRemoteInfo represents information about a remote client
type ClientRemoteInfo struct {
	Name   string
	Status *ClientRemoteInfoStatus
}

// ClientRemoteInfoStatus represents the status of a remote client
type ClientRemoteInfoStatus struct {
	Healthy     *bool
	LastChecked *time.Time
}
