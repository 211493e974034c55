// Package llm provides the shared types for the go-bedrock completion adapter.
//
// This package defines the provider-agnostic building blocks used by the
// Bedrock client in /pkg/providers/bedrock:
//
// - Configuration: credential profile, region and model selection
// - CompletionRequest: a single prompt exchange (system + user prompt)
// - Error handling: standardized error types with stable error codes
// - Remote info: cached health status reporting for the remote service
//
// The provider implementation lives in a separate package under
// /pkg/providers/ to maintain clean separation of concerns and avoid
// import cycles.
package llm
