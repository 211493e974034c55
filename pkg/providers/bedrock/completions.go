// One-shot convenience entry points
package bedrock

import (
	"context"

	"github.com/inercia/go-bedrock/pkg/llm"
)

// Complete builds a client from config and performs a single plain
// completion. Callers with more than one request should construct a
// Client once and reuse it; a fresh client per call is safe but pays the
// credential resolution cost every time.
func Complete(ctx context.Context, config llm.ClientConfig, req llm.CompletionRequest, opts ...Option) (string, error) {
	client, err := NewClient(ctx, config, opts...)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.Complete(ctx, req)
}

// CompleteStructured builds a client from config and performs a single
// structured completion for the named field
func CompleteStructured(ctx context.Context, config llm.ClientConfig, req llm.CompletionRequest, field string, opts ...Option) (string, error) {
	client, err := NewClient(ctx, config, opts...)
	if err != nil {
		return "", err
	}
	defer client.Close()

	return client.CompleteStructured(ctx, req, field)
}
