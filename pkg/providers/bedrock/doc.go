// Package bedrock implements the completion adapter for AWS Bedrock.
//
// The client sends single-turn chat completions through the Bedrock
// Converse API and returns the model's answer as a plain string. Two
// operations are provided:
//
//   - Complete: prompt in, first text content block out
//   - CompleteStructured: prompt in, one named string field out, extracted
//     from a forced tool call; falls back to plain text extraction when the
//     model does not comply with the tool choice
//
// Usage:
//
//	client, err := bedrock.NewClient(ctx, llm.ClientConfig{
//	    Profile: "work",
//	    Region:  "us-east-1",
//	    Model:   "anthropic.claude-3-5-sonnet-20240620-v1:0",
//	})
//
// Authentication uses the AWS SDK's default credential chain, optionally
// narrowed to a named shared credential profile. The client performs a
// single request per call: no retries, no streaming and no conversation
// state. Timeouts and cancellation are the caller's responsibility via the
// context passed to each call.
package bedrock
