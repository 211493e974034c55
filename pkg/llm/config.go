// Configuration types and environment-based defaults
package llm

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultModel is used when no model is configured explicitly
	DefaultModel = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	// DefaultRegion is used when no region can be resolved from the
	// environment
	DefaultRegion = "us-east-1"
)

// DefaultTimeout bounds a single completion call when the caller opts in
// via ClientConfig.Timeout and does not override it
const DefaultTimeout = 60 * time.Second

// ClientConfig holds the configuration for creating a Bedrock client
type ClientConfig struct {
	// Profile is the name of a shared AWS credential profile. When empty,
	// the default credential resolution chain is used.
	Profile string `json:"profile,omitempty"`
	// Region is the AWS region the client targets. Required.
	Region string `json:"region"`
	// Model is the default model identifier for completion requests
	Model string `json:"model,omitempty"`
	// Timeout, when non-zero, is the deadline callers should apply to a
	// single completion call. The client itself never retries or cancels.
	Timeout time.Duration `json:"timeout,omitempty"`
	// Extra holds provider-specific overrides, e.g. "bedrock_endpoint"
	// and "bedrock_runtime_endpoint" to point at custom service endpoints
	Extra map[string]string `json:"extra,omitempty"`
}

// parseTimeoutFromEnv parses timeout from environment variable with fallback to default
func parseTimeoutFromEnv(envVar string, defaultTimeout time.Duration) time.Duration {
	if timeoutStr := os.Getenv(envVar); timeoutStr != "" {
		if timeoutSecs, err := strconv.Atoi(timeoutStr); err == nil && timeoutSecs > 0 {
			return time.Duration(timeoutSecs) * time.Second
		}
	}
	return defaultTimeout
}

// ConfigFromEnv builds a ClientConfig from the standard AWS environment
// variables: AWS_PROFILE for the credential profile, AWS_REGION (falling
// back to AWS_DEFAULT_REGION, then DefaultRegion) for the region, and
// BEDROCK_MODEL (falling back to DefaultModel) for the model. The timeout
// can be set in seconds via BEDROCK_TIMEOUT.
func ConfigFromEnv() ClientConfig {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = DefaultRegion
	}

	model := os.Getenv("BEDROCK_MODEL")
	if model == "" {
		model = DefaultModel
	}

	return ClientConfig{
		Profile: os.Getenv("AWS_PROFILE"),
		Region:  region,
		Model:   model,
		Timeout: parseTimeoutFromEnv("BEDROCK_TIMEOUT", DefaultTimeout),
	}
}
