// Error types and handling
package llm

import "errors"

// Error represents a standardized LLM error
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Stable error codes reported by the Bedrock completion adapter.
// Every failure of a completion call carries exactly one of these.
const (
	// ErrCodeMessageBuild indicates the outbound message could not be
	// constructed from the supplied prompts.
	ErrCodeMessageBuild = "message_build_failed"
	// ErrCodeSchemaBuild indicates the tool input schema for structured
	// mode could not be constructed.
	ErrCodeSchemaBuild = "schema_build_failed"
	// ErrCodeRemoteCall indicates the transport or the remote service
	// rejected or could not complete the request.
	ErrCodeRemoteCall = "remote_call_failed"
	// ErrCodeEmptyResponse indicates the remote call succeeded but
	// returned no output payload.
	ErrCodeEmptyResponse = "empty_response"
	// ErrCodeUnexpectedShape indicates the response output is not a
	// message.
	ErrCodeUnexpectedShape = "unexpected_response_shape"
	// ErrCodeNoTextContent indicates the returned message contains no
	// text content block (and, in structured mode, no usable tool field).
	ErrCodeNoTextContent = "no_text_content"
)

// Error type classifications, used alongside the codes above
const (
	ErrTypeValidation     = "validation_error"
	ErrTypeAuthentication = "authentication_error"
	ErrTypeRateLimit      = "rate_limit_error"
	ErrTypeAPI            = "api_error"
)

// ErrorCode returns the adapter error code carried by err, or the empty
// string if err is not an *Error
func ErrorCode(err error) string {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Code
	}
	return ""
}
