package bedrock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/inercia/go-bedrock/pkg/llm"
)

// toolNameSuffix derives the tool name for structured mode from the
// requested field name, e.g. "transcription" -> "transcription_output"
const toolNameSuffix = "_output"

// Client is a completion adapter over the AWS Bedrock Converse API
type Client struct {
	runtime ConverseAPI
	control ControlAPI
	model   string
	region  string
	profile string
	logger  *slog.Logger

	// Health check caching
	lastHealthCheck  *time.Time
	lastHealthStatus *bool
}

// Option customizes a Client beyond what ClientConfig covers
type Option func(*Client)

// WithLogger sets the logger used for informational and error entries.
// Logging is a side effect only and never alters the outcome of a call.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithConverseAPI replaces the Bedrock runtime client, mainly for testing
func WithConverseAPI(api ConverseAPI) Option {
	return func(c *Client) {
		c.runtime = api
	}
}

// WithControlAPI replaces the Bedrock control-plane client, mainly for testing
func WithControlAPI(api ControlAPI) Option {
	return func(c *Client) {
		c.control = api
	}
}

// NewClient creates a new AWS Bedrock client. The region is taken from the
// config unconditionally; when a credential profile is set the shared
// config resolver is narrowed to it, otherwise the default resolution
// chain applies.
func NewClient(ctx context.Context, config llm.ClientConfig, opts ...Option) (*Client, error) {
	if config.Region == "" {
		return nil, &llm.Error{
			Code:    "aws_config_error",
			Message: "region is required",
			Type:    llm.ErrTypeValidation,
		}
	}

	c := &Client{
		model:   config.Model,
		region:  config.Region,
		profile: config.Profile,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.runtime != nil && c.control != nil {
		return c, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}
	if config.Profile != "" {
		c.logger.Info("using AWS profile", "profile", config.Profile)
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(config.Profile))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &llm.Error{
			Code:    "aws_config_error",
			Message: fmt.Sprintf("Failed to load AWS configuration: %v", err),
			Type:    llm.ErrTypeAuthentication,
		}
	}

	if c.control == nil {
		c.control = bedrock.NewFromConfig(awsConfig, func(o *bedrock.Options) {
			if endpoint := config.Extra["bedrock_endpoint"]; endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		})
	}
	if c.runtime == nil {
		c.runtime = bedrockruntime.NewFromConfig(awsConfig, func(o *bedrockruntime.Options) {
			if endpoint := config.Extra["bedrock_runtime_endpoint"]; endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
		})
	}

	return c, nil
}

// Complete performs a plain completion request: one user message, an
// optional system block, and the first text content block of the answer.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	input, err := c.buildConverseInput(req)
	if err != nil {
		return "", err
	}

	c.logger.Info("starting completion request",
		"model", aws.ToString(input.ModelId), "region", c.region)

	response, err := c.runtime.Converse(ctx, input)
	if err != nil {
		c.logger.Error("Bedrock API call failed", "error", err)
		return "", c.convertError(err)
	}

	message, err := outputMessage(response)
	if err != nil {
		c.logger.Error("failed to decode Bedrock response", "error", err)
		return "", err
	}

	text, err := textFromContent(message.Content)
	if err != nil {
		c.logger.Error("Bedrock response contains no text content")
		return "", err
	}

	c.logger.Info("received text response", "chars", len(text))
	return text, nil
}

// CompleteStructured performs a completion constrained to a single string
// field. The model is forced to call a tool whose input schema requires
// exactly that field; when the model complies the field value is returned.
// A tool call that lacks the field is skipped, and when no usable tool
// call is found the answer degrades to plain text extraction.
func (c *Client) CompleteStructured(ctx context.Context, req llm.CompletionRequest, field string) (string, error) {
	input, err := c.buildConverseInput(req)
	if err != nil {
		return "", err
	}

	toolConfig, toolName, err := structuredToolConfig(field)
	if err != nil {
		return "", err
	}
	input.ToolConfig = toolConfig

	c.logger.Info("starting structured completion request",
		"model", aws.ToString(input.ModelId), "region", c.region, "field", field)

	response, err := c.runtime.Converse(ctx, input)
	if err != nil {
		c.logger.Error("Bedrock structured API call failed", "error", err)
		return "", c.convertError(err)
	}

	message, err := outputMessage(response)
	if err != nil {
		c.logger.Error("failed to decode Bedrock response", "error", err)
		return "", err
	}

	for _, block := range message.Content {
		toolUse, ok := block.(*types.ContentBlockMemberToolUse)
		if !ok {
			continue
		}
		if aws.ToString(toolUse.Value.Name) != toolName {
			continue
		}
		if text, ok := ExtractStringField(toolUse.Value.Input, field); ok {
			c.logger.Debug("structured output succeeded", "chars", len(text))
			return text, nil
		}
		// The model called the tool but skipped the field. Keep scanning;
		// the text fallback below still applies.
		c.logger.Error("tool use input missing expected field", "field", field)
	}

	c.logger.Debug("no usable tool use block, falling back to text extraction")
	text, err := textFromContent(message.Content)
	if err != nil {
		c.logger.Error("Bedrock response contains no text content")
		return "", err
	}
	return text, nil
}

// GetRemote returns information about the remote service, refreshing the
// cached health status when it is stale
func (c *Client) GetRemote() llm.ClientRemoteInfo {
	info := llm.ClientRemoteInfo{
		Name: "bedrock",
	}

	now := time.Now()
	needsRefresh := c.lastHealthCheck == nil ||
		now.Sub(*c.lastHealthCheck) >= llm.DefaultHealthCheckInterval

	if needsRefresh {
		healthy := c.performHealthCheck()
		c.lastHealthStatus = &healthy
		c.lastHealthCheck = &now
	}

	info.Status = &llm.ClientRemoteInfoStatus{
		Healthy:     c.lastHealthStatus,
		LastChecked: c.lastHealthCheck,
	}

	return info
}

// performHealthCheck performs a simple health check against AWS Bedrock
func (c *Client) performHealthCheck() bool {
	if c.control == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Listing foundation models is the cheapest authenticated call
	_, err := c.control.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	return err == nil
}

// Close cleans up any resources used by the client
func (c *Client) Close() error {
	// AWS SDK clients don't require explicit cleanup
	return nil
}

// buildConverseInput assembles the Converse request: one user-role message
// with a single text block, plus an optional system block kept separate
// from the message list
func (c *Client) buildConverseInput(req llm.CompletionRequest) (*bedrockruntime.ConverseInput, error) {
	if strings.TrimSpace(req.UserPrompt) == "" {
		return nil, &llm.Error{
			Code:    llm.ErrCodeMessageBuild,
			Message: "Failed to build message: user prompt is empty",
			Type:    llm.ErrTypeValidation,
		}
	}

	model := req.Model
	if model == "" {
		model = c.model
	}
	if model == "" {
		return nil, &llm.Error{
			Code:    llm.ErrCodeMessageBuild,
			Message: "Failed to build message: no model configured",
			Type:    llm.ErrTypeValidation,
		}
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(model),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: req.UserPrompt},
				},
			},
		},
	}

	if req.SystemPrompt != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: req.SystemPrompt},
		}
	}

	if req.MaxTokens != nil || req.Temperature != nil || req.TopP != nil {
		inference := &types.InferenceConfiguration{}
		if req.MaxTokens != nil {
			inference.MaxTokens = aws.Int32(int32(*req.MaxTokens))
		}
		if req.Temperature != nil {
			inference.Temperature = req.Temperature
		}
		if req.TopP != nil {
			inference.TopP = req.TopP
		}
		input.InferenceConfig = inference
	}

	return input, nil
}

// structuredToolConfig builds the tool configuration for structured mode:
// one tool whose schema requires exactly the named string field, with the
// tool choice forced to it
func structuredToolConfig(field string) (*types.ToolConfiguration, string, error) {
	if strings.TrimSpace(field) == "" {
		return nil, "", &llm.Error{
			Code:    llm.ErrCodeSchemaBuild,
			Message: "Failed to build tool schema: field name is empty",
			Type:    llm.ErrTypeValidation,
		}
	}

	schema, err := fieldSchema(field, fmt.Sprintf("The cleaned and processed %s text", field))
	if err != nil {
		return nil, "", &llm.Error{
			Code:    llm.ErrCodeSchemaBuild,
			Message: fmt.Sprintf("Failed to build tool schema: %v", err),
			Type:    llm.ErrTypeValidation,
		}
	}

	toolName := field + toolNameSuffix
	toolConfig := &types.ToolConfiguration{
		Tools: []types.Tool{
			&types.ToolMemberToolSpec{
				Value: types.ToolSpecification{
					Name:        aws.String(toolName),
					Description: aws.String(fmt.Sprintf("Output the processed %s text", field)),
					InputSchema: &types.ToolInputSchemaMemberJson{Value: ToDocument(schema)},
				},
			},
		},
		ToolChoice: &types.ToolChoiceMemberTool{
			Value: types.SpecificToolChoice{Name: aws.String(toolName)},
		},
	}

	return toolConfig, toolName, nil
}

// outputMessage unwraps the Converse output into the returned message
func outputMessage(response *bedrockruntime.ConverseOutput) (*types.Message, error) {
	if response == nil || response.Output == nil {
		return nil, &llm.Error{
			Code:    llm.ErrCodeEmptyResponse,
			Message: "Bedrock returned an empty response",
			Type:    llm.ErrTypeAPI,
		}
	}

	message, ok := response.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, &llm.Error{
			Code:    llm.ErrCodeUnexpectedShape,
			Message: "Unexpected response type from Bedrock",
			Type:    llm.ErrTypeAPI,
		}
	}

	return &message.Value, nil
}

// textFromContent returns the first text content block, scanned in order
func textFromContent(content []types.ContentBlock) (string, error) {
	for _, block := range content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}

	return "", &llm.Error{
		Code:    llm.ErrCodeNoTextContent,
		Message: "Bedrock response contains no text content",
		Type:    llm.ErrTypeAPI,
	}
}

// convertError maps transport and service failures onto the adapter error
// model, keeping the underlying description
func (c *Client) convertError(err error) *llm.Error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()
	converted := &llm.Error{
		Code:    llm.ErrCodeRemoteCall,
		Message: fmt.Sprintf("Bedrock API error: %s", errMsg),
		Type:    llm.ErrTypeAPI,
	}

	// Check for authentication errors
	if strings.Contains(errMsg, "UnauthorizedOperation") ||
		strings.Contains(errMsg, "UnrecognizedClientException") ||
		strings.Contains(errMsg, "AuthFailure") {
		converted.Type = llm.ErrTypeAuthentication
		converted.StatusCode = 401
		return converted
	}

	// Check for throttling errors
	if strings.Contains(errMsg, "ThrottlingException") ||
		strings.Contains(errMsg, "TooManyRequestsException") {
		converted.Type = llm.ErrTypeRateLimit
		converted.StatusCode = 429
		return converted
	}

	// Check for model not found
	if strings.Contains(errMsg, "ValidationException") && strings.Contains(errMsg, "model") {
		converted.Type = llm.ErrTypeValidation
		converted.StatusCode = 404
		return converted
	}

	return converted
}
