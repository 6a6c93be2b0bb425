//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

// NameSeparator joins a toolkit name and a tool name into a fully
// qualified tool name, e.g. "GitHub.ListRepositories".
const NameSeparator = "."

// ValType enumerates the wire types a tool parameter or output value
// may carry. The wire format is shared with every transport, so the
// literals here are part of the public contract.
type ValType string

// Wire type constants.
const (
	TypeString  ValType = "string"
	TypeInteger ValType = "integer"
	TypeNumber  ValType = "number"
	TypeBoolean ValType = "boolean"
	TypeJSON    ValType = "json"
	TypeArray   ValType = "array"
)

// ValueSchema describes the wire type of a single value. It is
// immutable once constructed.
type ValueSchema struct {
	// ValType is the wire type of the value.
	ValType ValType `json:"val_type"`

	// InnerValType is the element type when ValType is "array".
	InnerValType ValType `json:"inner_val_type,omitempty"`

	// Enum lists the allowed string values when the value is a closed
	// set. Order is preserved from the declaration.
	Enum []string `json:"enum,omitempty"`
}

// InputParameter describes one wire-visible parameter of a tool.
type InputParameter struct {
	// Name matches the underlying parameter name and is unique within
	// a tool.
	Name string `json:"name"`

	// Required reports whether a caller must supply this parameter.
	Required bool `json:"required"`

	// Description is a human-readable explanation of the parameter.
	// Every parameter must have one; its absence is a definition error.
	Description string `json:"description"`

	// ValueSchema is the wire schema of the parameter value.
	ValueSchema *ValueSchema `json:"value_schema"`

	// Inferrable reports whether an orchestrating model may supply this
	// value without explicit user input. Defaults to true.
	Inferrable bool `json:"inferrable"`
}

// ToolInputs is the ordered list of parameters a tool accepts. The
// order is significant: it matches the declaration order of the
// underlying input type and generated documentation relies on it.
type ToolInputs struct {
	Parameters []InputParameter `json:"parameters"`
}

// Output modes.
const (
	ModeValue                 = "value"
	ModeError                 = "error"
	ModeNull                  = "null"
	ModeArtifact              = "artifact"
	ModeRequiresAuthorization = "requires_authorization"
)

// ToolOutput describes what a tool returns.
type ToolOutput struct {
	// Description is a human-readable explanation of the output.
	Description string `json:"description,omitempty"`

	// AvailableModes lists the terminal modes the output may take.
	AvailableModes []string `json:"available_modes"`

	// ValueSchema is the wire schema of the returned value. It is nil
	// only when the tool returns nothing.
	ValueSchema *ValueSchema `json:"value_schema,omitempty"`
}

// OAuth2Requirement carries the OAuth 2.0 details of an authorization
// requirement.
type OAuth2Requirement struct {
	// Authority is the fixed authorization URL, when the provider
	// requires one.
	Authority string `json:"authority,omitempty"`

	// Scopes are the OAuth scopes the tool needs.
	Scopes []string `json:"scopes,omitempty"`
}

// ToolAuthRequirement declares that a tool needs user authorization
// before it can run.
type ToolAuthRequirement struct {
	// Provider identifies the authorization provider, e.g. "google".
	Provider string `json:"provider"`

	// OAuth2 carries provider OAuth details, if any.
	OAuth2 *OAuth2Requirement `json:"oauth2,omitempty"`
}

// ToolSecretRequirement names one secret key the hosting environment
// must supply at call time.
type ToolSecretRequirement struct {
	Key string `json:"key"`
}

// ToolMetadataRequirement names one metadata key the hosting
// environment must supply at call time.
type ToolMetadataRequirement struct {
	Key string `json:"key"`
}

// Metadata keys with special handling.
const (
	// MetadataKeyClientID is only meaningful for tools that declare an
	// authorization requirement.
	MetadataKeyClientID = "client_id"

	// MetadataKeyCoordinatorURL points the tool at its coordinating
	// service.
	MetadataKeyCoordinatorURL = "coordinator_url"
)

// MetadataKeyRequiresAuth reports whether the given metadata key is
// only valid on tools that also declare an authorization requirement.
func MetadataKeyRequiresAuth(key string) bool {
	return key == MetadataKeyClientID
}

// ToolRequirements aggregates everything a tool needs from the host
// before it can run.
type ToolRequirements struct {
	// Authorization is the authorization requirement, if any.
	Authorization *ToolAuthRequirement `json:"authorization,omitempty"`

	// Secrets are the secret keys the host must supply, in declaration
	// order.
	Secrets []ToolSecretRequirement `json:"secrets,omitempty"`

	// Metadata are the metadata keys the host must supply, in
	// declaration order.
	Metadata []ToolMetadataRequirement `json:"metadata,omitempty"`
}

// ToolDefinition is the structural (wire) schema of a tool: its name,
// parameters, output, and requirements. It is what a "list tools"
// endpoint serializes.
type ToolDefinition struct {
	// Name is the PascalCase tool name.
	Name string `json:"name"`

	// FullyQualifiedName is "<Toolkit>.<Name>", or just Name when the
	// tool does not belong to a toolkit.
	FullyQualifiedName string `json:"fully_qualified_name"`

	// Description explains what the tool does. Mandatory.
	Description string `json:"description"`

	// Toolkit is the PascalCase toolkit name, if any.
	Toolkit string `json:"toolkit,omitempty"`

	// Version is the caller-supplied tool version, e.g. "1.0".
	Version string `json:"version"`

	Inputs       ToolInputs       `json:"inputs"`
	Output       ToolOutput       `json:"output"`
	Requirements ToolRequirements `json:"requirements"`
}

// QualifiedName returns the fully qualified name, deriving it from the
// toolkit and tool names when the explicit field is unset.
func (d *ToolDefinition) QualifiedName() string {
	if d.FullyQualifiedName != "" {
		return d.FullyQualifiedName
	}
	if d.Toolkit != "" {
		return d.Toolkit + NameSeparator + d.Name
	}
	return d.Name
}

// ToolVersion names a tool and, optionally, the version to call.
type ToolVersion struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// ToolCallRequest is one invocation request as received from a hosting
// transport.
type ToolCallRequest struct {
	// InvocationID is the globally unique ID for this invocation. The
	// catalog generates one when the caller leaves it empty.
	InvocationID string `json:"invocation_id,omitempty"`

	// Tool names the tool (and optionally the version) to invoke.
	Tool ToolVersion `json:"tool"`

	// Inputs are the raw caller-supplied arguments.
	Inputs map[string]any `json:"inputs,omitempty"`

	// Context carries authorization, secrets and metadata for this
	// invocation. Created fresh per call, never persisted.
	Context *Context `json:"context,omitempty"`
}

// ToolCallError is the structured error half of a ToolCallOutput.
type ToolCallError struct {
	// Message is the user-facing error message. It never contains a
	// stack trace.
	Message string `json:"message"`

	// DeveloperMessage carries developer-facing detail.
	DeveloperMessage string `json:"developer_message,omitempty"`

	// CanRetry reports whether re-invoking the tool may succeed.
	CanRetry bool `json:"can_retry"`

	// AdditionalPromptContent is extra instructional text meant to be
	// re-fed to an orchestrating model before a retry.
	AdditionalPromptContent string `json:"additional_prompt_content,omitempty"`

	// RetryAfterMS hints how long to wait before retrying, in
	// milliseconds. Zero means no hint.
	RetryAfterMS int64 `json:"retry_after_ms,omitempty"`

	// Traceback is the captured stack trace for internal failures. It
	// is developer-facing only.
	Traceback string `json:"traceback,omitempty"`
}

// ToolCallOutput is the terminal result of one invocation. Exactly one
// of Value and Error is populated.
type ToolCallOutput struct {
	// Value is the value returned by the tool on success.
	Value any `json:"value,omitempty"`

	// Error describes the failure, if the invocation failed.
	Error *ToolCallError `json:"error,omitempty"`
}

// ToolCallResponse is the transport-level reply to one invocation.
type ToolCallResponse struct {
	// InvocationID is the globally unique ID for this invocation.
	InvocationID string `json:"invocation_id"`

	// DurationMS is how long the invocation took, in milliseconds.
	DurationMS float64 `json:"duration_ms"`

	// FinishedAt is the ISO-8601 timestamp when the invocation ended.
	FinishedAt string `json:"finished_at"`

	// Success reports whether the invocation produced a value.
	Success bool `json:"success"`

	// Output is the uniform result envelope.
	Output *ToolCallOutput `json:"output"`
}
