//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

import "fmt"

// DefinitionError reports a violation of the tool authoring contract.
// It is raised only while a definition is being built or registered,
// never during a call.
type DefinitionError struct {
	// Tool is the raw name of the offending tool, when known.
	Tool string

	// Reason explains the violation.
	Reason string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Tool == "" {
		return "tool definition error: " + e.Reason
	}
	return fmt.Sprintf("tool %s definition error: %s", e.Tool, e.Reason)
}

// NewDefinitionError creates a DefinitionError for the given tool.
func NewDefinitionError(toolName, format string, args ...any) *DefinitionError {
	return &DefinitionError{Tool: toolName, Reason: fmt.Sprintf(format, args...)}
}

// ExecutionError is a terminal failure signalled by a tool body, e.g.
// "not found". It is not retryable.
type ExecutionError struct {
	// Message is the user-facing error message.
	Message string

	// DeveloperMessage carries developer-facing detail. It is never
	// shown to the end caller.
	DeveloperMessage string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string { return e.Message }

// NewExecutionError creates a non-retryable execution error.
func NewExecutionError(message, developerMessage string) *ExecutionError {
	return &ExecutionError{Message: message, DeveloperMessage: developerMessage}
}

// RetryableError signals a transient condition, e.g. rate limiting or
// an ambiguous reference that needs disambiguation. The executor marks
// the resulting envelope retryable.
type RetryableError struct {
	ExecutionError

	// AdditionalPromptContent is instructional text to feed back into
	// the orchestrating model before retrying.
	AdditionalPromptContent string

	// RetryAfterMS hints how long to wait before retrying. Zero means
	// no hint.
	RetryAfterMS int64
}

// NewRetryableError creates a retryable execution error.
func NewRetryableError(message, additionalPromptContent string, retryAfterMS int64) *RetryableError {
	return &RetryableError{
		ExecutionError:          ExecutionError{Message: message},
		AdditionalPromptContent: additionalPromptContent,
		RetryAfterMS:            retryAfterMS,
	}
}

// InputError reports that caller-supplied arguments failed validation
// against the tool's input schema. Not retryable automatically, but it
// carries field-level diagnostics so an LLM caller can self-correct.
type InputError struct {
	// Message names the failing field(s) and the mismatch.
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string { return e.Message }

// NewInputError creates an input validation error.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// OutputError reports that a tool's return value does not match its
// declared output schema. This indicates a bug in the tool, not a bad
// caller, so the detail is developer-facing.
type OutputError struct {
	// Message states the mismatch between declared and actual schema.
	Message string
}

// Error implements the error interface.
func (e *OutputError) Error() string { return e.Message }

// NewOutputError creates an output validation error.
func NewOutputError(format string, args ...any) *OutputError {
	return &OutputError{Message: fmt.Sprintf(format, args...)}
}
