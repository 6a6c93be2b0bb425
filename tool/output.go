//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

// The envelope factory builds the uniform result object every caller
// receives, regardless of transport. Exactly one of Value and Error is
// populated on each envelope; the constructors below are the only way
// the rest of the module builds one.

// Success returns a success envelope wrapping the tool's return value.
// A nil value is reported as an empty string so the envelope always
// carries a serializable value.
func Success(value any) *ToolCallOutput {
	if value == nil {
		value = ""
	}
	return &ToolCallOutput{Value: value}
}

// Fail returns a non-retryable failure envelope. The traceback, when
// present, is developer-facing only and never part of the message.
func Fail(message, developerMessage, traceback string) *ToolCallOutput {
	return &ToolCallOutput{
		Error: &ToolCallError{
			Message:          message,
			DeveloperMessage: developerMessage,
			Traceback:        traceback,
		},
	}
}

// FailRetry returns a retryable failure envelope, optionally carrying
// prompt content for the orchestrating model and a retry delay hint.
func FailRetry(message, developerMessage, additionalPromptContent string, retryAfterMS int64) *ToolCallOutput {
	return &ToolCallOutput{
		Error: &ToolCallError{
			Message:                 message,
			DeveloperMessage:        developerMessage,
			CanRetry:                true,
			AdditionalPromptContent: additionalPromptContent,
			RetryAfterMS:            retryAfterMS,
		},
	}
}
