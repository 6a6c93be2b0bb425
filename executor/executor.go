//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package executor runs one tool invocation end to end: it validates
// the caller-supplied inputs against the tool's definition, injects
// the per-invocation context, invokes the tool, and classifies any
// failure into the uniform result envelope. Run is total: whatever
// happens inside the tool, the caller gets a ToolCallOutput and never
// a raw error or panic.
package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"trpc.group/trpc-go/trpc-arcade-go/log"
	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

const instrumentName = "trpc.group/trpc-go/trpc-arcade-go/executor"

// Run executes one invocation of ct with the given inputs. The tool
// context tctx is injected into ctx for the duration of the call and
// discarded afterwards; tools retrieve it via tool.FromContext.
//
// Every path terminates in exactly one of: success, input error,
// output error, retryable runtime error, non-retryable runtime error,
// or internal error. The machinery itself performs no I/O; it suspends
// only inside the tool body, and cancellation follows ctx.
func Run(ctx context.Context, ct tool.CallableTool, tctx *tool.Context, inputs map[string]any) (out *tool.ToolCallOutput) {
	def := ct.Definition()

	tracer := otel.Tracer(instrumentName)
	var span trace.Span
	ctx, span = tracer.Start(ctx, "execute_tool "+def.Name)
	span.SetAttributes(
		attribute.String("arcade.tool.name", def.QualifiedName()),
		attribute.String("arcade.tool.version", def.Version),
	)
	defer span.End()

	// A panicking tool body is an unanticipated failure: the trace is
	// captured for the developer-facing field only, never the message.
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			log.Errorf("tool %s panicked: %v", def.QualifiedName(), r)
			out = tool.Fail(
				"Error in execution of tool "+def.Name,
				fmt.Sprintf("panic: %v", r),
				stack,
			)
		}
	}()

	if err := ValidateInputs(def, inputs); err != nil {
		log.Debugf("tool %s rejected inputs: %v", def.QualifiedName(), err)
		return tool.Fail(err.Error(), "", "")
	}

	args, err := json.Marshal(inputs)
	if err != nil {
		return tool.Fail(
			"Error in execution of tool "+def.Name,
			fmt.Sprintf("could not encode inputs: %v", err),
			"",
		)
	}

	ctx = tool.NewContext(ctx, tctx)
	result, err := ct.Call(ctx, args)
	if err != nil {
		return classify(def, err)
	}
	return tool.Success(result)
}

// classify maps an error from the tool boundary to its envelope.
// Ordered, first match wins: retryable, then the typed taxonomy, then
// everything else as an internal failure.
func classify(def *tool.ToolDefinition, err error) *tool.ToolCallOutput {
	var retryable *tool.RetryableError
	if errors.As(err, &retryable) {
		return tool.FailRetry(
			retryable.Message,
			retryable.DeveloperMessage,
			retryable.AdditionalPromptContent,
			retryable.RetryAfterMS,
		)
	}

	var execution *tool.ExecutionError
	if errors.As(err, &execution) {
		return tool.Fail(execution.Message, execution.DeveloperMessage, "")
	}

	var inputErr *tool.InputError
	if errors.As(err, &inputErr) {
		return tool.Fail(inputErr.Message, "", "")
	}

	var outputErr *tool.OutputError
	if errors.As(err, &outputErr) {
		return tool.Fail(
			fmt.Sprintf("tool %s produced an invalid result", def.Name),
			outputErr.Message,
			"",
		)
	}

	log.Errorf("tool %s failed with an unclassified error: %v", def.QualifiedName(), err)
	return tool.Fail(
		"Error in execution of tool "+def.Name,
		err.Error(),
		"",
	)
}
