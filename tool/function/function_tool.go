//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package function turns a plain Go function into a catalogable tool.
// It is the authoring surface of the framework: the function's input
// struct declares the wire parameters through struct tags, the result
// type declares the output schema, and functional options attach the
// tool-level metadata (name, description, requirements).
package function

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"runtime"
	"strings"

	"trpc.group/trpc-go/trpc-arcade-go/internal/introspect"
	"trpc.group/trpc-go/trpc-arcade-go/internal/naming"
	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

const defaultVersion = "1.0"

// Tool wraps a typed function as a CallableTool. I must be a struct
// whose exported fields carry `json` and `description` tags; O is the
// result type, or struct{} for tools that return nothing.
type Tool[I, O any] struct {
	rawName    string
	definition *tool.ToolDefinition
	codec      *introspect.Codec
	fn         func(context.Context, I) (O, error)
}

// Option configures a Tool under construction.
type Option func(*options)

type options struct {
	name             string
	description      string
	toolkit          string
	version          string
	outputDesc       string
	requiresAuth     *tool.ToolAuthRequirement
	requiresSecrets  []string
	requiresMetadata []string
}

// WithName overrides the tool name. Without it the name is derived
// from the function's own name, converted to PascalCase.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDescription sets the tool description. Every tool must have one.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// WithToolkit assigns the tool to a toolkit; the qualified name
// becomes "<Toolkit>.<Name>".
func WithToolkit(name string) Option {
	return func(o *options) { o.toolkit = name }
}

// WithVersion sets the tool version. Defaults to "1.0".
func WithVersion(version string) Option {
	return func(o *options) { o.version = version }
}

// WithOutputDescription documents the tool's return value.
func WithOutputDescription(description string) Option {
	return func(o *options) { o.outputDesc = description }
}

// WithRequiresAuth declares that the tool needs user authorization
// before it can run.
func WithRequiresAuth(req *tool.ToolAuthRequirement) Option {
	return func(o *options) { o.requiresAuth = req }
}

// WithRequiresSecrets declares the secret keys the host must supply
// in the invocation context.
func WithRequiresSecrets(keys ...string) Option {
	return func(o *options) { o.requiresSecrets = append(o.requiresSecrets, keys...) }
}

// WithRequiresMetadata declares the metadata keys the host must supply
// in the invocation context.
func WithRequiresMetadata(keys ...string) Option {
	return func(o *options) { o.requiresMetadata = append(o.requiresMetadata, keys...) }
}

// New builds a Tool from fn. The entire authoring contract is checked
// here: a missing description, an untagged parameter, an uninferrable
// type or a malformed requirement is a *tool.DefinitionError, caught
// at registration time before any call is ever dispatched.
func New[I, O any](fn func(context.Context, I) (O, error), opts ...Option) (*Tool[I, O], error) {
	o := &options{version: defaultVersion}
	for _, opt := range opts {
		opt(o)
	}

	rawName := o.name
	if rawName == "" {
		rawName = functionName(fn)
	}
	if rawName == "" {
		return nil, tool.NewDefinitionError("", "tool name could not be derived; use WithName")
	}
	name := naming.SnakeToPascal(naming.PascalToSnake(rawName))

	if strings.TrimSpace(o.description) == "" {
		return nil, tool.NewDefinitionError(rawName, "tool is missing a description")
	}

	codec, err := introspect.BuildCodec(rawName, reflect.TypeOf((*I)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	output, err := introspect.InferOutput(reflect.TypeOf((*O)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	output.Description = o.outputDesc

	requirements, err := buildRequirements(rawName, o)
	if err != nil {
		return nil, err
	}
	if requirements.Authorization != nil {
		output.AvailableModes = append(output.AvailableModes, tool.ModeRequiresAuthorization)
	}

	def := &tool.ToolDefinition{
		Name:         name,
		Description:  o.description,
		Version:      o.version,
		Inputs:       tool.ToolInputs{Parameters: codec.Parameters()},
		Output:       *output,
		Requirements: *requirements,
	}
	if o.toolkit != "" {
		def.Toolkit = naming.SnakeToPascal(naming.PascalToSnake(o.toolkit))
	}
	def.FullyQualifiedName = def.QualifiedName()

	return &Tool[I, O]{rawName: rawName, definition: def, codec: codec, fn: fn}, nil
}

// MustNew is like New but panics on a definition error. Intended for
// package-level tool declarations where a malformed definition is a
// programming error.
func MustNew[I, O any](fn func(context.Context, I) (O, error), opts ...Option) *Tool[I, O] {
	t, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Definition implements the tool.Tool interface.
func (t *Tool[I, O]) Definition() *tool.ToolDefinition { return t.definition }

// Call implements the tool.CallableTool interface. It decodes and
// validates the arguments, invokes the wrapped function, and checks
// that the result is expressible on the wire. Failures surface through
// the typed error taxonomy: *tool.InputError for bad arguments,
// *tool.OutputError for a result that violates the declared schema,
// and *tool.ExecutionError (or *tool.RetryableError) from the body.
// Any other error escaping the body is normalized into an
// ExecutionError before the executor's classification layer sees it.
func (t *Tool[I, O]) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	var input I
	if err := t.codec.Decode(jsonArgs, &input); err != nil {
		return nil, err
	}

	result, err := t.fn(ctx, input)
	if err != nil {
		return nil, t.normalizeError(err)
	}

	if t.definition.Output.ValueSchema == nil {
		return nil, nil
	}
	if _, err := json.Marshal(result); err != nil {
		return nil, tool.NewOutputError(
			"tool %s returned a value that does not match its declared output schema: %v",
			t.definition.Name, err)
	}
	return result, nil
}

// normalizeError keeps typed errors intact and wraps everything else,
// so the executor only ever classifies errors from the taxonomy.
func (t *Tool[I, O]) normalizeError(err error) error {
	var (
		retryable *tool.RetryableError
		execution *tool.ExecutionError
		inputErr  *tool.InputError
		outputErr *tool.OutputError
	)
	switch {
	case errors.As(err, &retryable),
		errors.As(err, &execution),
		errors.As(err, &inputErr),
		errors.As(err, &outputErr):
		return err
	default:
		return &tool.ExecutionError{
			Message:          "Error in execution of " + t.definition.Name,
			DeveloperMessage: "Error in " + t.rawName + ": " + err.Error(),
		}
	}
}

// functionName derives the raw tool name from the function symbol,
// e.g. "ListProjects" from mypkg.ListProjects. Anonymous functions
// have no usable name and must use WithName.
func functionName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || strings.HasPrefix(name, "func") {
		return ""
	}
	return name
}

// buildRequirements validates and assembles the declared requirements.
// Secret and metadata keys are de-duplicated case-insensitively, in
// declaration order.
func buildRequirements(rawName string, o *options) (*tool.ToolRequirements, error) {
	req := &tool.ToolRequirements{Authorization: o.requiresAuth}

	secrets, err := normalizeKeys(rawName, "secret", o.requiresSecrets)
	if err != nil {
		return nil, err
	}
	for _, key := range secrets {
		req.Secrets = append(req.Secrets, tool.ToolSecretRequirement{Key: key})
	}

	metadata, err := normalizeKeys(rawName, "metadata", o.requiresMetadata)
	if err != nil {
		return nil, err
	}
	for _, key := range metadata {
		if tool.MetadataKeyRequiresAuth(key) && o.requiresAuth == nil {
			return nil, tool.NewDefinitionError(rawName,
				"metadata key %q requires an auth requirement, but none was declared", key)
		}
		req.Metadata = append(req.Metadata, tool.ToolMetadataRequirement{Key: key})
	}
	return req, nil
}

func normalizeKeys(rawName, kind string, keys []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, tool.NewDefinitionError(rawName, "%s keys must be non-empty", kind)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, key)
	}
	return result, nil
}
