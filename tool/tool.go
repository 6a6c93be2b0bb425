//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package tool defines the wire schema, error taxonomy and interfaces
// shared by every tool in the catalog.
package tool

import "context"

// Tool is anything that can describe itself with a ToolDefinition.
type Tool interface {
	// Definition returns the structural schema describing the tool.
	Definition() *ToolDefinition
}

// CallableTool is a tool that can be invoked. Call receives the
// JSON-encoded, already validated arguments and returns the raw result
// value. Implementations classify their own failures through the typed
// errors in this package; anything else is treated as an internal
// failure by the executor.
type CallableTool interface {
	Tool

	// Call invokes the tool. The supplied context carries cancellation
	// from the hosting transport plus the injected per-invocation
	// *Context, retrievable via FromContext.
	Call(ctx context.Context, jsonArgs []byte) (any, error)
}

// Enumerated is implemented by named string types whose values form a
// closed set. The introspector maps such types to a string schema with
// the enum populated, preserving order and case.
type Enumerated interface {
	EnumValues() []string
}
