//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

import "context"

// ToolSet is a named collection of tools, typically one per integrated
// third-party service.
type ToolSet interface {
	// Tools returns the tools in the set.
	Tools(context.Context) []CallableTool

	// Name returns the toolkit name used for qualification and
	// conflict resolution.
	Name() string

	// Close releases any resources held by the set.
	Close() error
}

// StaticToolSet is a ToolSet backed by a fixed slice of tools.
type StaticToolSet struct {
	name  string
	tools []CallableTool
}

// NewStaticToolSet creates a ToolSet from the given tools.
func NewStaticToolSet(name string, tools ...CallableTool) *StaticToolSet {
	return &StaticToolSet{name: name, tools: tools}
}

// Tools implements the ToolSet interface.
func (s *StaticToolSet) Tools(context.Context) []CallableTool { return s.tools }

// Name implements the ToolSet interface.
func (s *StaticToolSet) Name() string { return s.name }

// Close implements the ToolSet interface.
func (s *StaticToolSet) Close() error { return nil }

// Filter decides, by fully qualified name, whether a tool stays in a
// filtered tool set.
type Filter func(string) bool

// FilterTools wraps a ToolSet so that only tools accepted by the
// filter are exposed.
func FilterTools(ts ToolSet, filter Filter) ToolSet {
	return &filteredToolSet{original: ts, filter: filter}
}

type filteredToolSet struct {
	original ToolSet
	filter   Filter
}

// Tools returns the filtered tools from the original set.
func (f *filteredToolSet) Tools(ctx context.Context) []CallableTool {
	original := f.original.Tools(ctx)
	if f.filter == nil {
		return original
	}
	var result []CallableTool
	for _, t := range original {
		if f.filter(t.Definition().QualifiedName()) {
			result = append(result, t)
		}
	}
	return result
}

// Close implements the ToolSet interface.
func (f *filteredToolSet) Close() error { return f.original.Close() }

// Name implements the ToolSet interface.
func (f *filteredToolSet) Name() string { return f.original.Name() }

// IncludeNames creates a Filter that keeps only the named tools.
func IncludeNames(names ...string) Filter {
	allowed := make(map[string]bool)
	for _, name := range names {
		allowed[name] = true
	}
	return func(name string) bool { return allowed[name] }
}

// ExcludeNames creates a Filter that drops the named tools.
func ExcludeNames(names ...string) Filter {
	excluded := make(map[string]bool)
	for _, name := range names {
		excluded[name] = true
	}
	return func(name string) bool { return !excluded[name] }
}
