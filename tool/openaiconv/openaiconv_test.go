//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package openaiconv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
	"trpc.group/trpc-go/trpc-arcade-go/tool/function"
)

type searchArgs struct {
	Query string   `json:"query" description:"Search query."`
	Sort  string   `json:"sort,omitempty" description:"Sort order." enum:"asc,desc"`
	Tags  []string `json:"tags,omitempty" description:"Tags to filter by."`
	Limit int      `json:"limit" description:"Maximum results."`
}

func searchDefinition(t *testing.T) *tool.ToolDefinition {
	t.Helper()
	ft, err := function.New(
		func(ctx context.Context, args searchArgs) ([]string, error) { return nil, nil },
		function.WithName("search"),
		function.WithDescription("Search the index."),
		function.WithToolkit("Index"),
	)
	require.NoError(t, err)
	return ft.Definition()
}

func TestToolParams(t *testing.T) {
	def := searchDefinition(t)
	params := ToolParams([]*tool.ToolDefinition{def})
	require.Len(t, params, 1)

	fn := params[0].Function
	assert.Equal(t, "Index_Search", fn.Name)
	assert.Equal(t, "Search the index.", fn.Description.Value)

	assert.Equal(t, "object", fn.Parameters["type"])

	properties, ok := fn.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, properties, 4)

	query, ok := properties["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", query["type"])
	assert.Equal(t, "Search query.", query["description"])

	sort, ok := properties["sort"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"asc", "desc"}, sort["enum"])

	tags, ok := properties["tags"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", tags["type"])
	items, ok := tags["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", items["type"])

	limit, ok := properties["limit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", limit["type"])

	required, ok := fn.Parameters["required"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"query", "limit"}, required)
}

func TestFunctionNameWithoutToolkit(t *testing.T) {
	def := &tool.ToolDefinition{Name: "Ping"}
	assert.Equal(t, "Ping", FunctionName(def))
}

func TestJSONTypeMapping(t *testing.T) {
	tests := []struct {
		vt   tool.ValType
		want string
	}{
		{vt: tool.TypeString, want: "string"},
		{vt: tool.TypeInteger, want: "integer"},
		{vt: tool.TypeNumber, want: "number"},
		{vt: tool.TypeBoolean, want: "boolean"},
		{vt: tool.TypeArray, want: "array"},
		{vt: tool.TypeJSON, want: "object"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsonType(tt.vt))
	}
}
