//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	def *ToolDefinition
}

func (s *stubTool) Definition() *ToolDefinition { return s.def }

func (s *stubTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	return nil, nil
}

func newStub(toolkit, name string) *stubTool {
	return &stubTool{def: &ToolDefinition{Name: name, Toolkit: toolkit, Description: name}}
}

func TestStaticToolSet(t *testing.T) {
	a, b := newStub("Kit", "A"), newStub("Kit", "B")
	ts := NewStaticToolSet("Kit", a, b)

	assert.Equal(t, "Kit", ts.Name())
	assert.Len(t, ts.Tools(context.Background()), 2)
	assert.NoError(t, ts.Close())
}

func TestFilterTools(t *testing.T) {
	a, b, c := newStub("Kit", "A"), newStub("Kit", "B"), newStub("Kit", "C")
	ts := NewStaticToolSet("Kit", a, b, c)

	t.Run("include", func(t *testing.T) {
		filtered := FilterTools(ts, IncludeNames("Kit.A", "Kit.C"))
		tools := filtered.Tools(context.Background())
		require.Len(t, tools, 2)
		assert.Equal(t, "A", tools[0].Definition().Name)
		assert.Equal(t, "C", tools[1].Definition().Name)
	})

	t.Run("exclude", func(t *testing.T) {
		filtered := FilterTools(ts, ExcludeNames("Kit.B"))
		tools := filtered.Tools(context.Background())
		require.Len(t, tools, 2)
	})

	t.Run("nil filter passes everything", func(t *testing.T) {
		filtered := FilterTools(ts, nil)
		assert.Len(t, filtered.Tools(context.Background()), 3)
	})

	t.Run("name and close delegate", func(t *testing.T) {
		filtered := FilterTools(ts, IncludeNames())
		assert.Equal(t, "Kit", filtered.Name())
		assert.NoError(t, filtered.Close())
	})
}
