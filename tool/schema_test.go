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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		name string
		def  ToolDefinition
		want string
	}{
		{
			name: "explicit fully qualified name wins",
			def:  ToolDefinition{Name: "Add", Toolkit: "Math", FullyQualifiedName: "Other.Add"},
			want: "Other.Add",
		},
		{
			name: "derived from toolkit",
			def:  ToolDefinition{Name: "Add", Toolkit: "Math"},
			want: "Math.Add",
		},
		{
			name: "bare tool",
			def:  ToolDefinition{Name: "Add"},
			want: "Add",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.def.QualifiedName())
		})
	}
}

func TestMetadataKeyRequiresAuth(t *testing.T) {
	assert.True(t, MetadataKeyRequiresAuth(MetadataKeyClientID))
	assert.False(t, MetadataKeyRequiresAuth(MetadataKeyCoordinatorURL))
	assert.False(t, MetadataKeyRequiresAuth("tenant"))
}
