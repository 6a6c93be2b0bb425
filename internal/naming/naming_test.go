//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeToPascal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "list_projects", want: "ListProjects"},
		{name: "single word", in: "add", want: "Add"},
		{name: "already pascal", in: "ListProjects", want: "ListProjects"},
		{name: "digits", in: "get_v2_items", want: "GetV2Items"},
		{name: "empty", in: "", want: ""},
		{name: "trailing underscore", in: "add_", want: "Add"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeToPascal(tt.in))
		})
	}
}

func TestPascalToSnake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "ListProjects", want: "list_projects"},
		{name: "single word", in: "Add", want: "add"},
		{name: "acronym", in: "HTTPServer", want: "http_server"},
		{name: "digit boundary", in: "GetV2Items", want: "get_v2_items"},
		{name: "already snake", in: "list_projects", want: "list_projects"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PascalToSnake(tt.in))
		})
	}
}

func TestRoundTripStableForSimpleNames(t *testing.T) {
	// Normalizing twice changes nothing: the pair of conversions is a
	// fixpoint for names without acronym runs.
	for _, name := range []string{"add", "list_projects", "get_user_by_id"} {
		once := SnakeToPascal(name)
		assert.Equal(t, once, SnakeToPascal(PascalToSnake(once)))
	}
}
