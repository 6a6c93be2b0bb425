//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package executor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

func paramDef(params ...tool.InputParameter) *tool.ToolDefinition {
	return &tool.ToolDefinition{
		Name:        "Probe",
		Description: "test tool",
		Inputs:      tool.ToolInputs{Parameters: params},
	}
}

func param(name string, required bool, schema *tool.ValueSchema) tool.InputParameter {
	return tool.InputParameter{
		Name:        name,
		Required:    required,
		Description: name + " parameter",
		ValueSchema: schema,
		Inferrable:  true,
	}
}

func TestValidateInputsTypes(t *testing.T) {
	tests := []struct {
		name   string
		schema *tool.ValueSchema
		value  any
		ok     bool
	}{
		{name: "string ok", schema: &tool.ValueSchema{ValType: tool.TypeString}, value: "x", ok: true},
		{name: "string wrong", schema: &tool.ValueSchema{ValType: tool.TypeString}, value: 1, ok: false},
		{name: "integer int", schema: &tool.ValueSchema{ValType: tool.TypeInteger}, value: 3, ok: true},
		{name: "integer integral float", schema: &tool.ValueSchema{ValType: tool.TypeInteger}, value: 3.0, ok: true},
		{name: "integer fractional float", schema: &tool.ValueSchema{ValType: tool.TypeInteger}, value: 3.5, ok: false},
		{name: "integer json number", schema: &tool.ValueSchema{ValType: tool.TypeInteger}, value: json.Number("12"), ok: true},
		{name: "integer bad json number", schema: &tool.ValueSchema{ValType: tool.TypeInteger}, value: json.Number("1.5"), ok: false},
		{name: "number float", schema: &tool.ValueSchema{ValType: tool.TypeNumber}, value: 3.14, ok: true},
		{name: "number int", schema: &tool.ValueSchema{ValType: tool.TypeNumber}, value: 3, ok: true},
		{name: "number wrong", schema: &tool.ValueSchema{ValType: tool.TypeNumber}, value: "3.14", ok: false},
		{name: "boolean ok", schema: &tool.ValueSchema{ValType: tool.TypeBoolean}, value: true, ok: true},
		{name: "boolean wrong", schema: &tool.ValueSchema{ValType: tool.TypeBoolean}, value: "true", ok: false},
		{
			name:   "array of strings",
			schema: &tool.ValueSchema{ValType: tool.TypeArray, InnerValType: tool.TypeString},
			value:  []any{"a", "b"},
			ok:     true,
		},
		{
			name:   "array with wrong element",
			schema: &tool.ValueSchema{ValType: tool.TypeArray, InnerValType: tool.TypeString},
			value:  []any{"a", 1},
			ok:     false,
		},
		{
			name:   "array wrong shape",
			schema: &tool.ValueSchema{ValType: tool.TypeArray, InnerValType: tool.TypeString},
			value:  "a,b",
			ok:     false,
		},
		{name: "json accepts object", schema: &tool.ValueSchema{ValType: tool.TypeJSON}, value: map[string]any{"k": 1}, ok: true},
		{name: "json accepts scalar", schema: &tool.ValueSchema{ValType: tool.TypeJSON}, value: 7, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := paramDef(param("v", true, tt.schema))
			err := ValidateInputs(def, map[string]any{"v": tt.value})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var ie *tool.InputError
			require.ErrorAs(t, err, &ie)
		})
	}
}

func TestValidateInputsEnums(t *testing.T) {
	stringEnum := &tool.ValueSchema{ValType: tool.TypeString, Enum: []string{"asc", "desc"}}
	def := paramDef(param("sort", true, stringEnum))

	assert.NoError(t, ValidateInputs(def, map[string]any{"sort": "asc"}))

	err := ValidateInputs(def, map[string]any{"sort": "sideways"})
	var ie *tool.InputError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Message, "asc, desc")
	assert.Contains(t, ie.Message, `"sideways"`)

	listEnum := &tool.ValueSchema{
		ValType:      tool.TypeArray,
		InnerValType: tool.TypeString,
		Enum:         []string{"red", "green"},
	}
	def = paramDef(param("colors", true, listEnum))
	assert.NoError(t, ValidateInputs(def, map[string]any{"colors": []any{"red"}}))
	err = ValidateInputs(def, map[string]any{"colors": []any{"red", "blue"}})
	require.ErrorAs(t, err, &ie)
}

func TestValidateInputsPresence(t *testing.T) {
	def := paramDef(
		param("needed", true, &tool.ValueSchema{ValType: tool.TypeString}),
		param("extra", false, &tool.ValueSchema{ValType: tool.TypeInteger}),
	)

	t.Run("optional may be absent", func(t *testing.T) {
		assert.NoError(t, ValidateInputs(def, map[string]any{"needed": "x"}))
	})

	t.Run("nil counts as absent", func(t *testing.T) {
		assert.NoError(t, ValidateInputs(def, map[string]any{"needed": "x", "extra": nil}))

		err := ValidateInputs(def, map[string]any{"needed": nil})
		var ie *tool.InputError
		require.ErrorAs(t, err, &ie)
		assert.Contains(t, ie.Message, `"needed"`)
		assert.Contains(t, ie.Message, "needed parameter")
	})

	t.Run("unknown parameters are sorted", func(t *testing.T) {
		err := ValidateInputs(def, map[string]any{"needed": "x", "zz": 1, "aa": 2})
		var ie *tool.InputError
		require.ErrorAs(t, err, &ie)
		assert.Contains(t, ie.Message, "unknown parameter(s): aa, zz")
	})

	t.Run("no inputs for a no-parameter tool", func(t *testing.T) {
		assert.NoError(t, ValidateInputs(paramDef(), nil))
	})
}
