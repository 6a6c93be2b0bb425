//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package openaiconv converts tool definitions into the OpenAI
// function-calling format, so a catalog can be handed directly to a
// chat-completion request.
package openaiconv

import (
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

// ToolParams converts definitions to chat-completion tool parameters.
// Qualified names use "_" instead of "." because OpenAI tool names
// must match ^[a-zA-Z0-9_-]+$.
func ToolParams(defs []*tool.ToolDefinition) []openai.ChatCompletionToolParam {
	result := make([]openai.ChatCompletionToolParam, 0, len(defs))
	for _, def := range defs {
		result = append(result, openai.ChatCompletionToolParam{
			Function: openai.FunctionDefinitionParam{
				Name:        FunctionName(def),
				Description: openai.String(def.Description),
				Parameters:  functionParameters(def),
			},
		})
	}
	return result
}

// FunctionName returns the OpenAI-safe name of a tool.
func FunctionName(def *tool.ToolDefinition) string {
	return strings.ReplaceAll(def.QualifiedName(), tool.NameSeparator, "_")
}

// functionParameters builds the JSON-schema object OpenAI expects for
// a tool's parameters.
func functionParameters(def *tool.ToolDefinition) shared.FunctionParameters {
	properties := make(map[string]any, len(def.Inputs.Parameters))
	var required []string
	for _, p := range def.Inputs.Parameters {
		properties[p.Name] = propertySchema(p.Description, p.ValueSchema)
		if p.Required {
			required = append(required, p.Name)
		}
	}
	params := shared.FunctionParameters{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		params["required"] = required
	}
	return params
}

func propertySchema(description string, vs *tool.ValueSchema) map[string]any {
	prop := map[string]any{"type": jsonType(vs.ValType)}
	if description != "" {
		prop["description"] = description
	}
	if vs.ValType == tool.TypeArray {
		items := map[string]any{"type": jsonType(vs.InnerValType)}
		if len(vs.Enum) > 0 {
			items["enum"] = vs.Enum
		}
		prop["items"] = items
		return prop
	}
	if len(vs.Enum) > 0 {
		prop["enum"] = vs.Enum
	}
	return prop
}

// jsonType maps a wire type to its JSON-schema type literal.
func jsonType(vt tool.ValType) string {
	switch vt {
	case tool.TypeString:
		return "string"
	case tool.TypeInteger:
		return "integer"
	case tool.TypeNumber:
		return "number"
	case tool.TypeBoolean:
		return "boolean"
	case tool.TypeArray:
		return "array"
	default:
		return "object"
	}
}
