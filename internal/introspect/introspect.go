//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package introspect derives wire schemas from Go types. It maps the
// exported fields of a tool's input struct to InputParameter entries,
// infers the ValueSchema for parameter and return types, and builds
// the call-time codec that validates and decodes caller arguments.
//
// Inference fails closed: a type the wire format cannot express is a
// definition error at registration time, never a runtime error.
package introspect

import (
	"reflect"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

var enumeratedType = reflect.TypeOf((*tool.Enumerated)(nil)).Elem()

// InferValueSchema maps a Go type to its wire ValueSchema. Pointer
// types are unwrapped; optionality is the caller's concern.
func InferValueSchema(t reflect.Type) (*tool.ValueSchema, error) {
	if t == nil {
		return nil, tool.NewDefinitionError("", "cannot infer a schema for a nil type")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// Named string types with a closed value set become string enums.
	if values, ok := enumValuesOf(t); ok {
		if t.Kind() != reflect.String {
			return nil, tool.NewDefinitionError("", "enumerated type %s must have string as its underlying type", t)
		}
		return &tool.ValueSchema{ValType: tool.TypeString, Enum: values}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &tool.ValueSchema{ValType: tool.TypeString}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &tool.ValueSchema{ValType: tool.TypeInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &tool.ValueSchema{ValType: tool.TypeNumber}, nil
	case reflect.Bool:
		return &tool.ValueSchema{ValType: tool.TypeBoolean}, nil
	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		for elem.Kind() == reflect.Pointer {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.Interface {
			return nil, tool.NewDefinitionError("", "list element type of %s must be declared", t)
		}
		inner, err := InferValueSchema(elem)
		if err != nil {
			return nil, err
		}
		if inner.ValType == tool.TypeArray {
			return nil, tool.NewDefinitionError("", "nested array type %s is not supported on the wire", t)
		}
		return &tool.ValueSchema{
			ValType:      tool.TypeArray,
			InnerValType: inner.ValType,
			Enum:         inner.Enum,
		}, nil
	case reflect.Map, reflect.Struct:
		return &tool.ValueSchema{ValType: tool.TypeJSON}, nil
	default:
		return nil, tool.NewDefinitionError("", "unsupported parameter type: %s", t)
	}
}

// enumValuesOf returns the closed value set of t when t (or *t)
// implements tool.Enumerated.
func enumValuesOf(t reflect.Type) ([]string, bool) {
	if t.Implements(enumeratedType) {
		return reflect.New(t).Elem().Interface().(tool.Enumerated).EnumValues(), true
	}
	if reflect.PointerTo(t).Implements(enumeratedType) {
		return reflect.New(t).Interface().(tool.Enumerated).EnumValues(), true
	}
	return nil, false
}

// parseTag splits a json struct tag into the wire name and its
// options.
func parseTag(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = field.Name
	if tag != "" {
		if idx := strings.Index(tag, ","); idx != -1 {
			if tag[:idx] != "" {
				name = tag[:idx]
			}
			omitEmpty = strings.Contains(tag[idx:], "omitempty")
		} else {
			name = tag
		}
	}
	return name, omitEmpty, false
}

// parseDefault validates and normalizes a default tag literal against
// the field's wire type, returning the JSON encoding of the value.
// Defaults must be literal, serializable scalars; containers and
// structured values are rejected to guard against shared-mutable or
// non-deterministic defaults.
func parseDefault(toolName, param, raw string, schema *tool.ValueSchema) ([]byte, error) {
	switch schema.ValType {
	case tool.TypeString:
		if len(schema.Enum) > 0 && !contains(schema.Enum, raw) {
			return nil, tool.NewDefinitionError(toolName,
				"default %q for parameter %s is not one of its enum values", raw, param)
		}
		return []byte(strconv.Quote(raw)), nil
	case tool.TypeInteger:
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, tool.NewDefinitionError(toolName,
				"default %q for parameter %s is not a valid integer", raw, param)
		}
		return []byte(raw), nil
	case tool.TypeNumber:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return nil, tool.NewDefinitionError(toolName,
				"default %q for parameter %s is not a valid number", raw, param)
		}
		return []byte(raw), nil
	case tool.TypeBoolean:
		if _, err := strconv.ParseBool(raw); err != nil {
			return nil, tool.NewDefinitionError(toolName,
				"default %q for parameter %s is not a valid boolean", raw, param)
		}
		return []byte(raw), nil
	default:
		return nil, tool.NewDefinitionError(toolName,
			"parameter %s cannot carry a default: defaults must be literal scalar values, not %s",
			param, schema.ValType)
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// InferOutput derives the ToolOutput for a tool's result type. An
// empty struct result means the tool returns nothing. A pointer result
// is nullable and adds the "null" mode.
func InferOutput(t reflect.Type) (*tool.ToolOutput, error) {
	if t == nil || isEmptyStruct(t) {
		return &tool.ToolOutput{AvailableModes: []string{tool.ModeNull}}, nil
	}
	optional := t.Kind() == reflect.Pointer
	schema, err := InferValueSchema(t)
	if err != nil {
		return nil, err
	}
	modes := []string{tool.ModeValue, tool.ModeError}
	if optional {
		modes = append(modes, tool.ModeNull)
	}
	return &tool.ToolOutput{AvailableModes: modes, ValueSchema: schema}, nil
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}
