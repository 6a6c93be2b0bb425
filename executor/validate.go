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
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

// ValidateInputs checks caller-supplied arguments against the tool's
// declared parameters before the tool's own codec ever sees them:
// unknown names, missing required parameters, wire-type mismatches and
// enum violations are all *tool.InputError with a field-level
// diagnostic an LLM caller can act on.
func ValidateInputs(def *tool.ToolDefinition, inputs map[string]any) error {
	params := make(map[string]*tool.InputParameter, len(def.Inputs.Parameters))
	for i := range def.Inputs.Parameters {
		p := &def.Inputs.Parameters[i]
		params[p.Name] = p
	}

	var unknown []string
	for name := range inputs {
		if _, ok := params[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return tool.NewInputError("unknown parameter(s): %s", strings.Join(unknown, ", "))
	}

	for _, p := range def.Inputs.Parameters {
		value, present := inputs[p.Name]
		if !present || value == nil {
			if p.Required {
				return tool.NewInputError("missing required parameter %q (%s)", p.Name, p.Description)
			}
			continue
		}
		if err := checkValue(p.Name, value, p.ValueSchema); err != nil {
			return err
		}
	}
	return nil
}

// checkValue verifies that a decoded JSON value is compatible with the
// declared wire schema.
func checkValue(name string, value any, schema *tool.ValueSchema) error {
	if schema == nil {
		return nil
	}
	switch schema.ValType {
	case tool.TypeString:
		s, ok := value.(string)
		if !ok {
			return typeMismatch(name, "a string", value)
		}
		return checkEnum(name, s, schema.Enum)
	case tool.TypeInteger:
		if !isInteger(value) {
			return typeMismatch(name, "an integer", value)
		}
	case tool.TypeNumber:
		if !isNumber(value) {
			return typeMismatch(name, "a number", value)
		}
	case tool.TypeBoolean:
		if _, ok := value.(bool); !ok {
			return typeMismatch(name, "a boolean", value)
		}
	case tool.TypeArray:
		items, ok := value.([]any)
		if !ok {
			return typeMismatch(name, "a list", value)
		}
		inner := &tool.ValueSchema{ValType: schema.InnerValType, Enum: schema.Enum}
		for _, item := range items {
			if err := checkValue(name, item, inner); err != nil {
				return err
			}
		}
	case tool.TypeJSON:
		// Any JSON value is acceptable; the tool's codec enforces the
		// structured shape.
	}
	return nil
}

func checkEnum(name, value string, enum []string) error {
	if len(enum) == 0 {
		return nil
	}
	for _, allowed := range enum {
		if value == allowed {
			return nil
		}
	}
	return tool.NewInputError("parameter %q must be one of [%s], got %q",
		name, strings.Join(enum, ", "), value)
}

func typeMismatch(name, want string, got any) error {
	return tool.NewInputError("parameter %q must be %s, got %T", name, want, got)
}

// isInteger accepts the integral forms a JSON decoder or programmatic
// caller may hand us.
func isInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == float64(int64(n))
	case float32:
		return n == float32(int64(n))
	case json.Number:
		_, err := n.Int64()
		return err == nil
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	default:
		return false
	}
}
