//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package introspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

// Field is the call-time view of one wire parameter: its schema plus
// everything needed to validate and decode a caller-supplied value.
type Field struct {
	// Name is the wire name of the parameter.
	Name string

	// Description is the mandatory human-readable description.
	Description string

	// Required reports whether callers must supply the parameter.
	Required bool

	// Inferrable reports whether a model may fill the value in.
	Inferrable bool

	// Schema is the inferred wire schema.
	Schema *tool.ValueSchema

	// DefaultJSON is the JSON encoding of the declared default, nil
	// when the parameter has none.
	DefaultJSON json.RawMessage
}

// Codec validates and decodes caller arguments for one input struct
// type. It is built once at registration time and is safe for
// concurrent use.
type Codec struct {
	typ    reflect.Type
	fields []*Field
	byName map[string]*Field
}

// BuildCodec reflects over the input struct type and derives the
// per-parameter metadata. Violations of the authoring contract (a
// missing description tag, an uninferrable type, a malformed default)
// surface as *tool.DefinitionError.
func BuildCodec(toolName string, t reflect.Type) (*Codec, error) {
	if t == nil {
		return nil, tool.NewDefinitionError(toolName, "input type must be a struct, got nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, tool.NewDefinitionError(toolName, "input type must be a struct, got %s", t)
	}

	c := &Codec{typ: t, byName: make(map[string]*Field)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitEmpty, skip := parseTag(sf)
		if skip {
			continue
		}
		if _, dup := c.byName[name]; dup {
			return nil, tool.NewDefinitionError(toolName, "duplicate parameter name %q", name)
		}

		description := strings.TrimSpace(sf.Tag.Get("description"))
		if description == "" {
			return nil, tool.NewDefinitionError(toolName, "parameter %s is missing a description", name)
		}

		schema, err := InferValueSchema(sf.Type)
		if err != nil {
			if de, ok := err.(*tool.DefinitionError); ok && de.Tool == "" {
				de.Tool = toolName
				de.Reason = fmt.Sprintf("parameter %s: %s", name, de.Reason)
			}
			return nil, err
		}
		if err := applyEnumTag(toolName, name, sf, schema); err != nil {
			return nil, err
		}

		inferrable := true
		if raw, ok := sf.Tag.Lookup("inferrable"); ok {
			switch raw {
			case "true":
			case "false":
				inferrable = false
			default:
				return nil, tool.NewDefinitionError(toolName,
					"parameter %s has invalid inferrable tag %q, want true or false", name, raw)
			}
		}

		field := &Field{
			Name:        name,
			Description: description,
			Required:    sf.Type.Kind() != reflect.Pointer && !omitEmpty,
			Inferrable:  inferrable,
			Schema:      schema,
		}
		if raw, ok := sf.Tag.Lookup("default"); ok {
			field.DefaultJSON, err = parseDefault(toolName, name, raw, schema)
			if err != nil {
				return nil, err
			}
			// A parameter with a default never has to be supplied.
			field.Required = false
		}

		c.fields = append(c.fields, field)
		c.byName[name] = field
	}
	return c, nil
}

// applyEnumTag merges an `enum:"a,b,c"` struct tag into the inferred
// schema. The tag is only valid on string parameters and string
// arrays.
func applyEnumTag(toolName, param string, sf reflect.StructField, schema *tool.ValueSchema) error {
	raw, ok := sf.Tag.Lookup("enum")
	if !ok {
		return nil
	}
	switch {
	case schema.ValType == tool.TypeString:
	case schema.ValType == tool.TypeArray && schema.InnerValType == tool.TypeString:
	default:
		return tool.NewDefinitionError(toolName,
			"parameter %s: enum tags require a string type, got %s", param, schema.ValType)
	}
	if len(schema.Enum) > 0 {
		return tool.NewDefinitionError(toolName,
			"parameter %s declares enum values both by tag and by type", param)
	}
	values := strings.Split(raw, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	schema.Enum = values
	return nil
}

// Parameters returns the wire parameter list in declaration order.
func (c *Codec) Parameters() []tool.InputParameter {
	params := make([]tool.InputParameter, 0, len(c.fields))
	for _, f := range c.fields {
		params = append(params, tool.InputParameter{
			Name:        f.Name,
			Required:    f.Required,
			Description: f.Description,
			ValueSchema: f.Schema,
			Inferrable:  f.Inferrable,
		})
	}
	return params
}

// Decode validates jsonArgs against the parameter list and decodes the
// result into dst, which must be a pointer to the codec's struct type.
// Defaults are filled in for absent optional parameters. Every
// validation failure is a *tool.InputError carrying a field-level
// diagnostic.
func (c *Codec) Decode(jsonArgs []byte, dst any) error {
	raw := map[string]json.RawMessage{}
	if len(jsonArgs) > 0 {
		if err := json.Unmarshal(jsonArgs, &raw); err != nil {
			return tool.NewInputError("arguments are not a valid JSON object: %v", err)
		}
	}

	var unknown []string
	for name := range raw {
		if _, ok := c.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return tool.NewInputError("unknown parameter(s): %s", strings.Join(unknown, ", "))
	}

	for _, f := range c.fields {
		value, present := raw[f.Name]
		if !present || isJSONNull(value) {
			if f.Required {
				return tool.NewInputError("missing required parameter %q (%s)", f.Name, f.Description)
			}
			if f.DefaultJSON != nil {
				raw[f.Name] = f.DefaultJSON
			}
			continue
		}
		if err := f.checkEnum(value); err != nil {
			return err
		}
	}

	assembled, err := json.Marshal(raw)
	if err != nil {
		return tool.NewInputError("could not assemble arguments: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(assembled))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return tool.NewInputError("arguments do not match the declared schema: %v", err)
	}
	return nil
}

// checkEnum validates a present value against the field's closed value
// set, for string and string-array parameters.
func (f *Field) checkEnum(value json.RawMessage) error {
	if len(f.Schema.Enum) == 0 {
		return nil
	}
	var candidates []string
	switch f.Schema.ValType {
	case tool.TypeString:
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return tool.NewInputError("parameter %q must be a string: %v", f.Name, err)
		}
		candidates = []string{s}
	case tool.TypeArray:
		var s []string
		if err := json.Unmarshal(value, &s); err != nil {
			return tool.NewInputError("parameter %q must be a list of strings: %v", f.Name, err)
		}
		candidates = s
	}
	for _, s := range candidates {
		if !contains(f.Schema.Enum, s) {
			return tool.NewInputError("parameter %q must be one of [%s], got %q",
				f.Name, strings.Join(f.Schema.Enum, ", "), s)
		}
	}
	return nil
}

func isJSONNull(v json.RawMessage) bool {
	return len(v) == 4 && string(v) == "null"
}
