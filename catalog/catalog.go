//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package catalog holds the in-memory registry of materialized tools
// available to a host process. Registration happens once at startup;
// after that the catalog is read-mostly and safe for concurrent reads.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-arcade-go/executor"
	"trpc.group/trpc-go/trpc-arcade-go/log"
	"trpc.group/trpc-go/trpc-arcade-go/tool"
)

// ToolMeta records bookkeeping information about a registered tool.
type ToolMeta struct {
	// Toolkit is the toolkit name the tool was registered under, if
	// any.
	Toolkit string

	// AddedAt is when the tool was first registered.
	AddedAt time.Time

	// UpdatedAt is when the registration was last overwritten.
	UpdatedAt time.Time
}

// MaterializedTool pairs a registered callable with its derived
// definition. The catalog owns the mapping, not the callable's
// lifecycle: the tool is held only for dispatch.
type MaterializedTool struct {
	Tool       tool.CallableTool
	Definition *tool.ToolDefinition
	Meta       ToolMeta
}

// ToolCatalog is the registry mapping fully qualified tool names to
// materialized tools. Lookups are case-sensitive exact matches.
type ToolCatalog struct {
	mu    sync.RWMutex
	tools map[string]*MaterializedTool
	order []string
}

// HealthStatus is the reply of a health check.
type HealthStatus struct {
	Status    string `json:"status"`
	ToolCount int    `json:"tool_count"`
}

// New creates an empty catalog.
func New() *ToolCatalog {
	return &ToolCatalog{tools: make(map[string]*MaterializedTool)}
}

// AddTool registers one tool under its fully qualified name.
// Registration is atomic: if the definition violates the authoring
// contract the catalog is left untouched and a *tool.DefinitionError
// is returned. Registering a name that already exists overwrites the
// previous entry (last write wins); the overwrite is logged and the
// tool keeps its original position in ListTools.
func (c *ToolCatalog) AddTool(ct tool.CallableTool) error {
	if ct == nil {
		return tool.NewDefinitionError("", "cannot register a nil tool")
	}
	def := ct.Definition()
	if err := validateDefinition(def); err != nil {
		return err
	}

	name := def.QualifiedName()
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.tools[name]; ok {
		log.Warnf("tool %s is already registered; overwriting the previous entry", name)
		c.tools[name] = &MaterializedTool{
			Tool:       ct,
			Definition: def,
			Meta:       ToolMeta{Toolkit: def.Toolkit, AddedAt: existing.Meta.AddedAt, UpdatedAt: now},
		}
		return nil
	}
	c.tools[name] = &MaterializedTool{
		Tool:       ct,
		Definition: def,
		Meta:       ToolMeta{Toolkit: def.Toolkit, AddedAt: now, UpdatedAt: now},
	}
	c.order = append(c.order, name)
	return nil
}

// AddToolSet registers every tool in the set. A malformed tool does
// not stop the others from registering: failures are collected and
// reported together, so a toolkit with one bad tool still exposes its
// valid ones.
func (c *ToolCatalog) AddToolSet(ctx context.Context, ts tool.ToolSet) error {
	var errs []error
	for _, ct := range ts.Tools(ctx) {
		if err := c.AddTool(ct); err != nil {
			log.Errorf("toolkit %s: skipping tool: %v", ts.Name(), err)
			errs = append(errs, fmt.Errorf("toolkit %s: %w", ts.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// GetTool returns the callable registered under the fully qualified
// name.
func (c *ToolCatalog) GetTool(name string) (tool.CallableTool, error) {
	mt, err := c.Materialized(name)
	if err != nil {
		return nil, err
	}
	return mt.Tool, nil
}

// Materialized returns the full materialized entry for a tool.
func (c *ToolCatalog) Materialized(name string) (*MaterializedTool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mt, ok := c.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %q not found in the catalog", name)
	}
	return mt, nil
}

// ListTools returns the definitions of every registered tool in
// registration order.
func (c *ToolCatalog) ListTools() []*tool.ToolDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	defs := make([]*tool.ToolDefinition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.tools[name].Definition)
	}
	return defs
}

// Len returns the number of registered tools.
func (c *ToolCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// HealthCheck reports the catalog's liveness and size.
func (c *ToolCatalog) HealthCheck() HealthStatus {
	return HealthStatus{Status: "ok", ToolCount: c.Len()}
}

// CallTool resolves and executes one invocation request, timing the
// run and stamping the response. It never returns an error: an unknown
// tool or any failure inside the run is reported through the response
// envelope.
func (c *ToolCatalog) CallTool(ctx context.Context, req *tool.ToolCallRequest) *tool.ToolCallResponse {
	invocationID := req.InvocationID
	if invocationID == "" {
		invocationID = uuid.NewString()
	}
	ctx = tool.WithInvocationID(ctx, invocationID)

	start := time.Now()
	finish := func(out *tool.ToolCallOutput) *tool.ToolCallResponse {
		return &tool.ToolCallResponse{
			InvocationID: invocationID,
			DurationMS:   float64(time.Since(start).Microseconds()) / 1000.0,
			FinishedAt:   time.Now().UTC().Format(time.RFC3339Nano),
			Success:      out.Error == nil,
			Output:       out,
		}
	}

	mt, err := c.Materialized(req.Tool.Name)
	if err != nil {
		return finish(tool.Fail(err.Error(), "", ""))
	}
	if req.Tool.Version != "" && req.Tool.Version != mt.Definition.Version {
		return finish(tool.Fail(
			fmt.Sprintf("tool %q version %q not found in the catalog",
				req.Tool.Name, req.Tool.Version), "", ""))
	}

	return finish(executor.Run(ctx, mt.Tool, req.Context, req.Inputs))
}

// validateDefinition re-checks the schema completeness contract at the
// registration boundary, so hand-built CallableTool implementations
// get the same guarantees as ones built via the function package.
func validateDefinition(def *tool.ToolDefinition) error {
	if def == nil {
		return tool.NewDefinitionError("", "tool has no definition")
	}
	if def.Name == "" {
		return tool.NewDefinitionError("", "tool is missing a name")
	}
	if def.Description == "" {
		return tool.NewDefinitionError(def.Name, "tool is missing a description")
	}
	for _, p := range def.Inputs.Parameters {
		if p.Description == "" {
			return tool.NewDefinitionError(def.Name, "parameter %s is missing a description", p.Name)
		}
		if p.ValueSchema == nil {
			return tool.NewDefinitionError(def.Name, "parameter %s is missing a value schema", p.Name)
		}
		switch p.ValueSchema.ValType {
		case tool.TypeString, tool.TypeInteger, tool.TypeNumber, tool.TypeBoolean,
			tool.TypeJSON, tool.TypeArray:
		default:
			return tool.NewDefinitionError(def.Name,
				"parameter %s has unknown wire type %q", p.Name, p.ValueSchema.ValType)
		}
	}
	return nil
}
