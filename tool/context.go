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
	"strings"
)

// AuthorizationContext carries the result of a completed authorization
// flow for one invocation.
type AuthorizationContext struct {
	// Token is the bearer token the tool should use.
	Token string `json:"token,omitempty"`

	// Provider identifies the provider that issued the token.
	Provider string `json:"provider,omitempty"`

	// UserInfo carries provider-specific fields, if any.
	UserInfo map[string]any `json:"user_info,omitempty"`
}

// KeyValue is one secret or metadata entry.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Context is the per-invocation carrier of authorization, secrets and
// metadata. The hosting layer constructs it fresh for every call and
// the executor injects it into the call's context.Context; it is
// discarded when the call returns and never persisted.
type Context struct {
	// Authorization is the auth context, nil when the tool requires no
	// authorization.
	Authorization *AuthorizationContext `json:"authorization,omitempty"`

	// Secrets are the secret key/value pairs supplied by the host.
	Secrets []KeyValue `json:"secrets,omitempty"`

	// Metadata are the metadata key/value pairs supplied by the host.
	Metadata []KeyValue `json:"metadata,omitempty"`
}

// Token returns the bearer token, or "" when no authorization context
// is present.
func (c *Context) Token() string {
	if c == nil || c.Authorization == nil {
		return ""
	}
	return c.Authorization.Token
}

// GetSecret looks up a secret by key, case-insensitively.
func (c *Context) GetSecret(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return lookup(c.Secrets, key)
}

// GetMetadata looks up a metadata value by key, case-insensitively.
func (c *Context) GetMetadata(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return lookup(c.Metadata, key)
}

func lookup(pairs []KeyValue, key string) (string, bool) {
	for _, kv := range pairs {
		if strings.EqualFold(kv.Key, key) {
			return kv.Value, true
		}
	}
	return "", false
}

// ContextKeyToolContext is the context key type for the per-invocation
// tool context. It is exported so hosting layers can inject it.
type ContextKeyToolContext struct{}

// ContextKeyInvocationID is the context key type for the invocation ID.
type ContextKeyInvocationID struct{}

// NewContext returns a copy of ctx carrying the given tool context.
func NewContext(ctx context.Context, tc *Context) context.Context {
	return context.WithValue(ctx, ContextKeyToolContext{}, tc)
}

// FromContext retrieves the tool context injected by the executor.
// Tool bodies that need authorization tokens, secrets or metadata call
// this instead of declaring a dedicated parameter.
func FromContext(ctx context.Context) (*Context, bool) {
	tc, ok := ctx.Value(ContextKeyToolContext{}).(*Context)
	if !ok || tc == nil {
		return nil, false
	}
	return tc, true
}

// WithInvocationID returns a copy of ctx carrying the invocation ID.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyInvocationID{}, id)
}

// InvocationIDFromContext retrieves the invocation ID from context.
// Returns the ID and true if found, empty string and false otherwise.
func InvocationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyInvocationID{}).(string)
	return id, ok
}
