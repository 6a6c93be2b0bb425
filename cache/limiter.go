//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package cache

import "context"

// KeyedLimiter bounds the number of concurrent operations per key,
// e.g. outbound requests per auth token. Semaphores are created on
// first use and held in an LRU, so the set of tracked keys is itself
// bounded.
type KeyedLimiter struct {
	semaphores *LRU[string, chan struct{}]
	capacity   int
}

// NewKeyedLimiter creates a limiter allowing capacity concurrent
// operations for each of at most maxKeys keys.
func NewKeyedLimiter(maxKeys, capacity int) *KeyedLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &KeyedLimiter{
		semaphores: NewLRU[string, chan struct{}](maxKeys),
		capacity:   capacity,
	}
}

// Acquire blocks until a slot for key is free or ctx is cancelled. On
// success it returns a release function that must be called exactly
// once.
func (l *KeyedLimiter) Acquire(ctx context.Context, key string) (func(), error) {
	sem, _ := l.semaphores.GetOrAdd(key, make(chan struct{}, l.capacity))
	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
