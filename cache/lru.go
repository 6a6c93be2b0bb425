//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

// Package cache provides the bounded, least-recently-used caches that
// toolkits share across invocations, e.g. mapping an auth token to a
// derived tenant ID or holding a per-token concurrency limiter. Caches
// are constructed explicitly and injected by whatever composes the
// catalog and executor; nothing in this package is global state.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a bounded map with least-recently-used eviction. Recency is
// updated on both Get and Set. All mutations happen under a single
// mutex as one atomic map operation, so a cancelled caller can never
// observe a partially mutated cache.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	maxSize int
	ll      *list.List
	items   map[K]*list.Element
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a cache holding at most maxSize entries. Sizes below
// one are clamped to one.
func NewLRU[K comparable, V any](maxSize int) *LRU[K, V] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &LRU[K, V]{
		maxSize: maxSize,
		ll:      list.New(),
		items:   make(map[K]*list.Element),
	}
}

// Get returns the cached value and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.ll.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Set stores the value, marks it most recently used, and evicts the
// least recently used entry when the cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrAdd returns the existing value for key, or stores and returns
// value when the key is absent. The check and insert are one atomic
// operation.
func (c *LRU[K, V]) GetOrAdd(key K, value V) (actual V, loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	c.set(key, value)
	return value, false
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRU[K, V]) set(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.ll.MoveToFront(elem)
		return
	}
	if c.ll.Len() >= c.maxSize {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[K, V]).key)
		}
	}
	c.items[key] = c.ll.PushFront(&entry[K, V]{key: key, value: value})
}
