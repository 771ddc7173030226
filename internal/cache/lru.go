// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

// Package cache provides a thread-safe LRU cache with TTL support, used to
// cache per-user recommendation responses.
package cache

import (
	"sync"
	"time"
)

// entry is a node in the doubly-linked recency list.
type entry[V any] struct {
	key       string
	value     V
	prev      *entry[V]
	next      *entry[V]
	expiresAt time.Time
}

// LRUCache implements a thread-safe Least Recently Used cache with TTL
// support. It provides O(1) Get, Add, Remove, and eviction.
//
// Expiration is lazy: expired entries are dropped when read, or swept in
// bulk by CleanupExpired.
//
// This implementation uses a doubly-linked list for ordering and a hashmap
// for lookups, following the pattern from TheAlgorithms/Go LRU
// implementation.
type LRUCache[V any] struct {
	mu sync.Mutex

	// capacity is the maximum number of entries
	capacity int

	// ttl is the time-to-live for entries
	ttl time.Duration

	// items maps keys to linked list nodes for O(1) lookup
	items map[string]*entry[V]

	// head and tail are sentinel nodes for the doubly-linked list.
	// head.next is the most recently used, tail.prev the least.
	head *entry[V]
	tail *entry[V]

	// stats
	hits   int64
	misses int64
}

// NewLRUCache creates a new LRU cache with the specified capacity and TTL.
func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 1024
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V], capacity),
		head:     &entry[V]{},
		tail:     &entry[V]{},
	}

	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves an entry from the cache. Returns the value and true if
// found and not expired. Found entries are moved to the front (most
// recently used).
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		delete(c.items, key)
		c.misses++
		return zero, false
	}

	c.moveToFront(e)
	c.hits++
	return e.value, true
}

// Add inserts or replaces an entry, evicting the least recently used entry
// if the cache is at capacity.
func (c *LRUCache[V]) Add(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.items[key]; exists {
		e.value = value
		e.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(e)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	e := &entry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = e
	c.addToFront(e)
}

// Remove deletes an entry. Returns true if the key was present.
func (c *LRUCache[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, exists := c.items[key]
	if !exists {
		return false
	}
	c.removeEntry(e)
	delete(c.items, key)
	return true
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been swept.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries and resets statistics.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	c.hits = 0
	c.misses = 0
}

// CleanupExpired removes all expired entries and returns how many were
// dropped.
func (c *LRUCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			c.removeEntry(e)
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// Stats returns hit and miss counts plus the current size.
func (c *LRUCache[V]) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

func (c *LRUCache[V]) addToFront(e *entry[V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRUCache[V]) moveToFront(e *entry[V]) {
	c.removeEntry(e)
	c.addToFront(e)
}

func (c *LRUCache[V]) removeEntry(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *LRUCache[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	delete(c.items, oldest.key)
}
