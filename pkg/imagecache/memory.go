package imagecache

import (
	"context"
	"fmt"
	"sync"
)

// MemoryCache is an in-process Cache for the terminal browser and tests.
// Failure events arrive from independent image probes, so access is
// mutex-guarded even though each event touches a disjoint slot.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func slotKey(locationID string, imageIndex int) string {
	return fmt.Sprintf("%s:%d", locationID, imageIndex)
}

// RecordFailure stores the placeholder for the slot. Safe to call for
// locations whose cards are no longer rendered.
func (c *MemoryCache) RecordFailure(ctx context.Context, locationID string, imageIndex int, displayName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slotKey(locationID, imageIndex)] = PlaceholderURI(displayName)
	return nil
}

// Resolve returns the recorded placeholder, the fallback, or the generic
// placeholder, in that order.
func (c *MemoryCache) Resolve(ctx context.Context, locationID string, imageIndex int, fallbackURI string) (string, error) {
	c.mu.RLock()
	uri, ok := c.entries[slotKey(locationID, imageIndex)]
	c.mu.RUnlock()
	if ok {
		return uri, nil
	}
	return Fallback(fallbackURI), nil
}

// HasFailure reports whether the slot has a recorded failure. The browser
// uses this to skip probing known-bad images.
func (c *MemoryCache) HasFailure(locationID string, imageIndex int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[slotKey(locationID, imageIndex)]
	return ok
}
