package storage

import (
	"context"
	"sync"

	"github.com/jwebster45206/rockhound/pkg/catalog"
	"github.com/jwebster45206/rockhound/pkg/imagecache"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	locations []catalog.Location
	failures  *imagecache.MemoryCache
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage with the given location set
func NewMockStorage(locations []catalog.Location) *MockStorage {
	for i := range locations {
		locations[i].Normalize()
	}
	return &MockStorage{
		locations: locations,
		failures:  imagecache.NewMemoryCache(),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// ListLocations returns the configured location set
func (m *MockStorage) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]catalog.Location, len(m.locations))
	copy(out, m.locations)
	return out, nil
}

// GetLocation returns the configured location with the given id, or nil
func (m *MockStorage) GetLocation(ctx context.Context, id string) (*catalog.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, loc := range m.locations {
		if loc.ID == id {
			out := loc
			return &out, nil
		}
	}
	return nil, nil
}

// RecordFailure records an image failure in the in-memory cache
func (m *MockStorage) RecordFailure(ctx context.Context, locationID string, imageIndex int, displayName string) error {
	return m.failures.RecordFailure(ctx, locationID, imageIndex, displayName)
}

// Resolve resolves an image slot against the in-memory cache
func (m *MockStorage) Resolve(ctx context.Context, locationID string, imageIndex int, fallbackURI string) (string, error) {
	return m.failures.Resolve(ctx, locationID, imageIndex, fallbackURI)
}
