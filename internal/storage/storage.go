package storage

import (
	"context"

	"github.com/jwebster45206/rockhound/pkg/catalog"
	"github.com/jwebster45206/rockhound/pkg/imagecache"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage is the persistence surface for the catalog API: the location set
// (loaded once from data files, immutable afterwards) and the image failure
// cache (Redis-backed so failures are shared across browser sessions).
type Storage interface {
	HealthChecker
	Closer
	imagecache.Cache

	// ListLocations returns the full location set in data-file order.
	ListLocations(ctx context.Context) ([]catalog.Location, error)

	// GetLocation retrieves one location by id.
	// Returns nil if the location doesn't exist.
	GetLocation(ctx context.Context, id string) (*catalog.Location, error)
}
