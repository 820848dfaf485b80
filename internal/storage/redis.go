package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/rockhound/pkg/catalog"
	"github.com/jwebster45206/rockhound/pkg/imagecache"
)

// Image failure entries outlive any single browser session but not the
// deployment; 24h approximates session-length semantics server-side.
const imageFailureTTL = 24 * time.Hour

// RedisStorage implements the Storage interface using Redis for the image
// failure cache and the filesystem for the location set, which is loaded
// once at startup and held in memory in file order.
type RedisStorage struct {
	client    *redis.Client
	logger    *slog.Logger
	locations []catalog.Location
	byID      map[string]int
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance seeded from dataDir.
func NewRedisStorage(redisURL string, dataDir string, logger *slog.Logger) (*RedisStorage, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if dataDir == "" {
		dataDir = "./data"
	}

	locations, err := LoadLocations(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	byID := make(map[string]int, len(locations))
	for i, loc := range locations {
		byID[loc.ID] = i
	}

	return &RedisStorage{
		client:    rdb,
		logger:    logger,
		locations: locations,
		byID:      byID,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

// Location operations (filesystem-seeded, in-memory)

func (r *RedisStorage) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	out := make([]catalog.Location, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *RedisStorage) GetLocation(ctx context.Context, id string) (*catalog.Location, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	loc := r.locations[i]
	return &loc, nil
}

// Image failure cache (Redis-backed)

func imageFailureKey(locationID string, imageIndex int) string {
	return fmt.Sprintf("imgfail:%s:%d", locationID, imageIndex)
}

func (r *RedisStorage) RecordFailure(ctx context.Context, locationID string, imageIndex int, displayName string) error {
	key := imageFailureKey(locationID, imageIndex)
	uri := imagecache.PlaceholderURI(displayName)

	cmd := r.client.Set(ctx, key, uri, imageFailureTTL)
	if err := cmd.Err(); err != nil {
		r.logger.Error("Failed to record image failure", "key", key, "error", err)
		return fmt.Errorf("failed to record image failure: %w", err)
	}
	return nil
}

func (r *RedisStorage) Resolve(ctx context.Context, locationID string, imageIndex int, fallbackURI string) (string, error) {
	key := imageFailureKey(locationID, imageIndex)

	cmd := r.client.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return imagecache.Fallback(fallbackURI), nil
		}
		r.logger.Error("Failed to resolve image", "key", key, "error", err)
		return "", fmt.Errorf("failed to resolve image: %w", err)
	}

	if uri := cmd.Val(); uri != "" {
		return uri, nil
	}
	return imagecache.Fallback(fallbackURI), nil
}
