package cache

import (
	"context"
	"time"
)

// CacheService is a keyed store whose entries expire
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	// Take returns the value and removes the key in one step. Only one caller can take a key.
	Take(ctx context.Context, key string) ([]byte, error)
	Ping(ctx context.Context) error
	Close() error
}

// CacheConfig selects and configures the store. A RedisURL selects Redis, otherwise entries live in process memory.
type CacheConfig struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	RedisURL        string
}

// DefaultCacheConfig returns the in-memory configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// New returns the store selected by cfg
func New(cfg CacheConfig) (CacheService, error) {
	if cfg.RedisURL != "" {
		return NewRedisCache(cfg.RedisURL)
	}
	return NewInMemoryCache(cfg.DefaultTTL, cfg.CleanupInterval), nil
}
