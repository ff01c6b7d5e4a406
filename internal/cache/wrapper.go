package cache

import (
	"context"
	"encoding/json"
	"time"

	"bleck-backend/internal/logger"
)

// CacheWrapper stores JSON values with logging on failure
type CacheWrapper struct {
	cache      CacheService
	defaultTTL time.Duration
}

// NewCacheWrapper creates a new cache wrapper
func NewCacheWrapper(cache CacheService, defaultTTL time.Duration) *CacheWrapper {
	return &CacheWrapper{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// GetJSON retrieves and unmarshals JSON from cache
func (w *CacheWrapper) GetJSON(ctx context.Context, key string, out interface{}) error {
	data, err := w.cache.Get(ctx, key)
	if err != nil {
		return err
	}
	return w.decode(key, data, out)
}

// TakeJSON retrieves, removes and unmarshals a value
func (w *CacheWrapper) TakeJSON(ctx context.Context, key string, out interface{}) error {
	data, err := w.cache.Take(ctx, key)
	if err != nil {
		return err
	}
	return w.decode(key, data, out)
}

// SetJSON marshals and stores a value. A zero ttl uses the default.
func (w *CacheWrapper) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = w.defaultTTL
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Error("Failed to marshal for cache")
		return err
	}

	if err := w.cache.Set(ctx, key, data, ttl); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to store cache entry")
		return err
	}
	return nil
}

// Exists checks if a key exists in cache
func (w *CacheWrapper) Exists(ctx context.Context, key string) bool {
	return w.cache.Exists(ctx, key)
}

func (w *CacheWrapper) decode(key string, data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Cache data corrupted")
		return ErrInvalidValue
	}
	return nil
}
