package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var (
	ErrKeyNotFound  = errors.New("key not found in cache")
	ErrInvalidValue = errors.New("invalid cached value type")
)

// InMemoryCache implements CacheService using go-cache
type InMemoryCache struct {
	cache *gocache.Cache
	// serializes Take so that a key is handed out once
	takeMu sync.Mutex
}

// NewInMemoryCache creates a new in-memory cache instance
func NewInMemoryCache(defaultTTL, cleanupInterval time.Duration) *InMemoryCache {
	return &InMemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from cache by key
func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil, ErrInvalidValue
	}
	return bytes, nil
}

// Set stores a value in cache with the specified TTL
func (c *InMemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a key from cache
func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}

// Exists checks if a key exists in cache
func (c *InMemoryCache) Exists(_ context.Context, key string) bool {
	_, found := c.cache.Get(key)
	return found
}

// Take retrieves and deletes a key
func (c *InMemoryCache) Take(ctx context.Context, key string) ([]byte, error) {
	c.takeMu.Lock()
	defer c.takeMu.Unlock()

	value, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Delete(key)
	return value, nil
}

func (c *InMemoryCache) Ping(context.Context) error {
	return nil
}

// Close flushes all entries
func (c *InMemoryCache) Close() error {
	c.cache.Flush()
	return nil
}

// ItemCount returns the number of items in the cache
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
