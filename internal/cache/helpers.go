package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CacheKeyBuilder helps construct consistent cache keys
type CacheKeyBuilder struct {
	namespace string
	parts     []string
}

// NewCacheKeyBuilder creates a new key builder with a namespace
func NewCacheKeyBuilder(namespace string) *CacheKeyBuilder {
	return &CacheKeyBuilder{
		namespace: namespace,
		parts:     make([]string, 0),
	}
}

// Add adds a part to the cache key
func (b *CacheKeyBuilder) Add(part string) *CacheKeyBuilder {
	b.parts = append(b.parts, part)
	return b
}

// Build constructs the final cache key
func (b *CacheKeyBuilder) Build() string {
	if b.namespace == "" {
		return strings.Join(b.parts, ":")
	}
	return b.namespace + ":" + strings.Join(b.parts, ":")
}

// Hash builds a hashed version of the key
func (b *CacheKeyBuilder) Hash() string {
	key := b.Build()
	hash := sha256.Sum256([]byte(key))
	return b.namespace + ":hash:" + hex.EncodeToString(hash[:])
}

// OAuthStateKey is the key of a pending authorization. The raw state never reaches the store.
func OAuthStateKey(state string) string {
	return NewCacheKeyBuilder("oauth").Add("state").Add(state).Hash()
}
