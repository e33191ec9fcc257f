package cache

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("cache: entry not found")

type CacheInterface interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Cache is a bounded, TTL-evicting byte cache. The skin-listing memo uses it
// so repeated autocomplete queries within the window do not hit the o!rdr
// API, without growing without bound per query string.
type Cache struct {
	bigCache *bigcache.BigCache
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ctx context.Context, ttl time.Duration) (*Cache, error) {
	config := bigcache.DefaultConfig(ttl)
	bigCache, err := bigcache.New(ctx, config)
	if err != nil {
		return nil, err
	}
	return &Cache{bigCache: bigCache}, nil
}

func (c *Cache) Set(key string, value []byte) error {
	return c.bigCache.Set(key, value)
}

func (c *Cache) Get(key string) ([]byte, error) {
	value, err := c.bigCache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (c *Cache) Delete(key string) error {
	err := c.bigCache.Delete(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return ErrNotFound
	}
	return err
}
