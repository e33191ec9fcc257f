package storage

import (
	"context"
	"log/slog"
	"sync"
)

// PrefixCache holds the per-guild command prefixes in memory. It is seeded
// from the store at startup and updated whenever a prefix is changed, so
// message handling never needs a database round trip.
type PrefixCache struct {
	mu            sync.RWMutex
	prefixes      map[string]string
	defaultPrefix string
}

// NewPrefixCache creates an empty cache with the given fallback prefix.
func NewPrefixCache(defaultPrefix string) *PrefixCache {
	return &PrefixCache{
		prefixes:      make(map[string]string),
		defaultPrefix: defaultPrefix,
	}
}

// Load seeds the cache from the store, replacing any previous contents.
func (c *PrefixCache) Load(ctx context.Context, store Store, logger *slog.Logger) error {
	prefixes, err := store.GuildPrefixes(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.prefixes = prefixes
	c.mu.Unlock()

	logger.InfoContext(ctx, "Loaded guild prefixes", slog.Int("count", len(prefixes)))
	return nil
}

// Get returns the prefix for a guild, falling back to the default.
func (c *PrefixCache) Get(guildID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if prefix, ok := c.prefixes[guildID]; ok {
		return prefix
	}
	return c.defaultPrefix
}

// Set updates the cached prefix for a guild.
func (c *PrefixCache) Set(guildID, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefixes[guildID] = prefix
}
