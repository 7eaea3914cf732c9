package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

const (
	catalogKey      = "catalog:all"
	defaultCacheTTL = 30 * time.Second
)

// CatalogCache caches the unfiltered catalog listing in Redis. All failures
// degrade silently to the store read; the cache is never load-bearing.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
// If ttl <= 0, a short default is used.
func NewCatalogCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached listing and whether it was present.
func (c *CatalogCache) Get(ctx context.Context) ([]*domain.Sweet, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var sweets []*domain.Sweet
	if err := json.Unmarshal(raw, &sweets); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return sweets, true
}

// Set stores the listing with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, sweets []*domain.Sweet) {
	raw, err := json.Marshal(sweets)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing; called on every catalog mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
