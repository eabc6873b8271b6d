// Package cache holds the most recent snapshot per product URL for a
// short TTL so bursts of checks do not re-fetch the retailer page. This
// is request coalescing, not history: one entry per URL, expiring.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stockwatch/digitec-stock-check/internal/models"
)

const keyPrefix = "stockcheck:snapshot:"

// SnapshotCache is safe to use as a nil pointer, which disables caching.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SnapshotCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "cache"),
	}
}

func (c *SnapshotCache) Get(ctx context.Context, url string) (*models.ProductSnapshot, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, keyPrefix+url).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "error", err, "url", url)
		}
		return nil, false
	}

	var snap models.ProductSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Warn("cache entry corrupt", "error", err, "url", url)
		return nil, false
	}
	return &snap, true
}

// Set stores the snapshot. Cache failures are logged and swallowed; the
// check result does not depend on the cache being up.
func (c *SnapshotCache) Set(ctx context.Context, url string, snap *models.ProductSnapshot) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("cache encode failed", "error", err, "url", url)
		return
	}
	if err := c.client.Set(ctx, keyPrefix+url, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "error", err, "url", url)
	}
}
