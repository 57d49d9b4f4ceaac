// Package cache keeps the tag registry listing out of the database on hot
// paths. It is never consulted for visibility or friendship decisions.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dishlist/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const tagListKey = "dishlist:tags:all"

// TagCache stores the full tag listing.
type TagCache interface {
	// Tags returns the cached listing and whether it was present.
	Tags(ctx context.Context) ([]models.Tag, bool, error)
	SetTags(ctx context.Context, tags []models.Tag) error
	Invalidate(ctx context.Context) error
}

// Noop is a TagCache that never holds anything.
type Noop struct{}

func (Noop) Tags(context.Context) ([]models.Tag, bool, error) { return nil, false, nil }
func (Noop) SetTags(context.Context, []models.Tag) error      { return nil }
func (Noop) Invalidate(context.Context) error                 { return nil }

// RedisTagCache is a TagCache backed by Redis.
type RedisTagCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewRedisTagCache connects to the Redis server at url and checks it with a
// ping.
func NewRedisTagCache(ctx context.Context, url string, ttl time.Duration, log *logrus.Logger) (*RedisTagCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.WithField("addr", opts.Addr).Info("Redis tag cache connected")
	return &RedisTagCache{client: client, ttl: ttl, log: log}, nil
}

// Tags implements TagCache.
func (c *RedisTagCache) Tags(ctx context.Context) ([]models.Tag, bool, error) {
	raw, err := c.client.Get(ctx, tagListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var tags []models.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		c.log.WithError(err).Warn("Discarding unreadable tag cache entry")
		return nil, false, c.Invalidate(ctx)
	}
	return tags, true, nil
}

// SetTags implements TagCache.
func (c *RedisTagCache) SetTags(ctx context.Context, tags []models.Tag) error {
	raw, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tagListKey, raw, c.ttl).Err()
}

// Invalidate implements TagCache.
func (c *RedisTagCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, tagListKey).Err()
}

// Close releases the connection pool.
func (c *RedisTagCache) Close() error {
	return c.client.Close()
}
