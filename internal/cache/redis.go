// Package cache caches post projections and the public feed in Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client behind domain-specific methods.
type Cache struct {
	client *redis.Client
}

// New dials Redis from a URL and verifies the connection before
// returning, so a bad REDIS_URL fails at startup rather than on the
// first read.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping reports Redis connectivity for readiness checks.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client exposes the raw Redis client for test setup.
func (c *Cache) Client() *redis.Client {
	return c.client
}
