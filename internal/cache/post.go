package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell/inkwell/internal/model"
)

// Cache key prefixes and TTLs.
const (
	postKeyPrefix    = "post:"
	publishedFeedKey = "posts:published"

	// DefaultPostTTL is the TTL for a cached single post projection.
	DefaultPostTTL = 5 * time.Minute

	// FeedTTL is the TTL for the cached published feed. Kept short:
	// the feed changes on every create and on published-flag flips.
	FeedTTL = time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetPost retrieves a cached post by id.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetPost(ctx context.Context, id string) (*model.Post, error) {
	data, err := c.client.Get(ctx, postKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var post model.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("decode cached post: %w", err)
	}

	return &post, nil
}

// SetPost stores a post projection in cache.
func (c *Cache) SetPost(ctx context.Context, post *model.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}

	if err := c.client.Set(ctx, postKeyPrefix+post.ID, data, DefaultPostTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidatePost removes a cached post.
func (c *Cache) InvalidatePost(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, postKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

// GetPublishedFeed retrieves the cached published feed.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetPublishedFeed(ctx context.Context) ([]*model.Post, error) {
	data, err := c.client.Get(ctx, publishedFeedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var posts []*model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode cached feed: %w", err)
	}

	return posts, nil
}

// SetPublishedFeed stores the published feed in cache.
func (c *Cache) SetPublishedFeed(ctx context.Context, posts []*model.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}

	if err := c.client.Set(ctx, publishedFeedKey, data, FeedTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidatePublishedFeed removes the cached published feed.
func (c *Cache) InvalidatePublishedFeed(ctx context.Context) error {
	if err := c.client.Del(ctx, publishedFeedKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
