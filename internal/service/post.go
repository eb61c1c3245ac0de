package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/inkwell/inkwell/internal/cache"
	"github.com/inkwell/inkwell/internal/metrics"
	"github.com/inkwell/inkwell/internal/model"
	"github.com/inkwell/inkwell/internal/repository"
)

// Service errors.
var (
	// ErrPostNotFound covers a missing post and an ownership mismatch
	// on update alike; handlers must not distinguish the two.
	ErrPostNotFound = errors.New("post not found")
)

// PostService handles post business logic.
type PostService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	metrics metrics.Recorder
}

// NewPostService creates a new PostService.
func NewPostService(repo *repository.Repository, cacheClient *cache.Cache, recorder metrics.Recorder) *PostService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PostService{
		repo:    repo,
		cache:   cacheClient,
		metrics: recorder,
	}
}

// CreatePostInput defines input for creating a post.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// Create creates a post owned by the acting identity.
// Posts are always published on creation; there is no draft state
// on this path.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*model.Post, error) {
	now := time.Now().UTC()
	post := &model.Post{
		ID:        ulid.Make().String(),
		Title:     input.Title,
		Content:   input.Content,
		Published: true,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// The new post belongs in the public feed; cache failures are soft.
	_ = s.cache.InvalidatePublishedFeed(ctx)

	s.metrics.IncPostCreated()

	return created, nil
}

// UpdatePostInput defines input for updating a post.
type UpdatePostInput struct {
	ID        string
	Title     string
	Content   string
	Published bool
	AuthorID  string
}

// Update updates the post matching both the id and the acting identity.
// AuthorID never changes; a non-matching id or another author's post
// yields ErrPostNotFound without revealing which.
func (s *PostService) Update(ctx context.Context, input UpdatePostInput) (*model.Post, error) {
	post := &model.Post{
		ID:        input.ID,
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
		AuthorID:  input.AuthorID,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := s.repo.UpdatePostByAuthor(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	_ = s.cache.InvalidatePost(ctx, updated.ID)
	_ = s.cache.InvalidatePublishedFeed(ctx)

	s.metrics.IncPostUpdated()

	return updated, nil
}

// ListPublished returns all published posts in insertion order,
// serving from the feed cache when warm.
func (s *PostService) ListPublished(ctx context.Context) ([]*model.Post, error) {
	if posts, err := s.cache.GetPublishedFeed(ctx); err == nil {
		s.metrics.IncFeedCacheHit()
		return posts, nil
	}
	s.metrics.IncFeedCacheMiss()

	posts, err := s.repo.ListPublishedPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	_ = s.cache.SetPublishedFeed(ctx, posts)

	return posts, nil
}

// Get returns a single post by id regardless of published state,
// serving from cache when warm.
func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	if post, err := s.cache.GetPost(ctx, id); err == nil {
		s.metrics.IncPostCacheHit()
		return post, nil
	}
	s.metrics.IncPostCacheMiss()

	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	_ = s.cache.SetPost(ctx, post)

	return post, nil
}
