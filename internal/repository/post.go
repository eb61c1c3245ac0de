package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/inkwell/inkwell/internal/model"
)

// Common errors for post repository operations.
var (
	// ErrPostNotFound covers both a missing post and an ownership
	// mismatch on update: the compound predicate makes the two
	// indistinguishable, which is what keeps another author's posts
	// unenumerable.
	ErrPostNotFound = errors.New("post not found")
)

// CreatePost inserts a new post and returns it with the author's
// display name joined in.
func (r *Repository) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	query := `
		INSERT INTO posts (id, title, content, published, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Published,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return r.GetPostByID(ctx, post.ID)
}

// UpdatePostByAuthor updates a post matching both id and author_id in a
// single statement. The compound predicate is the authorization check:
// zero affected rows means the post does not exist or belongs to
// another author, and the caller cannot tell which.
func (r *Repository) UpdatePostByAuthor(ctx context.Context, post *model.Post) (*model.Post, error) {
	query := `
		UPDATE posts
		SET title = $3, content = $4, published = $5, updated_at = $6
		WHERE id = $1 AND author_id = $2
		RETURNING id, title, content, published, author_id, created_at, updated_at
	`

	var updated model.Post
	err := r.pool.QueryRow(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Published,
		post.UpdatedAt,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Content,
		&updated.Published,
		&updated.AuthorID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &updated, nil
}

// GetPostByID retrieves a single post by id, any published state,
// with the author name joined.
func (r *Repository) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.published, p.author_id, p.created_at, p.updated_at, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return post, nil
}

// ListPublishedPosts retrieves all published posts in insertion order.
// created_at with the id tiebreaker gives a stable, deterministic order;
// ULIDs make the tiebreaker monotonic within a timestamp.
func (r *Repository) ListPublishedPosts(ctx context.Context) ([]*model.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.published, p.author_id, p.created_at, p.updated_at, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.published = true
		ORDER BY p.created_at, p.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// scanPost scans a post row including the joined author name.
func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Published,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.AuthorName,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
