// Package model defines domain entities for the application.
package model

import "time"

// Post represents a blog post.
// AuthorID is set at creation from the acting identity and is immutable:
// updates match on both id and author_id, so a post can only ever be
// modified by its author.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// AuthorName is the joined author display name, when loaded.
	// Nil either when the author has no name set or when the query
	// did not join the users table.
	AuthorName *string `json:"author_name,omitempty"`
}

// AuthorDisplayName returns the joined author name, or "Anonymous" when absent.
func (p *Post) AuthorDisplayName() string {
	if p.AuthorName == nil || *p.AuthorName == "" {
		return "Anonymous"
	}
	return *p.AuthorName
}
