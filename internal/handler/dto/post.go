package dto

import "github.com/inkwell/inkwell/internal/model"

// CreatePostRequest represents the request body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest represents the request body for updating a post.
type UpdatePostRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// PostAuthor is the author projection embedded in post responses.
type PostAuthor struct {
	Name string `json:"name"`
}

// CreatedPostResponse is the projection returned from create:
// no published flag, author name included.
type CreatedPostResponse struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  PostAuthor `json:"author"`
}

// UpdatedPostResponse is the projection returned from update:
// published flag included, no author.
type UpdatedPostResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// FeedPostResponse is the projection used in the public feed.
type FeedPostResponse struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  PostAuthor `json:"author"`
}

// FeedResponse wraps the public feed.
type FeedResponse struct {
	Posts []FeedPostResponse `json:"posts"`
}

// PostResponse is the full single-post projection.
type PostResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Published bool       `json:"published"`
	Author    PostAuthor `json:"author"`
}

// ToCreatedPostResponse converts a Post model to the create projection.
func ToCreatedPostResponse(post *model.Post) *CreatedPostResponse {
	return &CreatedPostResponse{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Author:  PostAuthor{Name: post.AuthorDisplayName()},
	}
}

// ToUpdatedPostResponse converts a Post model to the update projection.
func ToUpdatedPostResponse(post *model.Post) *UpdatedPostResponse {
	return &UpdatedPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
	}
}

// ToFeedResponse converts a slice of Post models to the feed projection.
func ToFeedResponse(posts []*model.Post) *FeedResponse {
	items := make([]FeedPostResponse, len(posts))
	for i, post := range posts {
		items[i] = FeedPostResponse{
			ID:      post.ID,
			Title:   post.Title,
			Content: post.Content,
			Author:  PostAuthor{Name: post.AuthorDisplayName()},
		}
	}
	return &FeedResponse{Posts: items}
}

// ToPostResponse converts a Post model to the full single-post projection.
func ToPostResponse(post *model.Post) *PostResponse {
	return &PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		Author:    PostAuthor{Name: post.AuthorDisplayName()},
	}
}
