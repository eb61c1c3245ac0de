package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/handler/dto"
	"github.com/inkwell/inkwell/internal/model"
	"github.com/inkwell/inkwell/internal/service"
)

// PostStore defines the post operations the post handler needs.
type PostStore interface {
	Create(ctx context.Context, input service.CreatePostInput) (*model.Post, error)
	Update(ctx context.Context, input service.UpdatePostInput) (*model.Post, error)
	ListPublished(ctx context.Context) ([]*model.Post, error)
	Get(ctx context.Context, id string) (*model.Post, error)
}

// PostHandler handles blog post requests.
type PostHandler struct {
	svc    PostStore
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(svc PostStore, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/v1/blog/.
// Requires the acting identity set by the auth middleware; the created
// post is owned by it and published immediately.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID := auth.IdentityFromContext(r.Context())

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	post, err := h.svc.Create(r.Context(), service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	})
	if err != nil {
		h.logger.Error("error creating post", "error", err, "author_id", authorID)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	h.logger.Info("post_created", "post_id", post.ID, "author_id", authorID)

	writeJSON(w, http.StatusOK, dto.ToCreatedPostResponse(post))
}

// Update handles PUT /api/v1/blog/.
// The update matches on both the post id and the acting identity; a
// miss on either is reported as not found so other authors' posts
// stay unenumerable.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	authorID := auth.IdentityFromContext(r.Context())

	var req dto.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusNotFound, "post not found or unauthorized")
		return
	}

	post, err := h.svc.Update(r.Context(), service.UpdatePostInput{
		ID:        req.ID,
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  authorID,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post not found or unauthorized")
			return
		}
		h.logger.Error("error updating post", "error", err, "post_id", req.ID, "author_id", authorID)
		writeError(w, http.StatusNotFound, "post not found or unauthorized")
		return
	}

	h.logger.Info("post_updated", "post_id", post.ID, "author_id", authorID)

	writeJSON(w, http.StatusOK, dto.ToUpdatedPostResponse(post))
}

// Bulk handles GET /api/v1/blog/bulk.
// Public; returns every published post.
func (h *PostHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPublished(r.Context())
	if err != nil {
		h.logger.Error("error fetching posts", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFeedResponse(posts))
}

// Get handles GET /api/v1/blog/{id}.
// Public; returns the post regardless of published state.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		h.logger.Error("error fetching post", "error", err, "post_id", id)
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPostResponse(post))
}
