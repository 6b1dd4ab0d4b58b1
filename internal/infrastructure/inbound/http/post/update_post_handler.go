package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-post-service/internal/custom_errors"
	model "blog-post-service/internal/domain/models"
	ports "blog-post-service/internal/domain/ports/output"
	"blog-post-service/internal/infrastructure/inbound/http/respond"
)

type PostUpdater interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		log:         log,
	}
}

// UpdatePost looks the post up before reading the body, so a missing post is
// reported as not found whatever the body holds. Field validation is left to
// the service.
func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	if _, err := h.postService.GetPostByID(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			respond.Error(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.Error("Failed to load post for update", slog.Int64("post_id", id), slog.String("error", err.Error()))
			respond.Error(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	var req model.UpdatePostDTO
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("UpdatePost body decode failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	updated, err := h.postService.UpdatePost(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			respond.Error(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, custom_errors.ErrPostValidation):
			respond.Error(w, http.StatusBadRequest, msgMissingFields)
		default:
			h.log.Error("Failed to update post", slog.Int64("post_id", id), slog.String("error", err.Error()))
			respond.Error(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	respond.JSON(w, http.StatusOK, updated)
}
