package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-post-service/internal/custom_errors"
	ports "blog-post-service/internal/domain/ports/output"
	"blog-post-service/internal/infrastructure/inbound/http/respond"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			respond.Error(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.Error("Failed to delete post", slog.Int64("post_id", id), slog.String("error", err.Error()))
			respond.Error(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.log.Debug("Post deleted successfully", slog.Int64("post_id", id))
	respond.JSON(w, http.StatusOK, respond.MessageResponse{Message: msgDeleted})
}
