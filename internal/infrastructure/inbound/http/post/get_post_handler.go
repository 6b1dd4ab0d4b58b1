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

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		log:         log,
	}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePostID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			respond.Error(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.Error("Failed to get post", slog.Int64("post_id", id), slog.String("error", err.Error()))
			respond.Error(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	respond.JSON(w, http.StatusOK, post)
}
