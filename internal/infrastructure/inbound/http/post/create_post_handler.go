package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/custom_errors"
	model "blog-post-service/internal/domain/models"
	ports "blog-post-service/internal/domain/ports/output"
	"blog-post-service/internal/infrastructure/inbound/http/respond"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequestInternal struct {
	Title   string `json:"title" validate:"required,notblank"`
	Author  string `json:"author" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequestInternal
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("CreatePost body decode failed", slog.String("error", err.Error()))
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("CreatePost validation failed", slog.String("error", err.Error()))
		respond.Error(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	created, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		Title:   req.Title,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostValidation):
			respond.Error(w, http.StatusBadRequest, msgMissingFields)
		default:
			h.log.Error("Failed to create post", slog.String("error", err.Error()))
			respond.Error(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	w.Header().Set("Location", "/posts/"+strconv.FormatInt(created.ID, 10))
	respond.JSON(w, http.StatusCreated, created)
}
