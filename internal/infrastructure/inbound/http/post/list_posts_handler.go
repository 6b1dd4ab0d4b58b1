package post_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	model "blog-post-service/internal/domain/models"
	ports "blog-post-service/internal/domain/ports/output"
	"blog-post-service/internal/infrastructure/inbound/http/respond"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters *model.PostFilters) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService     PostLister
	validate        *validator.Validate
	log             ports.Logger
	pageSizeBetween string
}

func NewListPostsHandler(postService PostLister, validate *validator.Validate, log ports.Logger, maxPageSize int) *ListPostsHandler {
	return &ListPostsHandler{
		postService:     postService,
		validate:        validate,
		log:             log,
		pageSizeBetween: fmt.Sprintf("omitempty,gte=1,lte=%d", maxPageSize),
	}
}

// ListPosts serves GET /posts?page=&search=&pageSize=. A missing page means
// the first page. Only the leading integer of page is read ("2abc" is page 2);
// a page with no leading integer yields an empty page.
func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		page = parsePage(raw)
	}

	var pageSize int
	if raw := query.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.log.Debug("ListPosts pageSize is not an integer", slog.String("page_size", raw))
			respond.Error(w, http.StatusBadRequest, msgInvalidQuery)
			return
		}
		if err := h.validate.Var(parsed, h.pageSizeBetween); err != nil || parsed == 0 {
			h.log.Debug("ListPosts pageSize out of range", slog.Int("page_size", parsed))
			respond.Error(w, http.StatusBadRequest, msgInvalidQuery)
			return
		}
		pageSize = parsed
	}

	filters := &model.PostFilters{
		Search:   query.Get("search"),
		Page:     page,
		PageSize: pageSize,
	}

	h.log.Debug("Handling ListPosts request",
		slog.String("search", filters.Search),
		slog.Int("page", filters.Page),
		slog.Int("page_size", filters.PageSize))

	result, err := h.postService.ListPosts(r.Context(), filters)
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		respond.Error(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if result.Posts == nil {
		result.Posts = []*model.Post{}
	}

	respond.JSON(w, http.StatusOK, result)
}
