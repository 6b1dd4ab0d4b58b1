package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"blog-post-service/internal/custom_errors"
	model "blog-post-service/internal/domain/models"
	ports "blog-post-service/internal/domain/ports/output"
	post_repository "blog-post-service/internal/domain/ports/output/post"
)

const (
	DefaultPageSize    = 5
	DefaultMaxPageSize = 50
)

type PostService struct {
	postRepo    post_repository.Repository
	log         ports.Logger
	metrics     ports.MetricsProvider
	pageSize    int
	maxPageSize int
}

type Option func(*PostService)

// WithPageSize sets the page size used when a list query does not name one,
// and the largest page size a caller may ask for.
func WithPageSize(pageSize, maxPageSize int) Option {
	return func(s *PostService) {
		if pageSize > 0 {
			s.pageSize = pageSize
		}
		if maxPageSize >= s.pageSize {
			s.maxPageSize = maxPageSize
		}
	}
}

func NewPostService(
	postRepo post_repository.Repository,
	log ports.Logger,
	metrics ports.MetricsProvider,
	opts ...Option,
) *PostService {
	s := &PostService{
		postRepo:    postRepo,
		log:         log,
		metrics:     metrics,
		pageSize:    DefaultPageSize,
		maxPageSize: DefaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if post == nil || !hasAllFields(post.Title, post.Author, post.Content) {
		s.log.Debug("Create post validation failed")
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrPostValidation
	}

	created, err := s.postRepo.Create(ctx, &model.Post{
		Title:   post.Title,
		Author:  post.Author,
		Content: post.Content,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrPostValidation) {
			return nil, custom_errors.ErrPostValidation
		}
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
	}

	s.metrics.IncrementPostOperations("create", true)
	s.refreshStoredGauge(ctx)
	s.log.Debug("Post created", slog.Int64("id", created.ID))
	return created, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
		}
	}

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

// ListPosts returns the requested 1-based page. Pages outside 1..totalPages
// come back empty rather than as an error.
func (s *PostService) ListPosts(ctx context.Context, filters *model.PostFilters) (*model.PostPage, error) {
	if filters == nil {
		filters = &model.PostFilters{Page: 1}
	}

	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	offset := pageOffset(filters.Page, pageSize)
	limit := pageSize

	s.log.Debug("Listing posts",
		slog.String("search", filters.Search),
		slog.Int("page", filters.Page),
		slog.Int("page_size", pageSize))

	posts, total, err := s.postRepo.List(ctx, model.PostFilters{
		Search: filters.Search,
		Limit:  &limit,
		Offset: &offset,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
	}

	if posts == nil {
		posts = []*model.Post{}
	}

	s.metrics.IncrementPostOperations("list", true)
	return &model.PostPage{
		Posts:      posts,
		TotalPages: model.TotalPages(total, pageSize),
	}, nil
}

// UpdatePost checks that the post exists before validating fields, so a
// missing post is reported as not found even when the update is also invalid.
func (s *PostService) UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("update", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to load post for update", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
	}

	if post == nil || !hasAllFields(post.Title, post.Author, post.Content) {
		s.log.Debug("Update post validation failed", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrPostValidation
	}

	updated, err := s.postRepo.Update(ctx, id, post)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrPostValidation):
			return nil, custom_errors.ErrPostValidation
		default:
			s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	s.log.Debug("Post updated", slog.Int64("id", id))
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", custom_errors.ErrInternal, err)
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.refreshStoredGauge(ctx)
	s.log.Debug("Post deleted", slog.Int64("id", id))
	return nil
}

func (s *PostService) refreshStoredGauge(ctx context.Context) {
	count, err := s.postRepo.Count(ctx)
	if err != nil {
		s.log.Warn("Failed to count posts", slog.String("error", err.Error()))
		return
	}
	s.metrics.SetPostsStored(count)
}

// pageOffset maps a 1-based page to a slice offset. Any page below 1 maps to
// -1, which the repository treats as an empty page.
func pageOffset(page, pageSize int) int {
	if page < 1 {
		return -1
	}
	offset := (page - 1) * pageSize
	if offset/pageSize != page-1 {
		return -1
	}
	return offset
}

func hasAllFields(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}
