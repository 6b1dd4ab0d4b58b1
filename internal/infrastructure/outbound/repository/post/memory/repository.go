package memory

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"blog-post-service/internal/custom_errors"
	model "blog-post-service/internal/domain/models"
	ports "blog-post-service/internal/domain/ports/output"
)

// PostRepository keeps posts in insertion order. Ids come from nextID and are
// never reused, even after the post holding them is deleted.
type PostRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  []*model.Post
	nextID int64
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make([]*model.Post, 0),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	if isBlank(post.Title) || isBlank(post.Author) || isBlank(post.Content) {
		p.log.Debug("Rejecting post with blank fields (memory impl)")
		return nil, custom_errors.ErrPostValidation
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:      p.nextID,
		Title:   post.Title,
		Author:  post.Author,
		Content: post.Content,
	}
	p.nextID++

	p.posts = append(p.posts, newPost)

	p.log.Debug("Successfully created post (memory impl)", slog.Int64("id", newPost.ID), slog.String("author", newPost.Author))
	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := p.indexOf(id)
	if i < 0 {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *p.posts[i]
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		p.log.Debug("Post not found for update", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	if isBlank(update.Title) || isBlank(update.Author) || isBlank(update.Content) {
		return nil, custom_errors.ErrPostValidation
	}

	post := p.posts[i]
	post.Title = update.Title
	post.Author = update.Author
	post.Content = update.Content

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.indexOf(id)
	if i < 0 {
		p.log.Debug("Post not found for delete", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	p.posts = slices.Delete(p.posts, i, i+1)
	return nil
}

// List filters by case-insensitive title substring, then applies offset and
// limit. The returned total is the number of matches before slicing.
func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.log.Debug("Listing posts with filters (memory impl)",
		slog.String("search", filters.Search),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	search := strings.ToLower(filters.Search)

	p.mu.RLock()
	defer p.mu.RUnlock()

	filteredPosts := make([]*model.Post, 0)
	for _, post := range p.posts {
		if search != "" && !strings.Contains(strings.ToLower(post.Title), search) {
			continue
		}
		postCopy := *post
		filteredPosts = append(filteredPosts, &postCopy)
	}

	total := len(filteredPosts)

	if filters.Offset != nil {
		offset := *filters.Offset
		if offset < 0 || offset >= total {
			p.log.Debug("Offset outside results, returning empty list",
				slog.Int("offset", offset), slog.Int("results_count", total))
			return []*model.Post{}, total, nil
		}
		filteredPosts = filteredPosts[offset:]
	}

	if filters.Limit != nil {
		limit := max(*filters.Limit, 0)
		if limit < len(filteredPosts) {
			filteredPosts = filteredPosts[:limit]
		}
	}

	p.log.Debug("Returning filtered posts", slog.Int("count", len(filteredPosts)), slog.Int("total", total))
	return filteredPosts, total, nil
}

func (p *PostRepository) Count(ctx context.Context) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.posts), nil
}

// indexOf must be called with mu held.
func (p *PostRepository) indexOf(id int64) int {
	return slices.IndexFunc(p.posts, func(post *model.Post) bool {
		return post.ID == id
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
