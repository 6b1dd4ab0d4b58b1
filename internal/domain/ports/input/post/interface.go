package post_service

import (
	"context"

	model "blog-post-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	ListPosts(ctx context.Context, filters *model.PostFilters) (*model.PostPage, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
}
