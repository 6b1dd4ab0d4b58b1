package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-post-service/internal/custom_errors"
	model "blog-post-service/internal/domain/models"
	post_repository "blog-post-service/internal/domain/ports/output/post"
	"blog-post-service/internal/infrastructure/logger"
	"blog-post-service/internal/infrastructure/outbound/repository/post/memory"
)

func setupPostTest(t *testing.T) post_repository.Repository {
	t.Helper()
	return memory.NewPostRepository(logger.New("test"))
}

func intPtr(v int) *int {
	return &v
}

func seedPosts(t *testing.T, repo post_repository.Repository, titles ...string) []*model.Post {
	t.Helper()
	created := make([]*model.Post, 0, len(titles))
	for _, title := range titles {
		post, err := repo.Create(context.Background(), &model.Post{
			Title:   title,
			Author:  "author",
			Content: "content of " + title,
		})
		require.NoError(t, err)
		created = append(created, post)
	}
	return created
}

func TestPostRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		post    *model.Post
		wantErr error
	}{
		{
			name:    "successful creation",
			post:    &model.Post{Title: "Test Post", Author: "Jane", Content: "Test content"},
			wantErr: nil,
		},
		{
			name:    "empty title",
			post:    &model.Post{Title: "", Author: "Jane", Content: "Test content"},
			wantErr: custom_errors.ErrPostValidation,
		},
		{
			name:    "blank author",
			post:    &model.Post{Title: "Test Post", Author: "   ", Content: "Test content"},
			wantErr: custom_errors.ErrPostValidation,
		},
		{
			name:    "empty content",
			post:    &model.Post{Title: "Test Post", Author: "Jane"},
			wantErr: custom_errors.ErrPostValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupPostTest(t)

			got, err := repo.Create(context.Background(), tt.post)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				count, err := repo.Count(context.Background())
				require.NoError(t, err)
				assert.Zero(t, count)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, tt.post.Title, got.Title)
			assert.Equal(t, tt.post.Author, got.Author)
			assert.Equal(t, tt.post.Content, got.Content)
		})
	}
}

func TestPostRepository_Create_IDsIncrease(t *testing.T) {
	repo := setupPostTest(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		post, err := repo.Create(ctx, &model.Post{Title: "t", Author: "a", Content: "c"})
		require.NoError(t, err)
		assert.Greater(t, post.ID, last)
		last = post.ID
	}

	// a rejected create does not consume an id
	_, err := repo.Create(ctx, &model.Post{})
	require.ErrorIs(t, err, custom_errors.ErrPostValidation)

	require.NoError(t, repo.Delete(ctx, last))

	post, err := repo.Create(ctx, &model.Post{Title: "t", Author: "a", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, last+1, post.ID, "ids must not be reused after deletion")
}

func TestPostRepository_GetByID(t *testing.T) {
	repo := setupPostTest(t)
	created := seedPosts(t, repo, "Test Post")[0]

	tests := []struct {
		name    string
		id      int64
		want    *model.Post
		wantErr error
	}{
		{
			name:    "successful get",
			id:      created.ID,
			want:    created,
			wantErr: nil,
		},
		{
			name:    "post not found",
			id:      999,
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "zero id",
			id:      0,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostRepository_GetByID_ReturnsCopy(t *testing.T) {
	repo := setupPostTest(t)
	created := seedPosts(t, repo, "Original")[0]

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	got.Title = "Mutated"

	again, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestPostRepository_Update(t *testing.T) {
	repo := setupPostTest(t)
	created := seedPosts(t, repo, "First", "Second", "Third")

	tests := []struct {
		name    string
		id      int64
		update  *model.UpdatePostDTO
		wantErr error
	}{
		{
			name:    "successful update",
			id:      created[1].ID,
			update:  &model.UpdatePostDTO{Title: "New title", Author: "New author", Content: "New content"},
			wantErr: nil,
		},
		{
			name:    "post not found",
			id:      999,
			update:  &model.UpdatePostDTO{Title: "t", Author: "a", Content: "c"},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "not found wins over blank fields",
			id:      999,
			update:  &model.UpdatePostDTO{},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "blank fields",
			id:      created[0].ID,
			update:  &model.UpdatePostDTO{Title: "t", Author: "", Content: "c"},
			wantErr: custom_errors.ErrPostValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Update(context.Background(), tt.id, tt.update)

			count, countErr := repo.Count(context.Background())
			require.NoError(t, countErr)
			assert.Equal(t, 3, count)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			want := &model.Post{ID: tt.id, Title: tt.update.Title, Author: tt.update.Author, Content: tt.update.Content}
			assert.Equal(t, want, got)

			fetched, err := repo.GetByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, want, fetched)
		})
	}

	t.Run("update keeps position", func(t *testing.T) {
		posts, _, err := repo.List(context.Background(), model.PostFilters{})
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, created[0].ID, posts[0].ID)
		assert.Equal(t, created[1].ID, posts[1].ID)
		assert.Equal(t, "New title", posts[1].Title)
		assert.Equal(t, created[2].ID, posts[2].ID)
	})
}

func TestPostRepository_Delete(t *testing.T) {
	repo := setupPostTest(t)
	created := seedPosts(t, repo, "First", "Second", "Third")

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{
			name:    "successful delete",
			id:      created[1].ID,
			wantErr: nil,
		},
		{
			name:    "already deleted",
			id:      created[1].ID,
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:    "post not found",
			id:      999,
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Delete(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			_, err = repo.GetByID(context.Background(), tt.id)
			assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		})
	}

	t.Run("remaining posts keep ids and order", func(t *testing.T) {
		posts, total, err := repo.List(context.Background(), model.PostFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, posts, 2)
		assert.Equal(t, created[0], posts[0])
		assert.Equal(t, created[2], posts[1])
	})
}

func TestPostRepository_List(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		repo := setupPostTest(t)

		posts, total, err := repo.List(context.Background(), model.PostFilters{Limit: intPtr(5), Offset: intPtr(0)})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
		assert.Zero(t, total)
	})

	repo := setupPostTest(t)
	titles := make([]string, 12)
	for i := range titles {
		titles[i] = fmt.Sprintf("Post %d", i+1)
	}
	created := seedPosts(t, repo, titles...)

	tests := []struct {
		name      string
		filters   model.PostFilters
		wantIDs   []int64
		wantTotal int
	}{
		{
			name:      "first page",
			filters:   model.PostFilters{Limit: intPtr(5), Offset: intPtr(0)},
			wantIDs:   []int64{1, 2, 3, 4, 5},
			wantTotal: 12,
		},
		{
			name:      "last partial page",
			filters:   model.PostFilters{Limit: intPtr(5), Offset: intPtr(10)},
			wantIDs:   []int64{11, 12},
			wantTotal: 12,
		},
		{
			name:      "offset past the end",
			filters:   model.PostFilters{Limit: intPtr(5), Offset: intPtr(15)},
			wantIDs:   []int64{},
			wantTotal: 12,
		},
		{
			name:      "negative offset",
			filters:   model.PostFilters{Limit: intPtr(5), Offset: intPtr(-5)},
			wantIDs:   []int64{},
			wantTotal: 12,
		},
		{
			name:      "no limit",
			filters:   model.PostFilters{Offset: intPtr(9)},
			wantIDs:   []int64{10, 11, 12},
			wantTotal: 12,
		},
		{
			name:      "zero limit",
			filters:   model.PostFilters{Limit: intPtr(0)},
			wantIDs:   []int64{},
			wantTotal: 12,
		},
		{
			name:      "search narrows total",
			filters:   model.PostFilters{Search: "post 1", Limit: intPtr(5), Offset: intPtr(0)},
			wantIDs:   []int64{1, 10, 11, 12},
			wantTotal: 4,
		},
		{
			name:      "search without matches",
			filters:   model.PostFilters{Search: "nothing"},
			wantIDs:   []int64{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, total, err := repo.List(context.Background(), tt.filters)
			require.NoError(t, err)
			require.NotNil(t, posts)
			assert.Equal(t, tt.wantTotal, total)

			gotIDs := make([]int64, 0, len(posts))
			for _, p := range posts {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	t.Run("results are copies", func(t *testing.T) {
		posts, _, err := repo.List(context.Background(), model.PostFilters{Limit: intPtr(1)})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		posts[0].Title = "Mutated"

		got, err := repo.GetByID(context.Background(), created[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Post 1", got.Title)
	})
}

func TestPostRepository_List_CaseInsensitiveSearch(t *testing.T) {
	repo := setupPostTest(t)
	seedPosts(t, repo, "Alpha", "beta", "ALPHABET")

	posts, total, err := repo.List(context.Background(), model.PostFilters{Search: "alpha", Limit: intPtr(5), Offset: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "Alpha", posts[0].Title)
	assert.Equal(t, "ALPHABET", posts[1].Title)

	posts, total, err = repo.List(context.Background(), model.PostFilters{Search: "BeT"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "beta", posts[0].Title)
	assert.Equal(t, "ALPHABET", posts[1].Title)
}

func TestPostRepository_ConcurrentCreate(t *testing.T) {
	repo := setupPostTest(t)
	ctx := context.Background()

	const workers = 50
	ids := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			post, err := repo.Create(ctx, &model.Post{Title: fmt.Sprintf("t%d", i), Author: "a", Content: "c"})
			if assert.NoError(t, err) {
				ids <- post.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}
