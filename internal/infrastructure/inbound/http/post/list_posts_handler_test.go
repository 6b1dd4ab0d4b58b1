package post_http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	model "blog-post-service/internal/domain/models"
	"blog-post-service/internal/infrastructure/inbound/http/post"
	"blog-post-service/internal/infrastructure/logger"
	mockpost "blog-post-service/mocks/post"
)

func TestListPostsHandler_ListPosts(t *testing.T) {
	validate := post_http.NewValidator()
	log := logger.New("test")

	posts := []*model.Post{
		{ID: 1, Title: "Alpha", Author: "A", Content: "C"},
		{ID: 3, Title: "ALPHABET", Author: "B", Content: "D"},
	}

	tests := []struct {
		name       string
		query      string
		mocks      func(s *mockpost.Service)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "Defaults",
			query: "",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Page: 1}).
					Return(&model.PostPage{Posts: []*model.Post{}, TotalPages: 0}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"posts":[],"totalPages":0}`,
		},
		{
			name:  "Search and page",
			query: "?search=alpha&page=2",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Search: "alpha", Page: 2}).
					Return(&model.PostPage{Posts: posts, TotalPages: 2}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"posts":[{"id":1,"title":"Alpha","author":"A","content":"C"},` +
				`{"id":3,"title":"ALPHABET","author":"B","content":"D"}],"totalPages":2}`,
		},
		{
			name:  "Explicit page size",
			query: "?pageSize=10",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Page: 1, PageSize: 10}).
					Return(&model.PostPage{Posts: posts, TotalPages: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Leading digits of page are used",
			query: "?page=2abc",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Page: 2}).
					Return(&model.PostPage{Posts: posts, TotalPages: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Non-numeric page yields empty page",
			query: "?page=abc",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Page: 0}).
					Return(&model.PostPage{Posts: []*model.Post{}, TotalPages: 3}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"posts":[],"totalPages":3}`,
		},
		{
			name:  "Nil posts encoded as empty array",
			query: "?page=9",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, &model.PostFilters{Page: 9}).
					Return(&model.PostPage{TotalPages: 1}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"posts":[],"totalPages":1}`,
		},
		{
			name:       "Page size above maximum",
			query:      "?pageSize=51",
			mocks:      func(s *mockpost.Service) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid query parameters"}`,
		},
		{
			name:       "Zero page size",
			query:      "?pageSize=0",
			mocks:      func(s *mockpost.Service) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid query parameters"}`,
		},
		{
			name:       "Non-numeric page size",
			query:      "?pageSize=big",
			mocks:      func(s *mockpost.Service) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid query parameters"}`,
		},
		{
			name:  "Internal error",
			query: "",
			mocks: func(s *mockpost.Service) {
				s.On("ListPosts", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postService := mockpost.NewService(t)
			tt.mocks(postService)
			handler := post_http.NewListPostsHandler(postService, validate, log, 50)

			req := httptest.NewRequest(http.MethodGet, "/posts"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ListPosts(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
