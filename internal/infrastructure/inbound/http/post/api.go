package post_http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	post_service "blog-post-service/internal/domain/ports/input/post"
	ports "blog-post-service/internal/domain/ports/output"
)

const maxBodyBytes = 1 << 20

const (
	msgMissingFields = "Missing required fields"
	msgInvalidJSON   = "Invalid JSON"
	msgNotFound      = "Post not found"
	msgInternal      = "Internal server error"
	msgInvalidQuery  = "Invalid query parameters"
	msgDeleted       = "Post deleted successfully"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

type PostHTTPService struct {
	createPostHandler *CreatePostHandler
	getPostHandler    *GetPostHandler
	listPostsHandler  *ListPostsHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, log ports.Logger, maxPageSize int) *PostHTTPService {
	validate := NewValidator()
	return &PostHTTPService{
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		listPostsHandler:  NewListPostsHandler(postService, validate, log, maxPageSize),
		updatePostHandler: NewUpdatePostHandler(postService, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

func (s *PostHTTPService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /posts", s.listPostsHandler.ListPosts)
	mux.HandleFunc("POST /posts", s.createPostHandler.CreatePost)
	mux.HandleFunc("GET /posts/{id}", s.getPostHandler.GetPost)
	mux.HandleFunc("PUT /posts/{id}", s.updatePostHandler.UpdatePost)
	mux.HandleFunc("DELETE /posts/{id}", s.deletePostHandler.DeletePost)
}

// parsePostID reads the {id} path value. Anything that is not a base-10
// integer can never name a post, so callers answer it with 404.
func parsePostID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON decodes exactly one JSON value from the request body. Anything
// but whitespace after that value is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// parsePage reads the leading integer of raw, ignoring leading whitespace and
// whatever follows the digits. Input with no leading integer gives 0.
func parsePage(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	page, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return page
}
