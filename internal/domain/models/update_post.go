package model

// UpdatePostDTO replaces every text field of a post. Partial updates are not supported.
type UpdatePostDTO struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
