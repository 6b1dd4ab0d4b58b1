package model

type PostPage struct {
	Posts      []*Post `json:"posts"`
	TotalPages int     `json:"totalPages"`
}

// TotalPages returns ceil(total / pageSize), or 0 when nothing matched.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
