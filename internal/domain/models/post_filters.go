package model

// PostFilters describes a list query. Page and PageSize are what callers of the
// service pass in; the service translates them into Offset and Limit for the
// repository.
type PostFilters struct {
	Search   string
	Page     int
	PageSize int
	Limit    *int
	Offset   *int
}
