package domain

// PostPage is one page of posts attached to a term.
type PostPage struct {
	Term       *Term  `json:"term"`
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalCount int    `json:"total_count"`
	TotalPages int    `json:"total_pages"`
}

// TotalPages returns ceil(total/perPage). perPage must be positive.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Offset returns the row offset of page (1-based).
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
