package response

// Paginated wraps a page of items with the listing metadata every
// collection endpoint returns.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPaginated[T any](items []T, page, perPage int, total int64) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
