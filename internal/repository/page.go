package repository

// DefaultPageSize is the listing page size for every catalog entity.
const DefaultPageSize = 10

// Page is one page of a listing. Pages are 1-indexed; the Number field
// reflects the page actually served, which may differ from the one
// requested when the request was out of range.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// ClampPage normalizes a requested 1-indexed page number against the
// total item count. Out-of-range requests clamp to the nearest valid
// page instead of failing; an empty listing still has one (empty) page.
func ClampPage(requested, totalItems, size int) (page, totalPages int) {
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages = (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	page = requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
