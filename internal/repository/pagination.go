package repository

// DefaultPageSize is used when a list request does not carry a usable page size.
const DefaultPageSize = 50

// Pagination is a 1-indexed page request. Out-of-range values are clamped,
// not rejected.
type Pagination struct {
	Page     int
	PageSize int
}

// LimitOffset clamps the request and returns SQL LIMIT/OFFSET values.
// defaultSize overrides DefaultPageSize for entities with a different default.
func (p Pagination) LimitOffset(defaultSize int) (limit, offset int) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size <= 0 {
		size = defaultSize
	}
	return size, (page - 1) * size
}
