package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 15
	MaxLimit     = 100
)

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NormalizePage returns page with zero treated as absent and anything below
// one raised to one.
func NormalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// NormalizeLimit clamps limit into [1, MaxLimit]. Zero means absent.
func NormalizeLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// Offset returns the first row index of the page. ok is false when the
// offset does not fit in an int; such a page is necessarily empty.
func (p Pagination) Offset() (offset int, ok bool) {
	if p.Page < 1 || p.Limit < 1 {
		return 0, true
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return 0, false
	}
	return (p.Page - 1) * p.Limit, true
}
