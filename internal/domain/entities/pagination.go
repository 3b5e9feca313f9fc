package entities

import "math"

// Pagination bounds a listing query. Page is 1-indexed.
type Pagination struct {
	Page     int
	PageSize int
}

// Unreachable reports whether the page starts beyond the largest offset an int
// can hold. Such a page is always past the data.
func (p Pagination) Unreachable() bool {
	if p.Page < 1 || p.PageSize < 1 {
		return false
	}
	return p.Page-1 > (math.MaxInt-p.PageSize)/p.PageSize
}

// Skip is the number of rows preceding the requested page. It saturates so
// that Skip()+Take() never overflows.
func (p Pagination) Skip() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Unreachable() {
		return math.MaxInt - p.PageSize
	}
	return p.PageSize * (p.Page - 1)
}

// Take is the maximum number of rows in the requested page.
func (p Pagination) Take() int {
	if p.PageSize < 0 {
		return 0
	}
	return p.PageSize
}
