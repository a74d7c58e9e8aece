// Package paging slices an ordered collection into fixed-size pages.
package paging

import "github.com/hnimtadd/datagrid/table/utils"

const DefaultPageSize = 50

// Paginator tracks the current page of a collection whose length is passed
// to every call, so the index can never outlive a shrinking collection.
type Paginator struct {
	pageSize int
	index    int
}

// NewPaginator returns a paginator on page 0. A non-positive size selects
// DefaultPageSize.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Index returns the current page index.
func (p *Paginator) Index() int {
	return p.index
}

// PageCount returns ceil(n / pageSize).
func (p *Paginator) PageCount(n int) int {
	return utils.CeilDiv(n, p.pageSize)
}

// Clamp moves the index onto the last valid page when the collection of
// length n no longer reaches the current one.
func (p *Paginator) Clamp(n int) int {
	p.index = utils.Clamp(p.index, 0, p.PageCount(n)-1)
	return p.index
}

// Slice returns the bounds [start, end) of the current page within a
// collection of length n.
func (p *Paginator) Slice(n int) (start, end int) {
	p.Clamp(n)
	start = min(p.index*p.pageSize, n)
	end = min(start+p.pageSize, n)
	return start, end
}

func (p *Paginator) HasPrev() bool {
	return p.index > 0
}

func (p *Paginator) HasNext(n int) bool {
	return p.index < p.PageCount(n)-1
}

// Next advances one page. It is a no-op on the last page.
func (p *Paginator) Next(n int) bool {
	p.Clamp(n)
	if !p.HasNext(n) {
		return false
	}
	p.index++
	return true
}

// Prev goes back one page. It is a no-op on the first page.
func (p *Paginator) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.index--
	return true
}

// GoTo jumps to page idx, clamped to the valid pages, and reports whether
// the index changed.
func (p *Paginator) GoTo(idx, n int) bool {
	before := p.index
	p.index = idx
	return p.Clamp(n) != before
}

// Reset returns to the first page.
func (p *Paginator) Reset() {
	p.index = 0
}
