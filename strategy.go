package datagrid

import (
	"github.com/hnimtadd/datagrid/table/paging"
	"github.com/hnimtadd/datagrid/table/render"
	"github.com/hnimtadd/datagrid/table/window"
)

// DisplayStrategy turns the ordered collection into the display collection.
// It is chosen once, at construction: either Windowed or Paginated.
type DisplayStrategy interface {
	// display derives the view of ordered, a slice of source indices.
	display(ordered []int) view
	// reset is called when the filter or the sort changed.
	reset()
}

// view is the display collection plus the part of it that materializes.
type view struct {
	// Source indices of the display collection.
	display []int

	// Source indices of the materialized rows, their offsets and the
	// position of the first one within display.
	materialized []int
	offsets      []int
	first        int

	totalHeight  int
	scrollOffset int
	page         render.PageInfo
}

// Windowed reads the whole ordered collection and materializes only the rows
// intersecting the viewport. With Virtual unset every row materializes.
type Windowed struct {
	Virtualizer *window.Virtualizer
	Virtual     bool
}

func (w *Windowed) display(ordered []int) view {
	v := view{display: ordered}
	r := w.Virtualizer.SetCount(len(ordered))
	v.totalHeight = r.TotalSize
	v.scrollOffset = r.ScrollOffset

	if !w.Virtual {
		v.materialized = ordered
		v.offsets = make([]int, len(ordered))
		for i := range ordered {
			v.offsets[i] = i * w.Virtualizer.ItemSize()
		}
		return v
	}
	v.materialized = ordered[r.Start:r.End]
	v.offsets = r.Offsets
	v.first = r.Start
	return v
}

func (w *Windowed) reset() {}

// Paginated shows one fixed-size page of the ordered collection.
type Paginated struct {
	Paginator *paging.Paginator
	RowHeight int
}

func (p *Paginated) display(ordered []int) view {
	start, end := p.Paginator.Slice(len(ordered))
	page := ordered[start:end]
	v := view{
		display:      page,
		materialized: page,
		offsets:      make([]int, len(page)),
		totalHeight:  len(page) * p.RowHeight,
		page: render.PageInfo{
			Enabled: true,
			Index:   p.Paginator.Index(),
			Count:   p.Paginator.PageCount(len(ordered)),
			Size:    p.Paginator.PageSize(),
			HasPrev: p.Paginator.HasPrev(),
			HasNext: p.Paginator.HasNext(len(ordered)),
		},
	}
	for i := range page {
		v.offsets[i] = i * p.RowHeight
	}
	return v
}

func (p *Paginated) reset() {
	p.Paginator.Reset()
}

var (
	_ DisplayStrategy = (*Windowed)(nil)
	_ DisplayStrategy = (*Paginated)(nil)
)
