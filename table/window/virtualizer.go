package window

import "github.com/hnimtadd/datagrid/table/utils"

const (
	DefaultItemSize     = 1
	DefaultOverscan     = 5
	DefaultViewportSize = 20
)

type Options struct {
	// The estimated size of one item. Defaults to DefaultItemSize.
	ItemSize int
	// Extra items on each side of the viewport. Negative disables overscan,
	// zero picks DefaultOverscan.
	Overscan int
	// Defaults to DefaultViewportSize.
	ViewportSize int
}

// Virtualizer keeps the scroll state of one list and eagerly recomputes the
// materialized range whenever scroll position, viewport size or item count
// changes.
type Virtualizer struct {
	itemSize     int
	overscan     int
	viewportSize int
	scrollOffset int
	count        int

	current Range
}

func NewVirtualizer(opts Options) *Virtualizer {
	v := &Virtualizer{
		itemSize:     opts.ItemSize,
		overscan:     opts.Overscan,
		viewportSize: opts.ViewportSize,
	}
	if v.itemSize <= 0 {
		v.itemSize = DefaultItemSize
	}
	switch {
	case v.overscan == 0:
		v.overscan = DefaultOverscan
	case v.overscan < 0:
		v.overscan = 0
	}
	if v.viewportSize <= 0 {
		v.viewportSize = DefaultViewportSize
	}
	v.recompute()
	return v
}

// Range returns the last computed range.
func (v *Virtualizer) Range() Range {
	return v.current
}

func (v *Virtualizer) ScrollOffset() int {
	return v.scrollOffset
}

func (v *Virtualizer) ItemSize() int {
	return v.itemSize
}

// ScrollTo moves the viewport to offset, clamped to the scrollable extent.
func (v *Virtualizer) ScrollTo(offset int) Range {
	v.scrollOffset = offset
	return v.recompute()
}

// ScrollBy moves the viewport by delta.
func (v *Virtualizer) ScrollBy(delta int) Range {
	return v.ScrollTo(v.scrollOffset + delta)
}

// ScrollToIndex scrolls the minimum distance that makes item idx fully
// visible.
func (v *Virtualizer) ScrollToIndex(idx int) Range {
	if v.count == 0 {
		return v.ScrollTo(0)
	}
	idx = utils.Clamp(idx, 0, v.count-1)
	top := idx * v.itemSize
	bottom := top + v.itemSize
	switch {
	case top < v.scrollOffset:
		return v.ScrollTo(top)
	case bottom > v.scrollOffset+v.viewportSize:
		return v.ScrollTo(bottom - v.viewportSize)
	}
	return v.current
}

// Resize changes the viewport size.
func (v *Virtualizer) Resize(viewportSize int) Range {
	v.viewportSize = max(0, viewportSize)
	return v.recompute()
}

// SetCount changes the number of items, e.g. after the filter narrowed the
// list. The scroll offset is re-clamped.
func (v *Virtualizer) SetCount(count int) Range {
	v.count = max(0, count)
	return v.recompute()
}

func (v *Virtualizer) recompute() Range {
	v.current = ComputeVisibleRange(v.scrollOffset, v.viewportSize, v.itemSize, v.count, v.overscan)
	v.scrollOffset = v.current.ScrollOffset
	return v.current
}
