// Package window computes which slice of a long, uniformly sized list must be
// materialized for a scrollable viewport.
package window

import "github.com/hnimtadd/datagrid/table/utils"

// Range is the materialized slice [Start, End) of a list.
type Range struct {
	Start, End int

	// Offsets[i] is the top of item Start+i, measured from the top of the
	// whole list.
	Offsets []int

	// The height of the whole list, itemCount × itemSize. Scrollbars size
	// their thumb from this even though most items never materialize.
	TotalSize int

	// The scroll offset actually used, after clamping.
	ScrollOffset int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) Contains(idx int) bool {
	return idx >= r.Start && idx < r.End
}

// MaxScrollOffset is the furthest the list can scroll before its last item
// sits at the bottom of the viewport.
func MaxScrollOffset(viewportSize, itemSize, itemCount int) int {
	return max(0, itemCount*itemSize-viewportSize)
}

// ComputeVisibleRange returns the items intersecting the viewport at
// scrollOffset, widened by overscan items on each side. The result size is
// bounded by ceil(viewportSize/itemSize) + 1 + 2×overscan regardless of
// itemCount.
func ComputeVisibleRange(scrollOffset, viewportSize, itemSize, itemCount, overscan int) Range {
	utils.Assert(itemSize > 0, "item size must be positive")
	overscan = max(0, overscan)
	itemCount = max(0, itemCount)

	total := itemCount * itemSize
	scrollOffset = utils.Clamp(scrollOffset, 0, MaxScrollOffset(viewportSize, itemSize, itemCount))
	r := Range{TotalSize: total, ScrollOffset: scrollOffset}
	if itemCount == 0 || viewportSize <= 0 {
		return r
	}

	first := scrollOffset / itemSize
	last := min(itemCount, utils.CeilDiv(scrollOffset+viewportSize, itemSize))

	r.Start = max(0, first-overscan)
	r.End = min(itemCount, last+overscan)
	r.Offsets = make([]int, 0, r.End-r.Start)
	for i := r.Start; i < r.End; i++ {
		r.Offsets = append(r.Offsets, i*itemSize)
	}
	return r
}
