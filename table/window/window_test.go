package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeVisibleRangeTop(t *testing.T) {
	r := ComputeVisibleRange(0, 10, 1, 1000, 2)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 12, r.End)
	assert.Equal(t, 1000, r.TotalSize)
	assert.Len(t, r.Offsets, 12)
	assert.Equal(t, 0, r.Offsets[0])
	assert.Equal(t, 11, r.Offsets[11])
}

func TestComputeVisibleRangeMiddle(t *testing.T) {
	// Rows are 35 units tall; scrolled into row 28 partially.
	r := ComputeVisibleRange(1000, 350, 35, 10_000, 3)
	// first visible = 1000/35 = 28, last exclusive = ceil(1350/35) = 39
	assert.Equal(t, 25, r.Start)
	assert.Equal(t, 42, r.End)
	assert.Equal(t, 350_000, r.TotalSize)
	assert.Equal(t, 25*35, r.Offsets[0])
	assert.Equal(t, 1000, r.ScrollOffset)
}

func TestComputeVisibleRangeClampsScroll(t *testing.T) {
	r := ComputeVisibleRange(1_000_000, 10, 1, 100, 0)
	assert.Equal(t, 90, r.ScrollOffset)
	assert.Equal(t, 90, r.Start)
	assert.Equal(t, 100, r.End)

	r = ComputeVisibleRange(-5, 10, 1, 100, 0)
	assert.Equal(t, 0, r.ScrollOffset)
	assert.Equal(t, 0, r.Start)
}

func TestComputeVisibleRangeShortList(t *testing.T) {
	r := ComputeVisibleRange(40, 100, 10, 3, 5)
	assert.Equal(t, 0, r.ScrollOffset)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 3, r.End)
	assert.Equal(t, 30, r.TotalSize)
}

func TestComputeVisibleRangeEmpty(t *testing.T) {
	r := ComputeVisibleRange(0, 10, 1, 0, 5)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.TotalSize)

	r = ComputeVisibleRange(0, 0, 1, 100, 5)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 100, r.TotalSize)
}

func TestComputeVisibleRangeRejectsZeroItemSize(t *testing.T) {
	assert.Panics(t, func() { ComputeVisibleRange(0, 10, 0, 10, 0) })
}

func TestComputeVisibleRangeBoundIndependentOfCount(t *testing.T) {
	const viewport, itemSize, overscan = 480, 32, 4
	bound := (viewport+itemSize-1)/itemSize + 1 + 2*overscan
	for _, n := range []int{100, 10_000, 1_000_000} {
		for _, scroll := range []int{0, 7, 12_345, n * itemSize / 2, n * itemSize} {
			r := ComputeVisibleRange(scroll, viewport, itemSize, n, overscan)
			assert.LessOrEqual(t, r.Len(), bound, "n=%d scroll=%d", n, scroll)
			assert.Positive(t, r.Len())
		}
	}
}

func TestVirtualizerDefaults(t *testing.T) {
	v := NewVirtualizer(Options{})
	assert.Equal(t, DefaultItemSize, v.ItemSize())
	assert.Equal(t, 0, v.Range().Len())
	assert.Equal(t, DefaultViewportSize+DefaultOverscan, v.SetCount(100).Len())

	noOverscan := NewVirtualizer(Options{Overscan: -1})
	assert.Equal(t, DefaultViewportSize, noOverscan.SetCount(100).Len())
}

func TestVirtualizerRecomputesOnChanges(t *testing.T) {
	v := NewVirtualizer(Options{ItemSize: 2, Overscan: 1, ViewportSize: 10})
	r := v.SetCount(100)
	assert.Equal(t, Range{Start: 0, End: 6, Offsets: []int{0, 2, 4, 6, 8, 10}, TotalSize: 200}, r)

	r = v.ScrollTo(50)
	assert.Equal(t, 24, r.Start)
	assert.Equal(t, 31, r.End)

	r = v.ScrollBy(-4)
	assert.Equal(t, 46, v.ScrollOffset())
	assert.Equal(t, 22, r.Start)

	r = v.Resize(20)
	assert.Equal(t, 22, r.Start)
	assert.Equal(t, 34, r.End)

	// The list shrank below the scroll position: offset is clamped.
	r = v.SetCount(10)
	assert.Equal(t, 0, v.ScrollOffset())
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 10, r.End)
	assert.Equal(t, 0, v.ScrollTo(5).ScrollOffset)
}

func TestVirtualizerScrollToIndex(t *testing.T) {
	v := NewVirtualizer(Options{ItemSize: 1, Overscan: -1, ViewportSize: 10})
	v.SetCount(100)

	v.ScrollToIndex(25)
	assert.Equal(t, 16, v.ScrollOffset(), "row 25 becomes the last visible row")

	v.ScrollToIndex(20)
	assert.Equal(t, 16, v.ScrollOffset(), "already visible")

	v.ScrollToIndex(3)
	assert.Equal(t, 3, v.ScrollOffset())

	v.ScrollToIndex(1_000)
	assert.Equal(t, 90, v.ScrollOffset())
}
