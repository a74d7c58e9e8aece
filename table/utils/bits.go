package utils

import (
	"iter"
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a fixed size bit set. The grid uses it to record which
// source rows survived the filter stage.
type StaticBitSet struct {
	bits      []uint64
	size      int
	sliceSize int // Number of uint64s needed to store the bits
}

// NewStaticBitSet creates a new StaticBitSet with the given size.
func NewStaticBitSet(size int) *StaticBitSet {
	Assert(size >= 0, "negative bit set size")
	set := &StaticBitSet{size: size}
	set.init()
	return set
}

// NewStaticBitSetFull creates a StaticBitSet with all bits set to 1.
func NewStaticBitSetFull(size int) *StaticBitSet {
	set := NewStaticBitSet(size)
	if size > 0 {
		set.SetRange(0, size)
	}
	return set
}

// Changes the value of all bits in the range [start, end) to 1.
func (s *StaticBitSet) SetRange(start int, end int) {
	Assert(0 <= start)
	Assert(start <= end)
	Assert(end <= s.size, "End index out of bounds")
	if start == end {
		return
	}
	startAddr, startOffset := s.addr(start)
	endAddr, endOffset := s.addr(end - 1)

	// All bits from startOffset upwards.
	var low uint64 = ^((1 << startOffset) - 1)
	// All bits up to and including endOffset.
	var high uint64 = (1 << (endOffset + 1)) - 1
	if endOffset == bitSetSize-1 {
		high = ^uint64(0)
	}

	if startAddr == endAddr {
		s.bits[startAddr] |= low & high
		return
	}
	s.bits[startAddr] |= low
	for i := startAddr + 1; i < endAddr; i++ {
		s.bits[i] = ^uint64(0)
	}
	s.bits[endAddr] |= high
}

// Set sets the bit at the given idx to 1
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	s.bits[idx] |= 1 << offset
}

// IsSet returns if bit at given idx is set
func (s *StaticBitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	return s.bits[idx]&(1<<offset) != 0
}

// Count counts the number of bits set
func (s *StaticBitSet) Count() int {
	total := 0
	for i := range s.sliceSize {
		total += bits.OnesCount64(s.bits[i])
	}
	return total
}

// All yields the index of every set bit in ascending order.
func (s *StaticBitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for word, v := range s.bits {
			for v != 0 {
				offset := bits.TrailingZeros64(v)
				if !yield(word*bitSetSize + offset) {
					return
				}
				v &= v - 1
			}
		}
	}
}

// addr return the index of bit array containing the bit at idx and offset of
// givent bit in that array.
func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}

func (s *StaticBitSet) init() {
	s.sliceSize = (s.size + bitSetSize - 1) / bitSetSize
	s.bits = make([]uint64, s.sliceSize)
}
