// Package sorting orders rows by the string form of one column using
// locale-aware, numeric-sensitive collation.
package sorting

import (
	"slices"

	"github.com/hnimtadd/datagrid/table/column"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter is not safe for concurrent use; the underlying collator keeps
// scratch buffers between comparisons.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter builds a Sorter for tag. Digit runs are compared by numeric
// value for every column, so "Row 2" sorts before "Row 10".
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{
		collator: collate.New(tag, collate.Numeric),
	}
}

// Compare collates two cell strings.
func (s *Sorter) Compare(a, b string) int {
	return s.collator.CompareString(a, b)
}

// Order returns a new slice holding indices arranged by the value of col in
// the given direction. Rows with equal values keep their input order. With
// direction None the input order is returned unchanged.
func (s *Sorter) Order(rows []column.Row, indices []int, col column.Column, direction Direction) []int {
	out := slices.Clone(indices)
	if direction == None || len(out) < 2 {
		return out
	}

	keys := make(map[int]string, len(out))
	for _, idx := range out {
		keys[idx], _ = col.Value(rows[idx])
	}

	slices.SortStableFunc(out, func(a, b int) int {
		c := s.collator.CompareString(keys[a], keys[b])
		if direction == Descending {
			return -c
		}
		return c
	})
	return out
}
