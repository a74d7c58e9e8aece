// Package pipeline derives the filtered and ordered views of a row
// collection. Each stage is memoized on a hash of its own inputs, so a sort
// change does not re-run the filter and a scroll re-runs nothing.
package pipeline

import (
	"fmt"

	"github.com/hnimtadd/datagrid/logger"
	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/matcher"
	"github.com/hnimtadd/datagrid/table/sorting"
	"github.com/hnimtadd/datagrid/table/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Input is everything the derived views depend on.
type Input struct {
	Rows    []column.Row
	Columns []column.Column

	// Generation must change whenever Rows or Columns are replaced; the
	// slices themselves are never hashed.
	Generation uint64

	FilterText       string
	FilteringEnabled bool

	Sort           sorting.State
	SortingEnabled bool
}

type filterKey struct {
	Generation uint64
	Text       string
	Enabled    bool
}

type orderKey struct {
	Filter    uint64
	ColumnID  string
	Direction sorting.Direction
	Enabled   bool
}

// Stats counts how often each stage actually ran.
type Stats struct {
	FilterRuns int
	OrderRuns  int
}

type stage struct {
	valid bool
	key   uint64
	out   []int
}

// Pipeline is the memo of one grid instance.
type Pipeline struct {
	sorter *sorting.Sorter
	logger logger.Logger

	filter stage
	order  stage
	stats  Stats
}

func New(sorter *sorting.Sorter, log logger.Logger) *Pipeline {
	utils.Assert(sorter != nil, "pipeline needs a sorter")
	if log == nil {
		log = logger.Discard
	}
	return &Pipeline{sorter: sorter, logger: log}
}

// Filtered returns the source indices of matching rows in source order.
func (p *Pipeline) Filtered(in Input) []int {
	key := hash(filterKey{
		Generation: in.Generation,
		Text:       in.FilterText,
		Enabled:    in.FilteringEnabled,
	})
	if p.filter.valid && p.filter.key == key {
		return p.filter.out
	}

	matched := matcher.Match(in.Rows, in.Columns, in.FilterText, matcher.Options{
		Enabled: in.FilteringEnabled,
		Logger:  p.logger,
	})
	p.filter = stage{valid: true, key: key, out: matched.Indices}
	p.stats.FilterRuns++
	p.logger.Debug("recomputed filter stage",
		"filter", in.FilterText, "matched", matched.Count(), "rows", len(in.Rows))
	return p.filter.out
}

// Ordered returns the filtered indices arranged by the active sort.
func (p *Pipeline) Ordered(in Input) []int {
	filtered := p.Filtered(in)

	sort := in.Sort.Normalize()
	col, found := column.Find(in.Columns, sort.ColumnID)
	if !in.SortingEnabled || !found || !col.Sortable {
		sort = sorting.State{}
	}

	key := hash(orderKey{
		Filter:    p.filter.key,
		ColumnID:  sort.ColumnID,
		Direction: sort.Direction,
		Enabled:   in.SortingEnabled,
	})
	if p.order.valid && p.order.key == key {
		return p.order.out
	}

	p.order = stage{
		valid: true,
		key:   key,
		out:   p.sorter.Order(in.Rows, filtered, col, sort.Direction),
	}
	p.stats.OrderRuns++
	p.logger.Debug("recomputed order stage",
		"column", sort.ColumnID, "direction", sort.Direction.String(), "rows", len(filtered))
	return p.order.out
}

// Invalidate drops every memoized stage.
func (p *Pipeline) Invalidate() {
	p.filter = stage{}
	p.order = stage{}
}

func (p *Pipeline) Stats() Stats {
	return p.stats
}

func hash(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash stage key: %v", err))
	return h
}
