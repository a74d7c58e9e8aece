// Package matcher implements the free-text row filter.
package matcher

import (
	"strings"

	"github.com/hnimtadd/datagrid/logger"
	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/utils"
	"golang.org/x/text/cases"
)

// Result is the outcome of one filter pass over a row collection.
type Result struct {
	// Source indices of the matching rows, in source order.
	Indices []int
}

// Count returns the number of matching rows.
func (r Result) Count() int {
	return len(r.Indices)
}

type Options struct {
	// When false the filter text is ignored and every row matches.
	Enabled bool
	Logger  logger.Logger
}

// Match returns the rows where at least one filterable column contains text,
// compared under Unicode case folding. An empty text matches every row.
func Match(rows []column.Row, columns []column.Column, text string, opts Options) Result {
	if !opts.Enabled || text == "" {
		return collect(utils.NewStaticBitSetFull(len(rows)))
	}

	filterable := make([]column.Column, 0, len(columns))
	for _, c := range columns {
		if c.Filterable {
			filterable = append(filterable, c)
		}
	}

	matched := utils.NewStaticBitSet(len(rows))
	fold := cases.Fold()
	needle := fold.String(text)
	for i, row := range rows {
		for _, c := range filterable {
			value, panicked := c.Value(row)
			if panicked && opts.Logger != nil {
				opts.Logger.Warn("accessor panicked, treating cell as empty",
					"column", c.ID, "row", i)
			}
			if strings.Contains(fold.String(value), needle) {
				matched.Set(i)
				break
			}
		}
	}
	return collect(matched)
}

func collect(matched *utils.StaticBitSet) Result {
	indices := make([]int, 0, matched.Count())
	for idx := range matched.All() {
		indices = append(indices, idx)
	}
	return Result{Indices: indices}
}
