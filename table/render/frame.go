// Package render composes the header, body rows and empty/loading states of
// a grid into a Frame, and lays a Frame out as terminal text.
package render

import (
	"github.com/hnimtadd/datagrid/logger"
	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/sorting"
)

type State int

const (
	// The frame holds a header and at least one body row.
	StateRows State = iota
	// The display collection is empty; the frame holds the header and
	// Message.
	StateEmpty
	// The grid is loading; the frame holds only Message.
	StateLoading
)

func (s State) String() string {
	switch s {
	case StateRows:
		return "rows"
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	default:
		return "unknown"
	}
}

const (
	DefaultEmptyMessage   = "No data available"
	DefaultLoadingMessage = "Loading…"
)

type HeaderCell struct {
	ColumnID string
	Label    string
	Sortable bool
	// The current sort direction of this column; None for every column but
	// the active one.
	Direction sorting.Direction
	Width     int
	Align     column.Align
}

type BodyRow struct {
	// Position within the display collection.
	Position int
	// Index of the row in the caller's source collection.
	Source int
	// Vertical offset of the row, in row-height units of the whole list.
	Offset int

	Row   column.Row
	Cells []string

	// Selectable is false for rows without an identity.
	Selectable bool
	Selected   bool
}

type PageInfo struct {
	Enabled bool
	Index   int
	Count   int
	Size    int
	HasPrev bool
	HasNext bool
}

type Frame struct {
	State   State
	Header  []HeaderCell
	Rows    []BodyRow
	Message string

	// Whether rows carry a selection checkbox.
	Selection   bool
	AllSelected bool

	// Length of the display collection, of which Rows is the materialized
	// part.
	DisplayCount int
	TotalHeight  int
	ScrollOffset int
	Page         PageInfo
}

// Input is everything Build reads. Display and Offsets are parallel.
type Input struct {
	Columns []column.Column
	Rows    []column.Row

	// Source indices of the materialized rows, and their offsets.
	Display []int
	Offsets []int
	// Position of Display[0] within the display collection.
	FirstPosition int
	DisplayCount  int

	Sort           sorting.State
	SortingEnabled bool

	Selection bool
	// Identity of the source row at index src.
	Identity    func(src int) (id any, ok bool)
	IsSelected  func(id any) bool
	AllSelected bool

	Loading        bool
	LoadingMessage string
	EmptyMessage   string

	TotalHeight  int
	ScrollOffset int
	Page         PageInfo

	Logger logger.Logger
}

// Build composes a frame. Loading preempts everything else; an empty display
// collection yields the header plus the empty message.
func Build(in Input) Frame {
	if in.Loading {
		msg := in.LoadingMessage
		if msg == "" {
			msg = DefaultLoadingMessage
		}
		return Frame{State: StateLoading, Message: msg}
	}

	f := Frame{
		State:        StateRows,
		Header:       header(in),
		Selection:    in.Selection,
		AllSelected:  in.Selection && in.AllSelected,
		DisplayCount: in.DisplayCount,
		TotalHeight:  in.TotalHeight,
		ScrollOffset: in.ScrollOffset,
		Page:         in.Page,
	}
	if in.DisplayCount == 0 || len(in.Display) == 0 {
		f.State = StateEmpty
		f.Message = in.EmptyMessage
		if f.Message == "" {
			f.Message = DefaultEmptyMessage
		}
		return f
	}

	f.Rows = make([]BodyRow, 0, len(in.Display))
	for i, src := range in.Display {
		row := in.Rows[src]
		body := BodyRow{
			Position: in.FirstPosition + i,
			Source:   src,
			Row:      row,
			Cells:    make([]string, len(in.Columns)),
		}
		if i < len(in.Offsets) {
			body.Offset = in.Offsets[i]
		}
		for c, col := range in.Columns {
			value, panicked := col.Value(row)
			if panicked && in.Logger != nil {
				in.Logger.Warn("accessor panicked, rendering empty cell",
					"column", col.ID, "row", src)
			}
			body.Cells[c] = value
		}
		if in.Selection {
			if id, ok := identity(in.Identity, src); ok {
				body.Selectable = true
				body.Selected = in.IsSelected != nil && in.IsSelected(id)
			}
		}
		f.Rows = append(f.Rows, body)
	}
	return f
}

func header(in Input) []HeaderCell {
	cells := make([]HeaderCell, 0, len(in.Columns))
	for _, col := range in.Columns {
		sortable := in.SortingEnabled && col.Sortable
		cell := HeaderCell{
			ColumnID: col.ID,
			Label:    col.Header,
			Sortable: sortable,
			Width:    col.Width,
			Align:    col.Align,
		}
		if cell.Label == "" {
			cell.Label = col.ID
		}
		if sortable {
			cell.Direction = in.Sort.DirectionOf(col.ID)
		}
		cells = append(cells, cell)
	}
	return cells
}

func identity(fn func(int) (any, bool), src int) (any, bool) {
	if fn == nil {
		return nil, false
	}
	return fn(src)
}
