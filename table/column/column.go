package column

import (
	"errors"
	"fmt"
	"reflect"
)

// Row is an opaque record supplied by the caller. The grid never mutates it.
type Row = any

// Accessor extracts the displayable value of one cell.
type Accessor func(row Row) any

// IdentityFunc resolves the stable identity of a row. ok is false when the
// row has no identity; such rows can never be selected.
type IdentityFunc func(row Row) (id any, ok bool)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Column describes one column of the grid.
type Column struct {
	// Unique within one grid.
	ID     string
	Header string

	Accessor Accessor

	Sortable   bool
	Filterable bool

	// Width in terminal cells. Zero means the renderer sizes the column to
	// fit its header and visible cells.
	Width int
	Align Align
}

var (
	ErrNoColumns       = errors.New("at least one column is required")
	ErrEmptyColumnID   = errors.New("column id is empty")
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrNilAccessor     = errors.New("column accessor is nil")
)

// Validate checks the column set invariants: at least one column, unique
// non-empty ids and an accessor on every column.
func Validate(columns []Column) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if c.ID == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyColumnID)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("column %q: %w", c.ID, ErrDuplicateColumn)
		}
		seen[c.ID] = struct{}{}
		if c.Accessor == nil {
			return fmt.Errorf("column %q: %w", c.ID, ErrNilAccessor)
		}
	}
	return nil
}

// Find returns the column with the given id.
func Find(columns []Column, id string) (Column, bool) {
	for _, c := range columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Identity resolves the identity of row through fn. Missing identities,
// nil values and values that cannot be used as map keys all report false.
func Identity(fn IdentityFunc, row Row) (id any, ok bool) {
	if fn == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			id, ok = nil, false
		}
	}()
	id, ok = fn(row)
	if !ok || !Comparable(id) {
		return nil, false
	}
	return id, true
}

// Comparable reports whether id is non-nil and usable as a map key. A
// comparable type can still hold an unhashable value in an interface field,
// so the value itself is hashed once.
func Comparable(id any) (ok bool) {
	if id == nil || !reflect.TypeOf(id).Comparable() {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	_ = map[any]struct{}{id: {}}
	return true
}
