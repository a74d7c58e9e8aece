package sorting

import (
	"fmt"
	"testing"

	"github.com/hnimtadd/datagrid/table/column"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type rec struct {
	Key string
	Tag string
}

var keyColumn = column.Column{
	ID:       "key",
	Sortable: true,
	Accessor: func(r column.Row) any { return r.(rec).Key },
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func keysOf(rows []column.Row, order []int) []string {
	out := make([]string, 0, len(order))
	for _, idx := range order {
		out = append(out, rows[idx].(rec).Key)
	}
	return out
}

func TestDirectionCycle(t *testing.T) {
	assert.Equal(t, Ascending, None.Next())
	assert.Equal(t, Descending, Ascending.Next())
	assert.Equal(t, None, Descending.Next())
	assert.Equal(t, "descending", Descending.String())
}

func TestStateActivateSameColumnCycles(t *testing.T) {
	var s State
	s = s.Activate("name")
	assert.Equal(t, State{ColumnID: "name", Direction: Ascending}, s)
	s = s.Activate("name")
	assert.Equal(t, State{ColumnID: "name", Direction: Descending}, s)
	s = s.Activate("name")
	assert.Equal(t, State{}, s, "third activation returns to none")
	assert.False(t, s.Active())
}

func TestStateActivateOtherColumnResets(t *testing.T) {
	s := State{ColumnID: "name", Direction: Descending}
	s = s.Activate("age")
	assert.Equal(t, State{ColumnID: "age", Direction: Ascending}, s)
	assert.Equal(t, None, s.DirectionOf("name"))
	assert.Equal(t, Ascending, s.DirectionOf("age"))
}

func TestStateNormalize(t *testing.T) {
	assert.Equal(t, State{}, State{ColumnID: "a"}.Normalize())
	assert.Equal(t, State{}, State{Direction: Ascending}.Normalize())
	assert.Equal(t, State{}, State{ColumnID: "a", Direction: Direction(9)}.Normalize())
	assert.Equal(t, State{ColumnID: "a", Direction: Descending},
		State{ColumnID: "a", Direction: Descending}.Normalize())
}

func TestOrderNumericAware(t *testing.T) {
	rows := []column.Row{rec{Key: "10"}, rec{Key: "2"}, rec{Key: "1"}}
	s := NewSorter(language.Und)
	order := s.Order(rows, identity(3), keyColumn, Ascending)
	assert.Equal(t, []string{"1", "2", "10"}, keysOf(rows, order))

	order = s.Order(rows, identity(3), keyColumn, Descending)
	assert.Equal(t, []string{"10", "2", "1"}, keysOf(rows, order))
}

func TestOrderNoneKeepsInput(t *testing.T) {
	rows := []column.Row{rec{Key: "b"}, rec{Key: "a"}}
	in := []int{1, 0}
	out := NewSorter(language.Und).Order(rows, in, keyColumn, None)
	assert.Equal(t, []int{1, 0}, out)

	out[0] = 42
	assert.Equal(t, 1, in[0], "result must not alias the input")
}

func TestOrderStable(t *testing.T) {
	rows := []column.Row{
		rec{Key: "b", Tag: "first"},
		rec{Key: "a", Tag: "x"},
		rec{Key: "b", Tag: "second"},
		rec{Key: "a", Tag: "y"},
		rec{Key: "b", Tag: "third"},
	}
	s := NewSorter(language.Und)
	for _, dir := range []Direction{Ascending, Descending} {
		order := s.Order(rows, identity(len(rows)), keyColumn, dir)
		var bs, as []string
		for _, idx := range order {
			r := rows[idx].(rec)
			if r.Key == "b" {
				bs = append(bs, r.Tag)
			} else {
				as = append(as, r.Tag)
			}
		}
		assert.Equal(t, []string{"first", "second", "third"}, bs, "direction %s", dir)
		assert.Equal(t, []string{"x", "y"}, as, "direction %s", dir)
	}
}

func TestOrderRowNames(t *testing.T) {
	var rows []column.Row
	for _, n := range []int{19, 100, 1, 10, 11, 2} {
		rows = append(rows, rec{Key: fmt.Sprintf("Row %d", n)})
	}
	order := NewSorter(language.Und).Order(rows, identity(len(rows)), keyColumn, Ascending)
	assert.Equal(t,
		[]string{"Row 1", "Row 2", "Row 10", "Row 11", "Row 19", "Row 100"},
		keysOf(rows, order))
}

func TestOrderPanickingAccessorSortsAsEmpty(t *testing.T) {
	col := column.Column{ID: "k", Accessor: func(r column.Row) any {
		if r.(rec).Key == "boom" {
			panic("bad row")
		}
		return r.(rec).Key
	}}
	rows := []column.Row{rec{Key: "b"}, rec{Key: "boom"}, rec{Key: "a"}}
	order := NewSorter(language.Und).Order(rows, identity(3), col, Ascending)
	assert.Equal(t, []int{1, 2, 0}, order)
}
