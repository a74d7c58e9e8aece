package render

import (
	"strings"
	"testing"

	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
}

func testColumns() []column.Column {
	return []column.Column{
		{ID: "name", Header: "Name", Sortable: true, Filterable: true,
			Accessor: func(r column.Row) any { return r.(person).Name }},
		{ID: "age", Header: "Age", Sortable: true, Align: column.AlignRight,
			Accessor: func(r column.Row) any { return r.(person).Age }},
	}
}

func testInput() Input {
	rows := []column.Row{person{"Ada", 36}, person{"Bob", 7}}
	return Input{
		Columns:        testColumns(),
		Rows:           rows,
		Display:        []int{0, 1},
		Offsets:        []int{0, 1},
		DisplayCount:   2,
		Sort:           sorting.State{ColumnID: "name", Direction: sorting.Ascending},
		SortingEnabled: true,
		Selection:      true,
		Identity:       func(src int) (any, bool) { return rows[src].(person).Name, true },
		IsSelected:     func(id any) bool { return id == "Bob" },
		TotalHeight:    2,
	}
}

func TestBuildRows(t *testing.T) {
	f := Build(testInput())
	require.Equal(t, StateRows, f.State)
	require.Len(t, f.Header, 2)
	assert.Equal(t, sorting.Ascending, f.Header[0].Direction)
	assert.Equal(t, sorting.None, f.Header[1].Direction)
	assert.True(t, f.Header[1].Sortable)

	require.Len(t, f.Rows, 2)
	assert.Equal(t, []string{"Ada", "36"}, f.Rows[0].Cells)
	assert.True(t, f.Rows[0].Selectable)
	assert.False(t, f.Rows[0].Selected)
	assert.True(t, f.Rows[1].Selected)
	assert.Equal(t, 1, f.Rows[1].Offset)
	assert.Equal(t, 1, f.Rows[1].Position)
}

func TestBuildLoadingPreemptsEverything(t *testing.T) {
	in := testInput()
	in.Loading = true
	in.DisplayCount = 0
	in.Display = nil

	f := Build(in)
	assert.Equal(t, StateLoading, f.State)
	assert.Equal(t, DefaultLoadingMessage, f.Message)
	assert.Empty(t, f.Header)
	assert.Empty(t, f.Rows)
	assert.Equal(t, DefaultLoadingMessage, Text(f, TextOptions{}))
	assert.Equal(t, "", Footer(f))
}

func TestBuildEmpty(t *testing.T) {
	in := testInput()
	in.Display = nil
	in.DisplayCount = 0
	in.EmptyMessage = "Nothing matches"

	f := Build(in)
	assert.Equal(t, StateEmpty, f.State)
	assert.Equal(t, "Nothing matches", f.Message)
	assert.Len(t, f.Header, 2, "empty grids keep their header")

	in.EmptyMessage = ""
	assert.Equal(t, DefaultEmptyMessage, Build(in).Message)
}

func TestBuildSortingDisabledHidesIndicators(t *testing.T) {
	in := testInput()
	in.SortingEnabled = false
	f := Build(in)
	assert.False(t, f.Header[0].Sortable)
	assert.Equal(t, sorting.None, f.Header[0].Direction)
}

func TestBuildMissingIdentityIsNotSelectable(t *testing.T) {
	in := testInput()
	in.Identity = func(src int) (any, bool) {
		name := in.Rows[src].(person).Name
		return name, name != "Ada"
	}
	f := Build(in)
	assert.False(t, f.Rows[0].Selectable)
	assert.True(t, f.Rows[1].Selectable)
}

func TestBuildPanickingAccessor(t *testing.T) {
	in := testInput()
	in.Columns = append(in.Columns, column.Column{
		ID: "bad", Accessor: func(column.Row) any { panic("nope") },
	})
	f := Build(in)
	assert.Equal(t, "", f.Rows[0].Cells[2])
	assert.Equal(t, "bad", f.Header[2].Label, "label falls back to the id")
}

func TestTextPlain(t *testing.T) {
	got := Text(Build(testInput()), TextOptions{})
	want := strings.Join([]string{
		"[ ] │ Name ▲ │ Age",
		"────┼────────┼────",
		"[ ] │ Ada    │  36",
		"[x] │ Bob    │   7",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestTextEmpty(t *testing.T) {
	in := testInput()
	in.Selection = false
	in.Display = nil
	in.DisplayCount = 0
	got := Text(Build(in), TextOptions{})
	want := strings.Join([]string{
		"Name ▲ │ Age",
		"───────┼────",
		DefaultEmptyMessage,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestTextColor(t *testing.T) {
	got := Text(Build(testInput()), DefaultTextOptions())
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[1m"), "bold header")
	assert.False(t, strings.Contains(lines[2], "\x1b["), "unselected row is plain")
	assert.Equal(t, "\x1b[7m[x] │ Bob    │   7\x1b[0m", lines[3])
}

func TestTextTruncatesAndAligns(t *testing.T) {
	in := testInput()
	in.Selection = false
	in.Columns[0].Width = 4
	in.Columns[0].Align = column.AlignCenter
	in.Rows = []column.Row{person{"Alexandra", 1}, person{"Al", 2}}
	in.Sort = sorting.State{}

	got := Text(Build(in), TextOptions{})
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Name │ Age", lines[0])
	assert.Equal(t, "Ale… │   1", lines[2])
	assert.Equal(t, " Al  │   2", lines[3])
}

func TestTextWideRunes(t *testing.T) {
	in := testInput()
	in.Selection = false
	in.Sort = sorting.State{}
	in.Rows = []column.Row{person{"日本", 1}, person{"x", 2}}

	lines := strings.Split(Text(Build(in), TextOptions{}), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "日本 │   1", lines[2])
	assert.Equal(t, "x    │   2", lines[3])
}

func TestTextSanitizesControlCharacters(t *testing.T) {
	in := testInput()
	in.Selection = false
	in.Sort = sorting.State{}
	in.Rows = []column.Row{person{"a\nb", 1}, person{"c\td", 2}}

	lines := strings.Split(Text(Build(in), TextOptions{}), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "a b  │   1", lines[2])
}

func TestFooter(t *testing.T) {
	f := Build(testInput())
	assert.Equal(t, "Rows 1-2 of 2", Footer(f))

	f.Page = PageInfo{Enabled: true, Index: 1, Count: 3, Size: 50}
	f.DisplayCount = 120
	assert.Equal(t, "Page 2 of 3 (120 rows)", Footer(f))

	empty := testInput()
	empty.Display = nil
	empty.DisplayCount = 0
	assert.Equal(t, "0 rows", Footer(Build(empty)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "rows", StateRows.String())
}
