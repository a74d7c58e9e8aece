// Package datagrid is a headless data grid for large in-memory row
// collections. It filters, sorts, tracks a multi-row selection and renders
// only the slice of rows a viewport can show, or one page at a time.
//
// A Grid is driven from a single goroutine (the UI loop). Every state change
// recomputes the derived view synchronously before returning.
package datagrid

import (
	"fmt"
	"slices"

	"github.com/hnimtadd/datagrid/logger"
	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/paging"
	"github.com/hnimtadd/datagrid/table/pipeline"
	"github.com/hnimtadd/datagrid/table/render"
	"github.com/hnimtadd/datagrid/table/selection"
	"github.com/hnimtadd/datagrid/table/sorting"
	"github.com/hnimtadd/datagrid/table/window"
	"golang.org/x/text/language"
)

type (
	Row    = column.Row
	Column = column.Column
)

type Options struct {
	// Source rows and column definitions. The grid reads them and never
	// writes to them.
	Rows    []Row
	Columns []Column

	// Resolves row identities. Selection stays disabled without it.
	Identity column.IdentityFunc

	EnableSelection  bool
	DisableSorting   bool
	DisableFiltering bool

	// Show fixed-size pages instead of a virtualized window.
	EnablePagination bool
	// Rows per page. Defaults to 50.
	PageSize int

	// Invoked after every selection change with the selected rows, in source
	// order.
	OnSelectionChange func(selected []Row)

	EmptyMessage   string
	LoadingMessage string
	// When set, the grid renders only the loading message.
	Loading bool

	// Materialize every row instead of the visible window. Ignored when
	// pagination is enabled.
	DisableVirtualScrolling bool
	// Height of the viewport, in the same unit as RowHeight. Defaults to 20.
	MaxHeight int
	// Estimated height of one row. Defaults to 1, one terminal line.
	RowHeight int
	// Rows materialized above and below the viewport. Zero picks 5, a
	// negative value disables overscan.
	Overscan int

	// Collation language for sorting. Defaults to the root locale.
	Language language.Tag

	Logger logger.Logger
}

type Grid struct {
	rows    []Row
	columns []Column

	// Identity of each source row; nil when the row has none.
	ids   []any
	index map[any]int

	generation uint64
	filterText string
	sort       sorting.State
	loading    bool

	pipeline  *pipeline.Pipeline
	strategy  DisplayStrategy
	selection *selection.Tracker

	// The view as of the last state change.
	current view

	// IsAllVisibleSelected as of the last selection or display change.
	allSelected      bool
	allSelectedValid bool

	opts   Options
	logger logger.Logger
}

// New validates the columns and builds a grid over opts.Rows.
func New(opts Options) (*Grid, error) {
	if err := column.Validate(opts.Columns); err != nil {
		return nil, fmt.Errorf("datagrid: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = window.DefaultItemSize
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = window.DefaultViewportSize
	}
	if opts.PageSize <= 0 {
		opts.PageSize = paging.DefaultPageSize
	}
	if opts.EmptyMessage == "" {
		opts.EmptyMessage = render.DefaultEmptyMessage
	}
	if opts.LoadingMessage == "" {
		opts.LoadingMessage = render.DefaultLoadingMessage
	}
	if opts.EnableSelection && opts.Identity == nil {
		opts.Logger.Warn("selection enabled without an identity function, disabling it")
		opts.EnableSelection = false
	}

	g := &Grid{
		columns:  slices.Clone(opts.Columns),
		loading:  opts.Loading,
		pipeline: pipeline.New(sorting.NewSorter(opts.Language), opts.Logger.With("component", "pipeline")),
		opts:     opts,
		logger:   opts.Logger,
	}
	g.selection = selection.NewTracker(g.selectionChanged)
	g.strategy = newStrategy(opts)
	g.setRows(opts.Rows)
	g.refresh()
	return g, nil
}

func newStrategy(opts Options) DisplayStrategy {
	if opts.EnablePagination {
		return &Paginated{
			Paginator: paging.NewPaginator(opts.PageSize),
			RowHeight: opts.RowHeight,
		}
	}
	return &Windowed{
		Virtualizer: window.NewVirtualizer(window.Options{
			ItemSize:     opts.RowHeight,
			Overscan:     opts.Overscan,
			ViewportSize: opts.MaxHeight,
		}),
		Virtual: !opts.DisableVirtualScrolling,
	}
}

// SetRows replaces the source collection. Selected identities that no longer
// exist are dropped, and the page index is clamped to the new length.
func (g *Grid) SetRows(rows []Row) {
	g.setRows(rows)
	g.selection.Prune(func(id any) bool {
		_, ok := g.index[id]
		return ok
	})
	g.refresh()
}

func (g *Grid) setRows(rows []Row) {
	g.rows = rows
	g.generation++
	g.allSelectedValid = false
	g.ids = make([]any, len(rows))
	g.index = make(map[any]int, len(rows))
	if !g.opts.EnableSelection {
		return
	}
	missing := 0
	for i, row := range rows {
		id, ok := column.Identity(g.opts.Identity, row)
		if !ok {
			missing++
			continue
		}
		if first, dup := g.index[id]; dup {
			g.logger.Warn("duplicate row identity, row is not selectable",
				"row", i, "first", first)
			continue
		}
		g.ids[i] = id
		g.index[id] = i
	}
	if missing > 0 {
		g.logger.Warn("rows without identity are not selectable", "count", missing)
	}
}

// SetColumns replaces the column definitions. An active sort on a column
// that disappeared is dropped.
func (g *Grid) SetColumns(columns []Column) error {
	if err := column.Validate(columns); err != nil {
		return fmt.Errorf("datagrid: %w", err)
	}
	g.columns = slices.Clone(columns)
	g.generation++
	g.pipeline.Invalidate()
	if c, ok := column.Find(g.columns, g.sort.ColumnID); !ok || !c.Sortable {
		g.sort = sorting.State{}
	}
	g.strategy.reset()
	g.refresh()
	return nil
}

// SetFilter changes the free-text filter and returns to the first page.
func (g *Grid) SetFilter(text string) {
	if text == g.filterText {
		return
	}
	g.filterText = text
	g.strategy.reset()
	g.refresh()
}

func (g *Grid) Filter() string {
	return g.filterText
}

// ActivateSort advances the sort of columnID as a header click would:
// none, ascending, descending, none. Activating another column starts it
// ascending. It reports false when the column cannot be sorted.
func (g *Grid) ActivateSort(columnID string) bool {
	if !g.sortable(columnID) {
		return false
	}
	g.sort = g.sort.Activate(columnID)
	g.strategy.reset()
	g.refresh()
	return true
}

// SetSort sets the sort directly. Direction None clears it.
func (g *Grid) SetSort(columnID string, direction sorting.Direction) bool {
	next := sorting.State{ColumnID: columnID, Direction: direction}.Normalize()
	if next.Active() && !g.sortable(columnID) {
		return false
	}
	if next == g.sort {
		return true
	}
	g.sort = next
	g.strategy.reset()
	g.refresh()
	return true
}

func (g *Grid) Sort() sorting.State {
	return g.sort
}

func (g *Grid) sortable(columnID string) bool {
	if g.opts.DisableSorting {
		return false
	}
	c, ok := column.Find(g.columns, columnID)
	return ok && c.Sortable
}

func (g *Grid) SetLoading(loading bool) {
	g.loading = loading
}

func (g *Grid) Loading() bool {
	return g.loading
}

func (g *Grid) windowed() (*Windowed, bool) {
	w, ok := g.strategy.(*Windowed)
	return w, ok
}

// ScrollTo moves the viewport to offset. It is a no-op in pagination mode.
func (g *Grid) ScrollTo(offset int) window.Range {
	w, ok := g.windowed()
	if !ok {
		return window.Range{}
	}
	w.Virtualizer.ScrollTo(offset)
	g.refresh()
	return w.Virtualizer.Range()
}

// ScrollBy moves the viewport by delta.
func (g *Grid) ScrollBy(delta int) window.Range {
	w, ok := g.windowed()
	if !ok {
		return window.Range{}
	}
	return g.ScrollTo(w.Virtualizer.ScrollOffset() + delta)
}

// ScrollToRow scrolls the least distance that brings the row at position
// pos of the display collection into view.
func (g *Grid) ScrollToRow(pos int) window.Range {
	w, ok := g.windowed()
	if !ok {
		return window.Range{}
	}
	w.Virtualizer.ScrollToIndex(pos)
	g.refresh()
	return w.Virtualizer.Range()
}

// Resize changes the viewport height.
func (g *Grid) Resize(height int) window.Range {
	w, ok := g.windowed()
	if !ok {
		return window.Range{}
	}
	w.Virtualizer.Resize(height)
	g.refresh()
	return w.Virtualizer.Range()
}

func (g *Grid) paginated() (*Paginated, bool) {
	p, ok := g.strategy.(*Paginated)
	return p, ok
}

// NextPage advances one page; a no-op on the last page or when pagination
// is off.
func (g *Grid) NextPage() bool {
	p, ok := g.paginated()
	if !ok || !p.Paginator.Next(len(g.ordered())) {
		return false
	}
	g.refresh()
	return true
}

// PrevPage goes back one page; a no-op on the first page.
func (g *Grid) PrevPage() bool {
	p, ok := g.paginated()
	if !ok || !p.Paginator.Prev() {
		return false
	}
	g.refresh()
	return true
}

// GoToPage jumps to page idx, clamped to the available pages.
func (g *Grid) GoToPage(idx int) bool {
	p, ok := g.paginated()
	if !ok || !p.Paginator.GoTo(idx, len(g.ordered())) {
		return false
	}
	g.refresh()
	return true
}

func (g *Grid) Page() render.PageInfo {
	return g.current.page
}

// ToggleRow flips the selection of the row with identity id. It reports
// whether the row is selected afterwards.
func (g *Grid) ToggleRow(id any) bool {
	if !g.selectable(id) {
		return false
	}
	return g.selection.Toggle(id)
}

// SetRowSelected forces the selection state of one row.
func (g *Grid) SetRowSelected(id any, selected bool) bool {
	if !g.selectable(id) {
		return false
	}
	return g.selection.Set(id, selected)
}

func (g *Grid) selectable(id any) bool {
	if !g.opts.EnableSelection || !column.Comparable(id) {
		return false
	}
	_, ok := g.index[id]
	return ok
}

// ToggleAllVisible selects, or deselects, every row of the display
// collection: the whole filtered collection when windowed, the current page
// when paginated. Rows without identity are skipped.
func (g *Grid) ToggleAllVisible(checked bool) {
	if !g.opts.EnableSelection {
		return
	}
	g.selection.ToggleAll(g.visibleIDs(), checked)
}

// IsAllVisibleSelected reports whether the display collection holds at least
// one selectable row and all of them are selected.
func (g *Grid) IsAllVisibleSelected() bool {
	if !g.opts.EnableSelection {
		return false
	}
	if !g.allSelectedValid {
		g.allSelected = g.selection.AllSelected(g.visibleIDs())
		g.allSelectedValid = true
	}
	return g.allSelected
}

func (g *Grid) IsSelected(id any) bool {
	if !g.selectable(id) {
		return false
	}
	return g.selection.Contains(id)
}

func (g *Grid) visibleIDs() []any {
	ids := make([]any, 0, len(g.current.display))
	for _, src := range g.current.display {
		if id := g.ids[src]; id != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// ClearSelection deselects every row.
func (g *Grid) ClearSelection() {
	g.selection.Clear()
}

// Selected returns the selected rows in source order.
func (g *Grid) Selected() []Row {
	if g.selection.Len() == 0 {
		return []Row{}
	}
	positions := make([]int, 0, g.selection.Len())
	for _, id := range g.selection.Snapshot() {
		if src, ok := g.index[id]; ok {
			positions = append(positions, src)
		}
	}
	slices.Sort(positions)
	out := make([]Row, 0, len(positions))
	for _, src := range positions {
		out = append(out, g.rows[src])
	}
	return out
}

// SelectedIDs returns the selected identities in selection order.
func (g *Grid) SelectedIDs() []any {
	return g.selection.Snapshot()
}

func (g *Grid) selectionChanged() {
	g.allSelectedValid = false
	g.notifySelection()
}

func (g *Grid) notifySelection() {
	if g.opts.OnSelectionChange == nil {
		return
	}
	g.opts.OnSelectionChange(g.Selected())
}

// Ordered returns the filtered rows in display order, before windowing or
// paging.
func (g *Grid) Ordered() []Row {
	return g.resolve(g.ordered())
}

// Display returns the display collection: the ordered rows when windowed,
// the current page when paginated.
func (g *Grid) Display() []Row {
	return g.resolve(g.current.display)
}

// Visible returns the rows that materialize for the current viewport.
func (g *Grid) Visible() []Row {
	return g.resolve(g.current.materialized)
}

// Len returns the number of rows in the display collection.
func (g *Grid) Len() int {
	return len(g.current.display)
}

// Stats reports how often the filter and order stages recomputed.
func (g *Grid) Stats() pipeline.Stats {
	return g.pipeline.Stats()
}

func (g *Grid) resolve(indices []int) []Row {
	out := make([]Row, 0, len(indices))
	for _, src := range indices {
		out = append(out, g.rows[src])
	}
	return out
}

func (g *Grid) input() pipeline.Input {
	return pipeline.Input{
		Rows:             g.rows,
		Columns:          g.columns,
		Generation:       g.generation,
		FilterText:       g.filterText,
		FilteringEnabled: !g.opts.DisableFiltering,
		Sort:             g.sort,
		SortingEnabled:   !g.opts.DisableSorting,
	}
}

func (g *Grid) ordered() []int {
	return g.pipeline.Ordered(g.input())
}

// refresh re-derives the current view. Memoized stages make this cheap when
// only the scroll position or page changed.
func (g *Grid) refresh() {
	next := g.strategy.display(g.ordered())
	if !sameIndices(g.current.display, next.display) {
		g.allSelectedValid = false
	}
	g.current = next
}

// sameIndices reports whether a and b are the same slice. Memoized stages
// hand out the same backing array until their inputs change.
func sameIndices(a, b []int) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

// Frame composes the renderable frame for the current state.
func (g *Grid) Frame() render.Frame {
	return render.Build(render.Input{
		Columns:        g.columns,
		Rows:           g.rows,
		Display:        g.current.materialized,
		Offsets:        g.current.offsets,
		FirstPosition:  g.current.first,
		DisplayCount:   len(g.current.display),
		Sort:           g.sort,
		SortingEnabled: !g.opts.DisableSorting,
		Selection:      g.opts.EnableSelection,
		Identity:       g.identityOf,
		IsSelected:     g.selection.Contains,
		AllSelected:    g.IsAllVisibleSelected(),
		Loading:        g.loading,
		LoadingMessage: g.opts.LoadingMessage,
		EmptyMessage:   g.opts.EmptyMessage,
		TotalHeight:    g.current.totalHeight,
		ScrollOffset:   g.current.scrollOffset,
		Page:           g.current.page,
		Logger:         g.logger.With("component", "render"),
	})
}

// identityOf answers from the cached identities so duplicate identities
// stay unselectable in the rendered frame too.
func (g *Grid) identityOf(src int) (any, bool) {
	id := g.ids[src]
	return id, id != nil
}

// Render lays out the current frame as terminal text followed by a footer
// line.
func (g *Grid) Render(opts render.TextOptions) string {
	f := g.Frame()
	text := render.Text(f, opts)
	if footer := render.Footer(f); footer != "" {
		text += "\n" + footer
	}
	return text
}
