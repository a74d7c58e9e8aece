package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hnimtadd/datagrid/table/column"
	"github.com/hnimtadd/datagrid/table/sorting"
	"github.com/hnimtadd/datagrid/table/style"
	dw "github.com/mattn/go-runewidth"
)

const (
	ellipsis      = "…"
	separator     = " │ "
	ruleSeparator = "─┼─"
	rule          = "─"

	checkboxWidth = 3
)

type TextOptions struct {
	// Emit SGR sequences. Plain text otherwise.
	Color bool

	Header   style.Style
	Selected style.Style
	Message  style.Style

	// Upper bound for auto-sized columns. Zero means unbounded.
	MaxColumnWidth int

	// Treat ambiguous-width runes as two cells wide, as CJK terminals do.
	EastAsian bool
}

// DefaultTextOptions renders a bold header and inverse selected rows.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Color:          true,
		Header:         style.Style{Bold: true},
		Selected:       style.Style{Inverse: true},
		Message:        style.Style{Faint: true},
		MaxColumnWidth: 40,
	}
}

// Text lays the frame out as lines of terminal text. Only the materialized
// rows of the frame are written.
func Text(f Frame, opts TextOptions) string {
	sheet := style.NewSheet()
	paint := func(s style.Style, text string) string {
		if !opts.Color {
			return text
		}
		return sheet.Render(s, text)
	}

	if f.State == StateLoading {
		return paint(opts.Message, f.Message)
	}

	cond := &dw.Condition{EastAsianWidth: opts.EastAsian, StrictEmojiNeutral: true}
	widths := columnWidths(cond, f, opts.MaxColumnWidth)
	var b strings.Builder

	labels := make([]string, 0, len(f.Header)+1)
	rules := make([]string, 0, len(f.Header)+1)
	if f.Selection {
		labels = append(labels, checkbox(true, f.AllSelected))
		rules = append(rules, strings.Repeat(rule, checkboxWidth))
	}
	for i, h := range f.Header {
		labels = append(labels, fit(cond, headerLabel(h), widths[i], h.Align))
		rules = append(rules, strings.Repeat(rule, widths[i]))
	}
	b.WriteString(paint(opts.Header, strings.Join(labels, separator)))
	b.WriteByte('\n')
	b.WriteString(strings.Join(rules, ruleSeparator))

	if f.State == StateEmpty {
		b.WriteByte('\n')
		b.WriteString(paint(opts.Message, f.Message))
		return b.String()
	}

	cells := make([]string, 0, len(f.Header)+1)
	for _, row := range f.Rows {
		cells = cells[:0]
		if f.Selection {
			cells = append(cells, checkbox(row.Selectable, row.Selected))
		}
		for i, h := range f.Header {
			cells = append(cells, fit(cond, sanitize(row.Cells[i]), widths[i], h.Align))
		}
		line := strings.Join(cells, separator)
		if row.Selected {
			line = paint(opts.Selected, line)
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

// Footer describes the position within the display collection, e.g.
// "Page 2 of 3 (120 rows)" or "Rows 11-30 of 120".
func Footer(f Frame) string {
	var b strings.Builder
	switch {
	case f.State == StateLoading:
		return ""
	case f.Page.Enabled:
		b.WriteString("Page ")
		b.WriteString(itoa(min(f.Page.Index+1, max(f.Page.Count, 1))))
		b.WriteString(" of ")
		b.WriteString(itoa(max(f.Page.Count, 1)))
		b.WriteString(" (")
		b.WriteString(itoa(f.DisplayCount))
		b.WriteString(" rows)")
	case len(f.Rows) == 0:
		b.WriteString("0 rows")
	default:
		b.WriteString("Rows ")
		b.WriteString(itoa(f.Rows[0].Position + 1))
		b.WriteString("-")
		b.WriteString(itoa(f.Rows[len(f.Rows)-1].Position + 1))
		b.WriteString(" of ")
		b.WriteString(itoa(f.DisplayCount))
	}
	return b.String()
}

func headerLabel(h HeaderCell) string {
	label := sanitize(h.Label)
	switch h.Direction {
	case sorting.Ascending:
		return label + " ▲"
	case sorting.Descending:
		return label + " ▼"
	default:
		return label
	}
}

func checkbox(selectable, checked bool) string {
	switch {
	case !selectable:
		return "[-]"
	case checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

func columnWidths(cond *dw.Condition, f Frame, maxWidth int) []int {
	widths := make([]int, len(f.Header))
	for i, h := range f.Header {
		if h.Width > 0 {
			widths[i] = h.Width
			continue
		}
		w := cond.StringWidth(headerLabel(h))
		for _, row := range f.Rows {
			w = max(w, cond.StringWidth(sanitize(row.Cells[i])))
		}
		if maxWidth > 0 {
			w = min(w, maxWidth)
		}
		widths[i] = max(w, 1)
	}
	return widths
}

// fit truncates or pads s to exactly width display cells.
func fit(cond *dw.Condition, s string, width int, align column.Align) string {
	if cond.StringWidth(s) > width {
		s = cond.Truncate(s, width, ellipsis)
	}
	switch align {
	case column.AlignRight:
		return cond.FillLeft(s, width)
	case column.AlignCenter:
		left := max(0, width-cond.StringWidth(s)) / 2
		return strings.Repeat(" ", left) + cond.FillRight(s, width-left)
	default:
		return cond.FillRight(s, width)
	}
}

// sanitize keeps a cell on one line.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
