package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	indent    = "  "
	columnGap = "  "
	ruleChar  = "─"
)

// Table lays out rows of prayer times (or any cells) in aligned columns.
// Widths are measured in terminal cells, so markers and box-drawing
// characters do not break alignment.
type Table struct {
	headers   []string
	rows      [][]string
	align     []lipgloss.Position
	highlight int // row index rendered with Accent; -1 for none
}

// NewTable returns a table with left-aligned columns.
func NewTable(headers []string) *Table {
	align := make([]lipgloss.Position, len(headers))
	for i := range align {
		align[i] = lipgloss.Left
	}
	return &Table{headers: headers, align: align, highlight: -1}
}

// AddRow appends a row. Missing trailing cells render empty.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow marks the row at idx, usually today.
func (t *Table) SetHighlightRow(idx int) {
	t.highlight = idx
}

// AlignRight right-aligns the given columns, for numbers.
func (t *Table) AlignRight(cols ...int) {
	for _, c := range cols {
		if c >= 0 && c < len(t.align) {
			t.align[c] = lipgloss.Right
		}
	}
}

func (t *Table) widths() []int {
	w := make([]int, len(t.headers))
	for i, h := range t.headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i := 0; i < len(row) && i < len(w); i++ {
			w[i] = max(w[i], lipgloss.Width(row[i]))
		}
	}
	return w
}

// Render returns the table, each line indented, header bold and the
// highlighted row in the accent style.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	widths := t.widths()

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat(ruleChar, w)
	}

	lines := make([]string, 0, len(t.rows)+2)
	lines = append(lines,
		indent+Bold(t.formatRow(t.headers, widths)),
		Dim(indent+strings.Join(rule, columnGap)),
	)
	for i, row := range t.rows {
		line := t.formatRow(row, widths)
		if i == t.highlight {
			line = Accent(line)
		}
		lines = append(lines, indent+line)
	}

	return strings.Join(lines, "\n") + "\n"
}

// formatRow pads each cell to its column width using the column alignment.
func (t *Table) formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		pos := lipgloss.Left
		if i < len(t.align) {
			pos = t.align[i]
		}
		parts[i] = pad(cell, w, pos)
	}
	return strings.Join(parts, columnGap)
}

func pad(s string, width int, pos lipgloss.Position) string {
	fill := width - lipgloss.Width(s)
	if fill <= 0 {
		return s
	}
	if pos == lipgloss.Right {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}
