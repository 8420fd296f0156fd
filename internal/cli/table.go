package cli

import (
	"strings"
)

// Table is a plain-text table with columns sized to their widest cell.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	alignRight map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		padding:    2,
		alignRight: make(map[int]bool),
	}
}

// SetAlignRight right-aligns the column at colIndex, for numbers.
func (t *Table) SetAlignRight(colIndex int) {
	t.alignRight[colIndex] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	sep := strings.Repeat(" ", t.padding)
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = t.pad(i, cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeLine(rule)
	for _, row := range t.rows {
		writeLine(row)
	}

	return b.String()
}

func (t *Table) pad(col int, s string, width int) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if t.alignRight[col] {
		return fill + s
	}
	return s + fill
}
