package display

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table renders an aligned text table with optional color support.
// Column widths are measured in runes, not bytes, so Arabic titles line up
// with their transliterations.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row index to highlight (typically the
	// next prayer or today). -1 = none.
	highlightRow int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:      headers,
		highlightRow: -1,
	}
}

// AddRow appends a row of values. The number of values should match the number of headers.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow sets which row index (0-based) should be highlighted.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// Render produces the formatted table string with leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder

	// Header row.
	headerLine := formatRow(t.headers, widths)
	sb.WriteString("  " + Bold(headerLine) + "\n")

	// Separator row using Unicode box-drawing dashes.
	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	sepLine := "  " + strings.Join(sepParts, "  ")
	sb.WriteString(Dim(sepLine) + "\n")

	// Data rows.
	for i, row := range t.rows {
		line := formatRow(row, widths)
		if i == t.highlightRow {
			sb.WriteString("  " + Accent(line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String()
}

// formatRow formats a row of cells using the given column widths.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padRight(cell, w)
	}
	return strings.Join(parts, "  ")
}

// padRight pads cell to width runes with trailing spaces.
func padRight(cell string, width int) string {
	pad := width - utf8.RuneCountInString(cell)
	if pad <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", pad)
}

// Card renders a titled block of label/value lines, the shape used for the
// zakat summary and the nisab thresholds.
type Card struct {
	title string
	lines []cardLine
}

type cardLine struct {
	label string
	value string
	// section lines render as a dimmed sub-heading with no value.
	section bool
}

// NewCard creates a card with the given title.
func NewCard(title string) *Card {
	return &Card{title: title}
}

// AddLine appends a label/value line.
func (c *Card) AddLine(label, value string) {
	c.lines = append(c.lines, cardLine{label: label, value: value})
}

// AddSection appends a dimmed sub-heading separating groups of lines.
func (c *Card) AddSection(name string) {
	c.lines = append(c.lines, cardLine{label: name, section: true})
}

// Render produces the formatted card string.
func (c *Card) Render() string {
	labelWidth := 0
	for _, l := range c.lines {
		if l.section {
			continue
		}
		if n := utf8.RuneCountInString(l.label); n > labelWidth {
			labelWidth = n
		}
	}

	var sb strings.Builder
	sb.WriteString("  " + Bold(c.title) + "\n")
	sb.WriteString(Dim("  "+strings.Repeat("─", utf8.RuneCountInString(c.title))) + "\n")

	for _, l := range c.lines {
		if l.section {
			sb.WriteString("  " + Dim(l.label) + "\n")
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", padRight(l.label, labelWidth), l.value))
	}

	return sb.String()
}
