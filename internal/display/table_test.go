package display

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	tbl := NewTable([]string{"Name", "Value"})
	if tbl == nil {
		t.Fatal("NewTable returned nil")
	}
	if tbl.highlightRow != -1 {
		t.Errorf("highlightRow = %d, want -1", tbl.highlightRow)
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable([]string{})
	got := tbl.Render()
	if got != "" {
		t.Errorf("Render() with empty headers = %q, want empty", got)
	}
}

func TestTable_BasicRender(t *testing.T) {
	SetEnabled(false) // disable colors for predictable output

	tbl := NewTable([]string{"Prayer", "Time"})
	tbl.AddRow([]string{"Fajr", "05:12 AM"})
	tbl.AddRow([]string{"Maghrib", "06:08 PM"})

	got := tbl.Render()

	if !strings.Contains(got, "Prayer") || !strings.Contains(got, "Time") {
		t.Errorf("Render() missing headers in:\n%s", got)
	}

	// Check separator exists (Unicode dashes).
	if !strings.Contains(got, "─") {
		t.Error("Render() missing separator line")
	}

	if !strings.Contains(got, "Fajr") || !strings.Contains(got, "Maghrib") {
		t.Error("Render() missing data rows")
	}
	if !strings.Contains(got, "05:12 AM") || !strings.Contains(got, "06:08 PM") {
		t.Error("Render() missing time values")
	}
}

func TestTable_ColumnAlignment(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"A", "LongHeader"})
	tbl.AddRow([]string{"short", "x"})
	tbl.AddRow([]string{"y", "longer value"})

	got := tbl.Render()
	lines := strings.Split(strings.TrimSpace(got), "\n")

	// Header, separator, 2 data rows.
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
}

func TestTable_ArabicWidths(t *testing.T) {
	SetEnabled(false)

	// Arabic titles are multi-byte; widths must count runes so the column
	// after them still aligns.
	tbl := NewTable([]string{"#", "Title", "Arabic"})
	tbl.AddRow([]string{"1", "Al-Fatihah", "الفاتحة"})
	tbl.AddRow([]string{"2", "Al-Baqarah", "البقرة"})

	got := tbl.Render()
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}

	// Both data rows start with the aligned number and title columns.
	if !strings.HasPrefix(lines[2], "1  Al-Fatihah") || !strings.HasPrefix(lines[3], "2  Al-Baqarah") {
		t.Errorf("rows misaligned:\n%s", got)
	}
}

func TestTable_HighlightRow(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tbl := NewTable([]string{"Prayer", "Time"})
	tbl.AddRow([]string{"Asr", "03:45 PM"})
	tbl.AddRow([]string{"Maghrib", "06:08 PM"})
	tbl.SetHighlightRow(1)

	got := tbl.Render()

	lines := strings.Split(got, "\n")
	// Line 0 header, line 1 separator, lines 2-3 data.
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[3], "\033[") {
		t.Error("highlighted row should contain ANSI escape codes")
	}
	if strings.Contains(lines[2], "\033[") {
		t.Error("non-highlighted row should be plain")
	}
}

func TestFormatRow(t *testing.T) {
	got := formatRow([]string{"abc", "de"}, []int{5, 4})
	want := "abc    de  "
	if got != want {
		t.Errorf("formatRow = %q, want %q", got, want)
	}
}

func TestFormatRow_MissingCells(t *testing.T) {
	// Fewer cells than widths should produce empty-padded columns.
	got := formatRow([]string{"a"}, []int{3, 5})
	want := "a         "
	if got != want {
		t.Errorf("formatRow = %q, want %q", got, want)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q, want %q", got, "ab  ")
	}
	if got := padRight("abcd", 2); got != "abcd" {
		t.Error("padRight must not truncate")
	}
	if got := padRight("سلام", 6); got != "سلام  " {
		t.Errorf("padRight should measure runes, got %q", got)
	}
}

func TestCard_Render(t *testing.T) {
	SetEnabled(false)

	card := NewCard("Zakat Summary")
	card.AddLine("Total assets", "1,000.00 USD")
	card.AddLine("Liabilities", "200.00 USD")
	card.AddSection("Metals")
	card.AddLine("Pure gold", "75.00 g")

	got := card.Render()
	lines := strings.Split(strings.TrimSpace(got), "\n")

	// Title, separator, 2 lines, section, 1 line.
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "Zakat Summary") {
		t.Errorf("missing title:\n%s", got)
	}

	// Labels pad to the widest label so values align.
	if !strings.Contains(got, "Total assets  1,000.00 USD") {
		t.Errorf("value misaligned:\n%s", got)
	}
	if !strings.Contains(got, "Liabilities   200.00 USD") {
		t.Errorf("short label not padded:\n%s", got)
	}
}
