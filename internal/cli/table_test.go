package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "Colour", "Share"})
	table.SetAlignRight(0)
	table.SetAlignRight(2)
	table.AddRow([]string{"1", "#FF0000", "75.00%"})
	table.AddRow([]string{"10", "#0000FF", "5.00%"})

	want := strings.Join([]string{
		" #  Colour    Share",
		"--  -------  ------",
		" 1  #FF0000  75.00%",
		"10  #0000FF   5.00%",
		"",
	}, "\n")
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty string for table without headers, got: %q", got)
	}

	output := NewTable([]string{"Column1", "Column2"}).Render()
	if !strings.Contains(output, "Column1") {
		t.Error("Output should contain headers even without rows")
	}
	if lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n"); len(lines) != 2 {
		t.Errorf("Expected header and separator lines, got %d lines", len(lines))
	}
}

func TestTablePad(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	table.SetAlignRight(1)

	tests := []struct {
		col   int
		input string
		width int
		want  string
	}{
		{0, "test", 6, "test  "},
		{1, "test", 6, "  test"},
		{0, "world", 3, "world"},
		{1, "", 2, "  "},
	}
	for _, tt := range tests {
		if got := table.pad(tt.col, tt.input, tt.width); got != tt.want {
			t.Errorf("pad(%d, %q, %d) = %q, want %q", tt.col, tt.input, tt.width, got, tt.want)
		}
	}
}
