package tableparser

import (
	"reflect"
	"testing"
)

func TestIsTableRow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Simple row",
			input:    "| a | b |",
			expected: true,
		},
		{
			name:     "Indented row",
			input:    "   | a | b |  ",
			expected: true,
		},
		{
			name:     "Missing trailing pipe",
			input:    "| a | b",
			expected: false,
		},
		{
			name:     "Missing leading pipe",
			input:    "a | b |",
			expected: false,
		},
		{
			name:     "Plain prose",
			input:    "some text",
			expected: false,
		},
		{
			name:     "Empty line",
			input:    "",
			expected: false,
		},
		{
			name:     "Lone pipe",
			input:    "|",
			expected: false,
		},
		{
			name:     "Two pipes only",
			input:    "||",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTableRow(tt.input); got != tt.expected {
				t.Errorf("IsTableRow(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSeparatorRow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Plain dashes",
			input:    "|---|---|",
			expected: true,
		},
		{
			name:     "Padded dashes",
			input:    "| --- | ----- |",
			expected: true,
		},
		{
			name:     "Alignment colons",
			input:    "|:---|:---:|---:|",
			expected: true,
		},
		{
			name:     "Single dash segments",
			input:    "|-|-|",
			expected: true,
		},
		{
			name:     "Colons without dashes",
			input:    "|:::|---|",
			expected: false,
		},
		{
			name:     "Spaces only segment",
			input:    "|   |---|",
			expected: false,
		},
		{
			name:     "Letters in segment",
			input:    "| a-- | --- |",
			expected: false,
		},
		{
			name:     "Data row",
			input:    "| a | b |",
			expected: false,
		},
		{
			name:     "Not a table row",
			input:    "---",
			expected: false,
		},
		{
			name:     "Two pipes only",
			input:    "||",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSeparatorRow(tt.input); got != tt.expected {
				t.Errorf("IsSeparatorRow(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTableRow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Simple cells",
			input:    "| a | b | c |",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Whitespace trimmed per cell",
			input:    "|  spaced   |b|",
			expected: []string{"spaced", "b"},
		},
		{
			name:     "Empty cells",
			input:    "| a |  | c |",
			expected: []string{"a", "", "c"},
		},
		{
			name:     "All cells empty",
			input:    "|||",
			expected: []string{"", ""},
		},
		{
			name:     "Escaped pipe inside cell",
			input:    `| a \| b | c |`,
			expected: []string{"a | b", "c"},
		},
		{
			name:     "Escaped pipe at cell start",
			input:    `| \| | x |`,
			expected: []string{"|", "x"},
		},
		{
			name:     "Backslash before non-pipe stays literal",
			input:    `| a\b | c |`,
			expected: []string{`a\b`, "c"},
		},
		{
			name:     "Not a table row",
			input:    "plain text",
			expected: nil,
		},
		{
			name:     "Missing trailing pipe",
			input:    "| a | b",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTableRow(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTableRow(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScanSingleTable(t *testing.T) {
	input := "| Header1 | Header2 |\n" +
		"|---------|---------|\n" +
		"| Cell1   | Cell2   |"

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}

	tbl := tables[0]
	if tbl.StartLine != 0 || tbl.EndLine != 2 {
		t.Errorf("table span = [%d, %d], want [0, 2]", tbl.StartLine, tbl.EndLine)
	}
	want := [][]string{{"Header1", "Header2"}, {"Cell1", "Cell2"}}
	if !reflect.DeepEqual(tbl.Data, want) {
		t.Errorf("table data = %#v, want %#v", tbl.Data, want)
	}
	if tbl.RawText != input {
		t.Errorf("RawText = %q, want %q", tbl.RawText, input)
	}
}

func TestScanNoSeparatorNoTable(t *testing.T) {
	input := "| A | B |\n| C | D |"
	if tables := Scan(input); len(tables) != 0 {
		t.Errorf("Scan() found %d tables, want 0 (separator adjacency is mandatory)", len(tables))
	}
}

func TestScanEmptyInput(t *testing.T) {
	if tables := Scan(""); len(tables) != 0 {
		t.Errorf("Scan(\"\") found %d tables, want 0", len(tables))
	}
}

func TestScanTableSurroundedByProse(t *testing.T) {
	input := "Intro paragraph.\n" +
		"\n" +
		"| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n" +
		"| 3 | 4 |\n" +
		"\n" +
		"Closing paragraph."

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	tbl := tables[0]
	if tbl.StartLine != 2 || tbl.EndLine != 5 {
		t.Errorf("table span = [%d, %d], want [2, 5]", tbl.StartLine, tbl.EndLine)
	}
	if len(tbl.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(tbl.Data))
	}
}

func TestScanMultipleTables(t *testing.T) {
	input := "| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n" +
		"\n" +
		"Some prose between tables.\n" +
		"\n" +
		"| X |\n" +
		"|---|\n" +
		"| y |\n" +
		"| z |"

	tables := Scan(input)
	if len(tables) != 2 {
		t.Fatalf("Scan() found %d tables, want 2", len(tables))
	}
	first, second := tables[0], tables[1]
	if first.StartLine != 0 || first.EndLine != 2 {
		t.Errorf("first table span = [%d, %d], want [0, 2]", first.StartLine, first.EndLine)
	}
	if second.StartLine != 6 || second.EndLine != 9 {
		t.Errorf("second table span = [%d, %d], want [6, 9]", second.StartLine, second.EndLine)
	}
	if first.EndLine >= second.StartLine {
		t.Error("table spans overlap")
	}
	if len(second.Data) != 3 {
		t.Errorf("second table len(Data) = %d, want 3", len(second.Data))
	}
}

func TestScanRaggedRows(t *testing.T) {
	input := "| A | B | C |\n" +
		"|---|---|---|\n" +
		"| 1 | 2 |\n" +
		"| 3 | 4 | 5 |"

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	tbl := tables[0]
	if len(tbl.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(tbl.Data))
	}
	if len(tbl.Data[1]) != 2 {
		t.Errorf("short row has %d cells, want 2", len(tbl.Data[1]))
	}
	if tbl.ColumnCount() != 3 {
		t.Errorf("ColumnCount() = %d, want 3", tbl.ColumnCount())
	}
}

func TestScanStopsAtNonTableLine(t *testing.T) {
	input := "| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n" +
		"trailing prose\n" +
		"| orphan | row |"

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	if tables[0].EndLine != 2 {
		t.Errorf("EndLine = %d, want 2", tables[0].EndLine)
	}
}

func TestScanHeaderOnlyTable(t *testing.T) {
	input := "| A | B |\n|---|---|"
	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	tbl := tables[0]
	if len(tbl.Data) != 1 {
		t.Errorf("len(Data) = %d, want 1 (header only)", len(tbl.Data))
	}
	if tbl.EndLine != 1 {
		t.Errorf("EndLine = %d, want 1", tbl.EndLine)
	}
}

func TestScanEscapedPipesInCells(t *testing.T) {
	input := "| Name | Expr |\n" +
		"|------|------|\n" +
		`| or   | a \|\| b |`

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	got := tables[0].Data[1][1]
	if got != "a || b" {
		t.Errorf("escaped cell = %q, want %q", got, "a || b")
	}
}

func TestScanSeparatorInsideBodySkipped(t *testing.T) {
	// A separator-shaped line after the table has started is structural
	// noise, not content.
	input := "| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n" +
		"|---|---|\n" +
		"| 3 | 4 |"

	tables := Scan(input)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	tbl := tables[0]
	if len(tbl.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(tbl.Data))
	}
	if tbl.EndLine != 4 {
		t.Errorf("EndLine = %d, want 4", tbl.EndLine)
	}
}
