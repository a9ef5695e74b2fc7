package tableparser

import (
	"reflect"
	"strings"
	"testing"
)

func TestToMarkdownCanonical(t *testing.T) {
	tests := []struct {
		name     string
		data     [][]string
		expected string
	}{
		{
			name:     "Empty grid",
			data:     nil,
			expected: "",
		},
		{
			name:     "Rows without cells",
			data:     [][]string{{}},
			expected: "",
		},
		{
			name: "Basic table",
			data: [][]string{
				{"Header1", "Header2"},
				{"Cell1", "Cell2"},
			},
			expected: "| Header1 | Header2 |\n" +
				"| ------- | ------- |\n" +
				"| Cell1   | Cell2   |",
		},
		{
			name: "Minimum column width of three",
			data: [][]string{
				{"A", "B"},
				{"1", "2"},
			},
			expected: "| A   | B   |\n" +
				"| --- | --- |\n" +
				"| 1   | 2   |",
		},
		{
			name: "Ragged rows padded to full width",
			data: [][]string{
				{"One", "Two", "Three"},
				{"a"},
			},
			expected: "| One | Two | Three |\n" +
				"| --- | --- | ----- |\n" +
				"| a   |     |       |",
		},
		{
			name: "Pipe escaped before width computation",
			data: [][]string{
				{"Expr", "Desc"},
				{"a|b", "or"},
			},
			expected: "| Expr | Desc |\n" +
				"| ---- | ---- |\n" +
				"| a\\|b | or   |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMarkdown(tt.data); got != tt.expected {
				t.Errorf("ToMarkdown() =\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestToMarkdownNoTrailingNewline(t *testing.T) {
	out := ToMarkdown([][]string{{"a"}, {"b"}})
	if strings.HasSuffix(out, "\n") {
		t.Error("ToMarkdown() output has a trailing newline")
	}
}

func TestSeparatorMinimumWidth(t *testing.T) {
	out := ToMarkdown([][]string{{"a", ""}, {"b", "c"}})
	sep := strings.Split(out, "\n")[1]
	for _, segment := range strings.Split(strings.Trim(sep, "| "), " | ") {
		if len(segment) < 3 {
			t.Errorf("separator segment %q shorter than 3 dashes", segment)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	grids := [][][]string{
		{{"Header1", "Header2"}, {"Cell1", "Cell2"}},
		{{"a"}, {""}, {"c"}},
		{{"x", "", "z"}, {"", "", ""}},
		{{"col"}, {"a longer cell value than the header"}},
	}

	for _, grid := range grids {
		tables := Scan(ToMarkdown(grid))
		if len(tables) != 1 {
			t.Fatalf("round trip of %#v produced %d tables", grid, len(tables))
		}
		if !reflect.DeepEqual(tables[0].Data, grid) {
			t.Errorf("round trip mismatch:\n got %#v\nwant %#v", tables[0].Data, grid)
		}
	}
}

func TestRoundTripEscapedPipe(t *testing.T) {
	grid := [][]string{{"Expr", "Desc"}, {"a | b", "pipe"}}
	out := ToMarkdown(grid)
	if !strings.Contains(out, `a \| b`) {
		t.Fatalf("serialized output missing escaped pipe:\n%s", out)
	}
	tables := Scan(out)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	if got := tables[0].Data[1][0]; got != "a | b" {
		t.Errorf("round-tripped cell = %q, want %q", got, "a | b")
	}
}

func TestPreserveFormatIdempotent(t *testing.T) {
	// Deliberately irregular spacing that a reformat would destroy.
	raw := "|  Name |Qty   |\n" +
		"|---|-----|\n" +
		"| apples |3|\n" +
		"|pears   |   12 |"

	tables := Scan(raw)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	original := tables[0]

	out := ToMarkdownPreserveFormat(original.Data, original.RawText, original.Data)
	if out != raw {
		t.Errorf("unchanged table was rewritten:\n got: %q\nwant: %q", out, raw)
	}
}

func TestPreserveFormatOnlyChangedRowsRewritten(t *testing.T) {
	raw := "| Name   | Qty |\n" +
		"|--------|-----|\n" +
		"| apples | 3   |\n" +
		"| pears  | 12  |"

	original := Scan(raw)[0]
	edited := [][]string{
		{"Name", "Qty"},
		{"apples", "4"},
		{"pears", "12"},
	}

	out := ToMarkdownPreserveFormat(edited, original.RawText, original.Data)
	lines := strings.Split(out, "\n")
	if lines[0] != "| Name   | Qty |" {
		t.Errorf("unchanged header was rewritten: %q", lines[0])
	}
	if lines[1] != "|--------|-----|" {
		t.Errorf("separator was rewritten: %q", lines[1])
	}
	if lines[2] != "| apples | 4 |" {
		t.Errorf("edited row not minimally formatted: %q", lines[2])
	}
	if lines[3] != "| pears  | 12  |" {
		t.Errorf("unchanged row was rewritten: %q", lines[3])
	}
}

func TestPreserveFormatAddedRow(t *testing.T) {
	raw := "| A | B |\n|---|---|\n| 1 | 2 |"
	original := Scan(raw)[0]
	edited := [][]string{{"A", "B"}, {"1", "2"}, {"3", "4"}}

	out := ToMarkdownPreserveFormat(edited, original.RawText, original.Data)
	want := "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |"
	if out != want {
		t.Errorf("ToMarkdownPreserveFormat() =\n%q\nwant:\n%q", out, want)
	}
}

func TestPreserveFormatColumnCountChangeFallsBack(t *testing.T) {
	raw := "| A | B |\n|---|---|\n| 1 | 2 |"
	original := Scan(raw)[0]
	edited := [][]string{{"A", "B", "C"}, {"1", "2", "3"}}

	out := ToMarkdownPreserveFormat(edited, original.RawText, original.Data)
	if out != ToMarkdown(edited) {
		t.Errorf("column-count change should fall back to canonical output, got:\n%s", out)
	}
}

func TestPreserveFormatEscapesPipes(t *testing.T) {
	raw := "| A | B |\n|---|---|\n| 1 | 2 |"
	original := Scan(raw)[0]
	edited := [][]string{{"A", "B"}, {"x|y", "2"}}

	out := ToMarkdownPreserveFormat(edited, original.RawText, original.Data)
	lines := strings.Split(out, "\n")
	if lines[2] != `| x\|y | 2 |` {
		t.Errorf("edited row = %q, want %q", lines[2], `| x\|y | 2 |`)
	}

	// The output must still scan back to the edited grid.
	tables := Scan(out)
	if len(tables) != 1 || !reflect.DeepEqual(tables[0].Data, edited) {
		t.Errorf("preserve-format output did not round trip: %#v", tables)
	}
}

func TestPreserveFormatOutputScans(t *testing.T) {
	raw := "|  Name |Qty   |\n" +
		"|---|-----|\n" +
		"| apples |3|\n" +
		"|pears   |   12 |"
	original := Scan(raw)[0]
	edited := [][]string{
		{"Name", "Qty"},
		{"apples", "3"},
		{"plums", "7"},
	}

	out := ToMarkdownPreserveFormat(edited, original.RawText, original.Data)
	tables := Scan(out)
	if len(tables) != 1 {
		t.Fatalf("Scan() found %d tables, want 1", len(tables))
	}
	if !reflect.DeepEqual(tables[0].Data, edited) {
		t.Errorf("re-scanned grid = %#v, want %#v", tables[0].Data, edited)
	}
}
