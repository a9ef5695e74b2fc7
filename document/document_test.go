package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "# Fruit\n" +
	"\n" +
	"| Name   | Qty |\n" +
	"|--------|-----|\n" +
	"| apples | 3   |\n" +
	"\n" +
	"Closing prose.\n"

func TestFromTextRoundTrips(t *testing.T) {
	doc := FromText(sampleDoc)
	assert.Equal(t, sampleDoc, doc.Text())
	assert.Equal(t, 7, doc.LineCount())
	assert.False(t, doc.Modified())
}

func TestTables(t *testing.T) {
	doc := FromText(sampleDoc)
	tables := doc.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].StartLine)
	assert.Equal(t, 4, tables[0].EndLine)
}

func TestReplaceRangeSplicesExactly(t *testing.T) {
	doc := FromText(sampleDoc)
	tbl := doc.Tables()[0]

	replacement := "| Name | Qty |\n|---|---|\n| apples | 4 |\n| pears | 2 |"
	require.NoError(t, doc.ReplaceRange(tbl.StartLine, tbl.EndLine, replacement))

	want := "# Fruit\n" +
		"\n" +
		"| Name | Qty |\n" +
		"|---|---|\n" +
		"| apples | 4 |\n" +
		"| pears | 2 |\n" +
		"\n" +
		"Closing prose.\n"
	assert.Equal(t, want, doc.Text())
	assert.True(t, doc.Modified())

	// The replacement is itself scannable at the shifted range.
	tables := doc.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].StartLine)
	assert.Equal(t, 5, tables[0].EndLine)
}

func TestReplaceRangeInvalid(t *testing.T) {
	doc := FromText(sampleDoc)
	assert.Error(t, doc.ReplaceRange(-1, 2, "x"))
	assert.Error(t, doc.ReplaceRange(2, 100, "x"))
	assert.Error(t, doc.ReplaceRange(4, 2, "x"))
}

func TestLoadAndSavePreserveTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	tbl := doc.Tables()[0]
	require.NoError(t, doc.ReplaceRange(tbl.StartLine, tbl.EndLine, "| A |\n|---|\n| 1 |"))
	require.NoError(t, doc.Save())
	assert.False(t, doc.Modified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[len(data)-1] == '\n', "trailing newline must survive save")
}

func TestSaveWithoutTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	content := "| A |\n|---|\n| 1 |"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
