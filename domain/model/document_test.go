package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("CSV with header and rows", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.csv", FileKindCSV, "one,two,three\nOne,2,3.2\nTwo,4,5.5\n")

		assert.Equal(t, "in.csv", doc.Path())
		assert.Equal(t, FileKindCSV, doc.Kind())
		assert.Equal(t, "one,two,three", doc.HeaderLine())
		assert.Equal(t, Header{"one", "two", "three"}, doc.Header())
		assert.Equal(t, []string{"One,2,3.2", "Two,4,5.5"}, doc.Lines())
		assert.Equal(t, Record{"One", "2", "3.2"}, doc.FirstRow())
		assert.Equal(t, []int{2, 3}, doc.LineNumbers())
	})

	t.Run("TSV keeps commas inside cells", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.tsv", FileKindTSV, "a\tb\nx,y\t1\n")

		assert.Equal(t, Header{"a", "b"}, doc.Header())
		assert.Equal(t, Record{"x,y", "1"}, doc.FirstRow())
	})

	t.Run("CRLF line endings and BOM", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.csv", FileKindCSV, "\uFEFFid,name\r\n1,alice\r\n")

		assert.Equal(t, "id,name", doc.HeaderLine())
		assert.Equal(t, []string{"1,alice"}, doc.Lines())
	})

	t.Run("Empty lines are skipped but numbered", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.csv", FileKindCSV, "\nid\n\n1\n\n2\n\n")

		assert.Equal(t, "id", doc.HeaderLine())
		assert.Equal(t, []string{"1", "2"}, doc.Lines())
		assert.Equal(t, 4, doc.LineNumber(0))
		assert.Equal(t, 6, doc.LineNumber(1))
		assert.Equal(t, 0, doc.LineNumber(2))
	})

	t.Run("Empty content", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.csv", FileKindCSV, "")

		assert.Empty(t, doc.HeaderLine())
		assert.Nil(t, doc.Header())
		assert.Empty(t, doc.Lines())
		assert.Nil(t, doc.FirstRow())
	})

	t.Run("Header only", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("in.csv", FileKindCSV, "a,b,c")

		assert.Equal(t, "a,b,c", doc.HeaderLine())
		assert.Nil(t, doc.FirstRow())
	})
}
