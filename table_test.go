package tabsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/tabsql/domain/model"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("TSV document", func(t *testing.T) {
		t.Parallel()
		doc := model.NewDocument("sample.tsv", model.FileKindTSV, "one\ttwo\tthree\nOne\t2\t3.2\nTwo\t4\t5.5\n")

		table, err := NewTable("sample", doc)
		require.NoError(t, err)

		assert.Equal(t, "sample", table.Name())
		assert.True(t, model.NewHeader([]string{"one", "two", "three"}).Equal(table.Columns()))
		assert.Equal(t, "`one`,`two`,`three`", table.QuotedHeader())
		assert.Equal(t, "[STRING, INTEGER, FLOAT]", table.Types().String())
		assert.Equal(t, []string{"'One',2,3.2", "'Two',4,5.5"}, table.Rows())
	})

	t.Run("same input gives equal tables", func(t *testing.T) {
		t.Parallel()
		content := "a,b\nx,1\n"
		t1, err := NewTable("t", model.NewDocument("", model.FileKindCSV, content))
		require.NoError(t, err)
		t2, err := NewTable("t", model.NewDocument("", model.FileKindCSV, content))
		require.NoError(t, err)
		assert.Equal(t, t1, t2)

		t3, err := NewTable("t", model.NewDocument("", model.FileKindCSV, "a,b\nx,2\n"))
		require.NoError(t, err)
		assert.NotEqual(t, t1, t3)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			content string
			wantErr error
		}{
			{name: "empty", content: "\n\n", wantErr: ErrEmptyData},
			{name: "header only", content: "a,b\n", wantErr: ErrNoDataRows},
			{name: "ragged later row", content: "a,b\n1,2\n3,4,5\n", wantErr: ErrRaggedRow},
		}

		for _, tt := range tests {
			_, err := NewTable("t", model.NewDocument("", model.FileKindCSV, tt.content))
			assert.ErrorIs(t, err, tt.wantErr, tt.name)
		}
	})
}
