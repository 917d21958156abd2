package tabsql

import (
	"github.com/nao1215/tabsql/domain/model"
)

// Table is a document converted into SQL fragments: the quoted header, the
// inferred column types and one rendered value list per data line.
type Table struct {
	// name is the table name used in the script
	name string
	// columns holds the raw column names
	columns model.Header
	// quotedHeader is the header rendered by ReformHeader
	quotedHeader string
	// types holds one ColumnType per column
	types model.TypeVector
	// rows holds one rendered value list per data line
	rows []string
}

// NewTable converts doc into a Table named name.
//
// Column types are inferred from the first data row and applied to every
// row. A row whose column count differs from the header fails with
// ErrRaggedRow.
func NewTable(name string, doc *model.Document) (*Table, error) {
	types, err := InferDocumentTypes(doc)
	if err != nil {
		return nil, err
	}

	rows, err := ReformDocument(doc, types)
	if err != nil {
		return nil, err
	}

	return &Table{
		name:         name,
		columns:      doc.Header(),
		quotedHeader: ReformHeader(doc.HeaderLine(), doc.Kind()),
		types:        types,
		rows:         rows,
	}, nil
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the raw column names
func (t *Table) Columns() model.Header {
	return t.columns
}

// QuotedHeader returns the header as comma separated quoted identifiers
func (t *Table) QuotedHeader() string {
	return t.quotedHeader
}

// Types returns the inferred column types
func (t *Table) Types() model.TypeVector {
	return t.types
}

// Rows returns the rendered value lists, one per data line
func (t *Table) Rows() []string {
	return t.rows
}
