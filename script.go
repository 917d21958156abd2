package tabsql

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/tabsql/domain/model"
)

const (
	// DefaultVarcharLength is the width declared for STRING columns
	DefaultVarcharLength = 20

	// surrogateKey is the auto increment column added when the first column is not the key
	surrogateKey = "id"

	sqlTypeInt   = "INT"
	sqlTypeFloat = "FLOAT"
)

// ScriptOptions configures how a Table is rendered as a SQL script.
//
// Example:
//
//	options := NewScriptOptions().
//		WithPrimaryFirst(true).
//		WithVarcharLength(255)
//
//	script := table.Script(options)
type ScriptOptions struct {
	// PrimaryFirst uses the first column as primary key instead of adding
	// an auto increment surrogate key
	PrimaryFirst bool
	// VarcharLength is the declared width of STRING columns
	VarcharLength int
}

// NewScriptOptions creates default script options: surrogate key, VARCHAR(20).
func NewScriptOptions() ScriptOptions {
	return ScriptOptions{
		PrimaryFirst:  false,
		VarcharLength: DefaultVarcharLength,
	}
}

// WithPrimaryFirst makes the first column the primary key.
func (o ScriptOptions) WithPrimaryFirst(primaryFirst bool) ScriptOptions {
	o.PrimaryFirst = primaryFirst
	return o
}

// WithVarcharLength sets the declared width of STRING columns.
// Values below 1 fall back to DefaultVarcharLength.
func (o ScriptOptions) WithVarcharLength(length int) ScriptOptions {
	o.VarcharLength = length
	return o
}

func (o ScriptOptions) varcharLength() int {
	if o.VarcharLength < 1 {
		return DefaultVarcharLength
	}
	return o.VarcharLength
}

// SQLType returns the column declaration type for ct.
func (o ScriptOptions) SQLType(ct model.ColumnType) string {
	switch ct {
	case model.ColumnTypeInteger:
		return sqlTypeInt
	case model.ColumnTypeFloat:
		return sqlTypeFloat
	default:
		return fmt.Sprintf("VARCHAR(%d)", o.varcharLength())
	}
}

// quoteIdentifier wraps a column name in backticks
func quoteIdentifier(name string) string {
	return identifierQuote + name + identifierQuote
}

// Script renders the table as a SQL script made of four blocks: DROP TABLE,
// CREATE TABLE, INSERT INTO with the quoted column list, and VALUES with one
// parenthesised row per data line terminated by a semicolon.
func (t *Table) Script(opts ScriptOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "DROP TABLE IF EXISTS %s;\n", t.name)

	fmt.Fprintf(&sb, "CREATE TABLE %s(\n", t.name)
	if !opts.PrimaryFirst {
		fmt.Fprintf(&sb, "%s %s NOT NULL AUTO_INCREMENT,\n", surrogateKey, sqlTypeInt)
	}
	for i, column := range t.columns {
		sb.WriteString(quoteIdentifier(column))
		sb.WriteByte(' ')
		sb.WriteString(opts.SQLType(t.types[i]))
		if i == 0 && opts.PrimaryFirst {
			sb.WriteString(" NOT NULL")
		}
		sb.WriteString(",\n")
	}
	if opts.PrimaryFirst && len(t.columns) > 0 {
		fmt.Fprintf(&sb, "PRIMARY KEY ( %s )", quoteIdentifier(t.columns[0]))
	} else {
		fmt.Fprintf(&sb, "PRIMARY KEY ( %s )", surrogateKey)
	}
	sb.WriteString(");\n\n")

	fmt.Fprintf(&sb, "INSERT INTO %s\n(%s)\nVALUES\n", t.name, t.quotedHeader)
	sb.WriteString("(")
	sb.WriteString(strings.Join(t.rows, "),\n("))
	sb.WriteString(");\n")

	return sb.String()
}

// WriteScript writes the script rendered by Script to w.
func (t *Table) WriteScript(w io.Writer, opts ScriptOptions) error {
	if _, err := io.WriteString(w, t.Script(opts)); err != nil {
		return fmt.Errorf("failed to write script for table %s: %w", t.name, err)
	}
	return nil
}
