package tabsql

import (
	"errors"
	"strings"

	"github.com/nao1215/tabsql/domain/model"
)

const (
	// identifierQuote wraps column names
	identifierQuote = "`"
	// stringQuote wraps string literals
	stringQuote = "'"
	// valueSeparator joins cells in the generated SQL
	valueSeparator = ","
)

// ReformHeader turns a raw header line into a list of quoted identifiers.
// Every delimiter becomes "`,`" and the result is wrapped in backticks, so
// "one,two,three" becomes "`one`,`two`,`three`". Column names are not
// validated.
//
// The operation is not idempotent: reforming an already reformed header
// wraps it in a second pair of quotes.
func ReformHeader(line string, kind model.FileKind) string {
	sep := identifierQuote + valueSeparator + identifierQuote
	return identifierQuote + strings.ReplaceAll(line, string(kind.Delimiter()), sep) + identifierQuote
}

// literalEscaper escapes backslashes, which MySQL treats as an escape
// character, and doubles single quotes.
var literalEscaper = strings.NewReplacer(`\`, `\\`, stringQuote, stringQuote+stringQuote)

// quoteString renders s as a single quoted SQL literal.
func quoteString(s string) string {
	return stringQuote + literalEscaper.Replace(s) + stringQuote
}

// reformCells renders cells according to types. len(cells) must equal len(types).
func reformCells(cells []string, types model.TypeVector) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(valueSeparator)
		}
		if types[i].IsNumeric() {
			sb.WriteString(cell)
			continue
		}
		sb.WriteString(quoteString(cell))
	}
	return sb.String()
}

// ReformRow renders one data line as comma separated SQL literals.
// STRING cells are single quoted with backslashes and quotes escaped, numeric
// cells are emitted unchanged.
// A line whose cell count differs from len(types) returns a *RaggedRowError.
func ReformRow(line string, kind model.FileKind, types model.TypeVector) (string, error) {
	cells := strings.Split(line, string(kind.Delimiter()))
	if len(cells) != len(types) {
		return "", &RaggedRowError{Want: len(types), Got: len(cells)}
	}
	return reformCells(cells, types), nil
}

// ReformBody renders every data line with ReformRow, in order.
func ReformBody(lines []string, kind model.FileKind, types model.TypeVector) ([]string, error) {
	return reformLines(lines, nil, kind, types)
}

// ReformDocument renders the data lines of doc. Ragged row errors carry the
// source line number.
func ReformDocument(doc *model.Document, types model.TypeVector) ([]string, error) {
	return reformLines(doc.Lines(), doc.LineNumbers(), doc.Kind(), types)
}

func reformLines(lines []string, lineNumbers []int, kind model.FileKind, types model.TypeVector) ([]string, error) {
	rows := make([]string, 0, len(lines))
	for i, line := range lines {
		row, err := ReformRow(line, kind, types)
		if err != nil {
			var ragged *RaggedRowError
			if errors.As(err, &ragged) && i < len(lineNumbers) {
				ragged.Line = lineNumbers[i]
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
