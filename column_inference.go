package tabsql

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/tabsql/domain/model"
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// strconv.ParseFloat alone would also accept hex floats, "NaN", "Inf" and
// underscores, none of which are SQL numeric literals.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// inferCellType classifies a single cell.
//
// A cell that parses as a decimal number is INTEGER when it equals its
// rounded value and FLOAT otherwise, so "3.0" and "1e3" are INTEGER.
// Everything else, including the empty string, is STRING.
func inferCellType(cell string) model.ColumnType {
	value := strings.TrimSpace(cell)
	if !decimalPattern.MatchString(value) {
		return model.ColumnTypeString
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) {
		return model.ColumnTypeString
	}

	if f == math.Round(f) {
		return model.ColumnTypeInteger
	}
	return model.ColumnTypeFloat
}

// InferTypes derives the type vector from one sample row, one entry per cell.
//
// Only this row is inspected. Later rows are never re-validated: a fractional
// value in a column inferred as INTEGER is still emitted as a bare number.
func InferTypes(cells []string) model.TypeVector {
	types := make(model.TypeVector, len(cells))
	for i, cell := range cells {
		types[i] = inferCellType(cell)
	}
	return types
}

// InferDocumentTypes infers the type vector from the first data row of doc.
// The first row must have as many cells as the header.
func InferDocumentTypes(doc *model.Document) (model.TypeVector, error) {
	if doc.HeaderLine() == "" {
		return nil, ErrEmptyData
	}

	first := doc.FirstRow()
	if first == nil {
		return nil, ErrNoDataRows
	}

	if want := len(doc.Header()); len(first) != want {
		return nil, &RaggedRowError{Line: doc.LineNumber(0), Want: want, Got: len(first)}
	}
	return InferTypes(first), nil
}
