package tabsql

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrEmptyData indicates that the input contains no header line
	ErrEmptyData = errors.New("tabsql: empty data source")

	// ErrNoDataRows indicates that the input has a header but no row to infer column types from
	ErrNoDataRows = errors.New("tabsql: no data rows")

	// ErrUnsupportedFormat indicates that the input is neither CSV nor TSV
	ErrUnsupportedFormat = errors.New("tabsql: unsupported file format")

	// ErrUnsupportedCompression indicates a compression that cannot be used in this direction
	ErrUnsupportedCompression = errors.New("tabsql: unsupported compression")

	// ErrRaggedRow indicates a row whose column count differs from the header
	ErrRaggedRow = errors.New("tabsql: ragged row")

	// ErrInvalidTableName indicates a table name that cannot be used as an identifier
	ErrInvalidTableName = errors.New("tabsql: invalid table name")

	// ErrFileNotFound indicates file not found
	ErrFileNotFound = errors.New("tabsql: file not found")

	// ErrPermissionDenied indicates permission denied
	ErrPermissionDenied = errors.New("tabsql: permission denied")

	// ErrOutputWrite indicates that the SQL script could not be written
	ErrOutputWrite = errors.New("tabsql: output not writable")

	// ErrInputTooLarge indicates that the input exceeds the configured size limit
	ErrInputTooLarge = errors.New("tabsql: input too large")
)

// RaggedRowError describes a data line whose cell count does not match the
// number of columns. It matches ErrRaggedRow with errors.Is.
type RaggedRowError struct {
	// Line is the 1-based line number in the source file, 0 when unknown
	Line int
	// Want is the number of columns
	Want int
	// Got is the number of cells found on the line
	Got int
}

// Error implements error
func (e *RaggedRowError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d has %d columns, expected %d", ErrRaggedRow, e.Line, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: row has %d columns, expected %d", ErrRaggedRow, e.Got, e.Want)
}

// Is reports whether target is ErrRaggedRow
func (e *RaggedRowError) Is(target error) bool {
	return target == ErrRaggedRow
}

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, ec.Operation+" failed")

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}
