// Package model provides domain model for tabsql
package model

import "strings"

// Header is the list of column names of a file.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record is the list of cells of one data line.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// ColumnType is the classification of a column
type ColumnType int

const (
	// ColumnTypeString represents a column rendered as quoted literals
	ColumnTypeString ColumnType = iota
	// ColumnTypeInteger represents a whole number column
	ColumnTypeInteger
	// ColumnTypeFloat represents a fractional number column
	ColumnTypeFloat
)

// String returns the classification name
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeInteger:
		return "INTEGER"
	case ColumnTypeFloat:
		return "FLOAT"
	default:
		return "STRING"
	}
}

// IsNumeric reports whether values of the column are emitted without quotes
func (ct ColumnType) IsNumeric() bool {
	return ct == ColumnTypeInteger || ct == ColumnTypeFloat
}

// TypeVector holds one ColumnType per column, in column order.
type TypeVector []ColumnType

// NewTypeVector create new TypeVector.
func NewTypeVector(types ...ColumnType) TypeVector {
	return TypeVector(types)
}

// Equal compare TypeVector.
func (tv TypeVector) Equal(tv2 TypeVector) bool {
	if len(tv) != len(tv2) {
		return false
	}
	for i, v := range tv {
		if v != tv2[i] {
			return false
		}
	}
	return true
}

// String returns the vector as "[STRING, INTEGER, FLOAT]"
func (tv TypeVector) String() string {
	names := make([]string, len(tv))
	for i, t := range tv {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
