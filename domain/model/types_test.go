package model

import (
	"testing"
)

func TestNewHeader(t *testing.T) {
	t.Parallel()

	t.Run("Create header from slice", func(t *testing.T) {
		t.Parallel()

		headerSlice := []string{"col1", "col2", "col3"}
		header := NewHeader(headerSlice)

		if len(header) != 3 {
			t.Errorf("expected length 3, got %d", len(header))
		}

		for i, expected := range headerSlice {
			if header[i] != expected {
				t.Errorf("expected %s at index %d, got %s", expected, i, header[i])
			}
		}
	})
}

func TestHeader_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header1  Header
		header2  Header
		expected bool
	}{
		{
			name:     "Equal headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1", "col2"}),
			expected: true,
		},
		{
			name:     "Different length headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1"}),
			expected: false,
		},
		{
			name:     "Different content headers",
			header1:  NewHeader([]string{"col1", "col2"}),
			header2:  NewHeader([]string{"col1", "col3"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.header1.Equal(tt.header2); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRecord_Equal(t *testing.T) {
	t.Parallel()

	r1 := NewRecord([]string{"a", "1"})
	r2 := NewRecord([]string{"a", "1"})
	r3 := NewRecord([]string{"a", "2"})

	if !r1.Equal(r2) {
		t.Error("expected records to be equal")
	}
	if r1.Equal(r3) {
		t.Error("expected records to differ")
	}
	if r1.Equal(NewRecord([]string{"a"})) {
		t.Error("expected records of different length to differ")
	}
}

func TestColumnType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		columnType ColumnType
		want       string
		numeric    bool
	}{
		{ColumnTypeString, "STRING", false},
		{ColumnTypeInteger, "INTEGER", true},
		{ColumnTypeFloat, "FLOAT", true},
		{ColumnType(7), "STRING", false},
	}

	for _, tt := range tests {
		if got := tt.columnType.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
		if got := tt.columnType.IsNumeric(); got != tt.numeric {
			t.Errorf("%s IsNumeric() = %v, want %v", tt.want, got, tt.numeric)
		}
	}
}

func TestTypeVector(t *testing.T) {
	t.Parallel()

	tv := NewTypeVector(ColumnTypeString, ColumnTypeInteger, ColumnTypeFloat)

	if got := tv.String(); got != "[STRING, INTEGER, FLOAT]" {
		t.Errorf("unexpected String(): %s", got)
	}
	if !tv.Equal(TypeVector{ColumnTypeString, ColumnTypeInteger, ColumnTypeFloat}) {
		t.Error("expected vectors to be equal")
	}
	if tv.Equal(TypeVector{ColumnTypeString, ColumnTypeInteger}) {
		t.Error("expected vectors of different length to differ")
	}
	if got := NewTypeVector().String(); got != "[]" {
		t.Errorf("unexpected String() for empty vector: %s", got)
	}
}
