package model

import (
	"path/filepath"
	"strings"
)

// FileKind represents the delimited text format of an input file.
type FileKind int

const (
	// FileKindCSV represents comma separated values
	FileKindCSV FileKind = iota
	// FileKindTSV represents tab separated values
	FileKindTSV
	// FileKindUnsupported represents any other file
	FileKindUnsupported
)

// File extensions
const (
	// ExtCSV is the CSV file extension
	ExtCSV = ".csv"
	// ExtTSV is the TSV file extension
	ExtTSV = ".tsv"
	// ExtSQL is the extension of generated scripts
	ExtSQL = ".sql"
	// ExtGZ is the gzip compression extension
	ExtGZ = ".gz"
	// ExtBZ2 is the bzip2 compression extension
	ExtBZ2 = ".bz2"
	// ExtXZ is the xz compression extension
	ExtXZ = ".xz"
	// ExtZSTD is the zstd compression extension
	ExtZSTD = ".zst"
)

// Delimiters
const (
	// CSVDelimiter separates CSV columns
	CSVDelimiter = ','
	// TSVDelimiter separates TSV columns
	TSVDelimiter = '\t'
)

// String returns the name of the file kind
func (k FileKind) String() string {
	switch k {
	case FileKindCSV:
		return "csv"
	case FileKindTSV:
		return "tsv"
	default:
		return "unsupported"
	}
}

// Delimiter returns the column separator for the kind.
// Unsupported kinds return 0.
func (k FileKind) Delimiter() rune {
	switch k {
	case FileKindCSV:
		return CSVDelimiter
	case FileKindTSV:
		return TSVDelimiter
	default:
		return 0
	}
}

// IsSupported reports whether the kind can be converted
func (k FileKind) IsSupported() bool {
	return k == FileKindCSV || k == FileKindTSV
}

// DetectFileKind detects the file kind from the file name.
//
// The base name is matched case-insensitively and only has to contain ".csv"
// or ".tsv", so "data.CSV", "data.tsv.gz" and "export.csv.bak" are accepted.
// When both appear the later occurrence wins.
func DetectFileKind(path string) FileKind {
	name := strings.ToLower(filepath.Base(path))

	csvAt := strings.LastIndex(name, ExtCSV)
	tsvAt := strings.LastIndex(name, ExtTSV)

	switch {
	case csvAt < 0 && tsvAt < 0:
		return FileKindUnsupported
	case csvAt > tsvAt:
		return FileKindCSV
	default:
		return FileKindTSV
	}
}

// IsSupportedFile checks if the file name names a CSV or TSV file
func IsSupportedFile(path string) bool {
	return DetectFileKind(path).IsSupported()
}

// CompressionType represents the compression applied to a file
type CompressionType int

const (
	// CompressionNone represents no compression
	CompressionNone CompressionType = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of CompressionType
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGZ:
		return "gz"
	case CompressionBZ2:
		return "bz2"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c CompressionType) Extension() string {
	switch c {
	case CompressionNone:
		return ""
	case CompressionGZ:
		return ExtGZ
	case CompressionBZ2:
		return ExtBZ2
	case CompressionXZ:
		return ExtXZ
	case CompressionZSTD:
		return ExtZSTD
	default:
		return ""
	}
}

// DetectCompressionType detects the compression type from a file path suffix
func DetectCompressionType(path string) CompressionType {
	path = strings.ToLower(path)

	switch {
	case strings.HasSuffix(path, ExtGZ):
		return CompressionGZ
	case strings.HasSuffix(path, ExtBZ2):
		return CompressionBZ2
	case strings.HasSuffix(path, ExtXZ):
		return CompressionXZ
	case strings.HasSuffix(path, ExtZSTD):
		return CompressionZSTD
	default:
		return CompressionNone
	}
}

// TrimCompressionExtension removes the compression extension from a path if present
func TrimCompressionExtension(path string) string {
	ext := DetectCompressionType(path).Extension()
	return path[:len(path)-len(ext)]
}

// TrimDataExtension removes the compression extension and everything from the
// last ".csv" or ".tsv" of the base name onwards.
// "dir/Sales.TSV.gz" becomes "dir/Sales". Paths of unsupported kinds are
// returned without their compression extension.
func TrimDataExtension(path string) string {
	path = TrimCompressionExtension(path)

	dir, name := filepath.Split(path)
	lower := strings.ToLower(name)
	cut := max(strings.LastIndex(lower, ExtCSV), strings.LastIndex(lower, ExtTSV))
	if cut < 0 {
		return path
	}
	return dir + name[:cut]
}
