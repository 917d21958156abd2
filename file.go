package tabsql

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nao1215/tabsql/domain/model"
)

const (
	// bytesPerMB converts megabytes to bytes
	bytesPerMB = 1024 * 1024
	// DefaultMaxInputMB is the default cap on the decompressed input size
	DefaultMaxInputMB = 512
	// MaxInputMBLimit is the largest accepted cap, 1 TB
	MaxInputMBLimit = 1 << 20
)

// LoadOptions configures how input files are read.
type LoadOptions struct {
	// MaxInputMB caps the decompressed input size. Values below 1 use
	// DefaultMaxInputMB, values above MaxInputMBLimit are clamped.
	MaxInputMB int64
}

func (o LoadOptions) maxInputBytes() int64 {
	switch {
	case o.MaxInputMB < 1:
		return DefaultMaxInputMB * bytesPerMB
	case o.MaxInputMB > MaxInputMBLimit:
		return MaxInputMBLimit * bytesPerMB
	default:
		return o.MaxInputMB * bytesPerMB
	}
}

// LoadDocument reads the file at path into a Document.
//
// The file kind is detected from the name once, here, and travels with the
// document. Compressed files (.gz, .bz2, .xz, .zst) are decompressed
// transparently.
func LoadDocument(path string, opts LoadOptions) (*model.Document, error) {
	ec := NewErrorContext("load", path)

	kind := model.DetectFileKind(path)
	if !kind.IsSupported() {
		return nil, ec.WithDetails("extension must contain .csv or .tsv").Error(ErrUnsupportedFormat)
	}

	reader, closer, err := openCompressedFile(path)
	if err != nil {
		return nil, ec.Error(classifyOpenError(err))
	}
	defer closer() //nolint:errcheck // read-only handle

	doc, err := parseDocument(reader, path, kind, opts)
	if err != nil {
		return nil, ec.Error(err)
	}
	return doc, nil
}

// ParseDocument reads an already opened CSV or TSV stream into a Document.
func ParseDocument(r io.Reader, kind model.FileKind, opts LoadOptions) (*model.Document, error) {
	if !kind.IsSupported() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
	return parseDocument(r, "", kind, opts)
}

func parseDocument(r io.Reader, path string, kind model.FileKind, opts LoadOptions) (*model.Document, error) {
	limit := opts.maxInputBytes()
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: more than %d MB", ErrInputTooLarge, limit/bytesPerMB)
	}

	doc := model.NewDocument(path, kind, string(content))
	if doc.HeaderLine() == "" {
		return nil, ErrEmptyData
	}
	return doc, nil
}

// classifyOpenError maps os errors onto the package sentinels, keeping the
// original error in the chain.
func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// statInput checks that path exists and is a regular file.
func statInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return classifyOpenError(err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}
	return nil
}
