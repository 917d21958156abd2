package tabsql

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/nao1215/tabsql/domain/model"
)

// CompressionHandler defines the interface for handling file compression/decompression
type CompressionHandler interface {
	// CreateReader wraps an io.Reader with a decompression reader if needed
	CreateReader(reader io.Reader) (io.Reader, func() error, error)
	// CreateWriter wraps an io.Writer with a compression writer if needed
	CreateWriter(writer io.Writer) (io.Writer, func() error, error)
	// Extension returns the file extension for this compression type (e.g., ".gz")
	Extension() string
}

// compressionHandlerImpl implements the CompressionHandler interface
type compressionHandlerImpl struct {
	compressionType model.CompressionType
}

// NewCompressionHandler creates a new compression handler for the given compression type
func NewCompressionHandler(compressionType model.CompressionType) CompressionHandler {
	return &compressionHandlerImpl{
		compressionType: compressionType,
	}
}

// CreateReader creates a decompression reader based on the compression type
func (h *compressionHandlerImpl) CreateReader(reader io.Reader) (io.Reader, func() error, error) {
	switch h.compressionType {
	case model.CompressionNone:
		return reader, func() error { return nil }, nil

	case model.CompressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case model.CompressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case model.CompressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case model.CompressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("%w for reading: %v", ErrUnsupportedCompression, h.compressionType)
	}
}

// CreateWriter creates a compression writer based on the compression type
func (h *compressionHandlerImpl) CreateWriter(writer io.Writer) (io.Writer, func() error, error) {
	switch h.compressionType {
	case model.CompressionNone:
		return writer, func() error { return nil }, nil

	case model.CompressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case model.CompressionBZ2:
		// bzip2 only has a reader in the standard library
		return nil, nil, fmt.Errorf("%w: bzip2 cannot be used for writing", ErrUnsupportedCompression)

	case model.CompressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case model.CompressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w for writing: %v", ErrUnsupportedCompression, h.compressionType)
	}
}

// Extension returns the file extension for this compression type
func (h *compressionHandlerImpl) Extension() string {
	return h.compressionType.Extension()
}

// openCompressedFile opens path and returns a reader that handles
// decompression based on the path suffix.
func openCompressedFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, err
	}

	handler := NewCompressionHandler(model.DetectCompressionType(path))
	reader, cleanup, err := handler.CreateReader(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	// Create a composite cleanup function
	compositeCleanup := func() error {
		var cleanupErr error
		if cleanup != nil {
			cleanupErr = cleanup()
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}

	return reader, compositeCleanup, nil
}

// createCompressedFile creates path and returns a writer that compresses
// based on the path suffix. The cleanup function flushes, syncs and closes.
func createCompressedFile(path string) (io.Writer, func() error, error) {
	compressionType := model.DetectCompressionType(path)
	if compressionType == model.CompressionBZ2 {
		// Checked before os.Create so an existing file is not truncated
		return nil, nil, fmt.Errorf("%w: bzip2 cannot be used for writing", ErrUnsupportedCompression)
	}
	handler := NewCompressionHandler(compressionType)

	file, err := os.Create(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, err
	}

	writer, cleanup, err := handler.CreateWriter(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	// Create a composite cleanup function
	compositeCleanup := func() error {
		var cleanupErr error
		if cleanup != nil {
			cleanupErr = cleanup()
		}
		if syncErr := file.Sync(); syncErr != nil && cleanupErr == nil {
			cleanupErr = syncErr
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}

	return writer, compositeCleanup, nil
}
