package tabsql

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveScript writes the SQL script of table to path.
//
// A ".gz", ".xz" or ".zst" suffix on path compresses the script. The parent
// directory must exist. Any failure is reported as ErrOutputWrite; a failed
// write may leave a partial file behind.
func SaveScript(path string, table *Table, opts ScriptOptions) (err error) {
	ec := NewErrorContext("save", path).WithTable(table.Name())

	if info, statErr := os.Stat(filepath.Dir(path)); statErr != nil || !info.IsDir() {
		return ec.WithDetails("parent directory does not exist").Error(ErrOutputWrite)
	}

	writer, cleanup, err := createCompressedFile(path)
	if err != nil {
		return ec.Error(fmt.Errorf("%w: %w", ErrOutputWrite, err))
	}
	defer func() {
		if closeErr := cleanup(); closeErr != nil && err == nil {
			err = ec.Error(fmt.Errorf("%w: %w", ErrOutputWrite, closeErr))
		}
	}()

	if err := table.WriteScript(writer, opts); err != nil {
		return ec.Error(fmt.Errorf("%w: %w", ErrOutputWrite, err))
	}
	return nil
}
