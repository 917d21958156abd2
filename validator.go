package tabsql

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nao1215/tabsql/domain/model"
)

// validator handles validation logic for Converter
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validateInputPath checks that path is non-empty, names a CSV or TSV file
// and exists.
func (v *validator) validateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("input path cannot be empty")
	}
	if !model.IsSupportedFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return statInput(path)
}

// validateOutputPath refuses to overwrite the input file.
func (v *validator) validateOutputPath(outputPath, inputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		return fmt.Errorf("%w: output path cannot be empty", ErrOutputWrite)
	}
	out, errOut := filepath.Abs(outputPath)
	in, errIn := filepath.Abs(inputPath)
	if errOut == nil && errIn == nil && out == in {
		return fmt.Errorf("%w: output path %s is the input file", ErrOutputWrite, outputPath)
	}
	return nil
}

// validateTableName checks an explicitly given table name.
func (v *validator) validateTableName(name TableName) error {
	return name.Validate()
}
