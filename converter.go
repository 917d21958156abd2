package tabsql

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/tabsql/domain/model"
	"github.com/nao1215/tabsql/internal/logger"
)

// Converter turns one CSV or TSV file into a SQL script.
// Use NewConverter to create a new instance, then chain method calls to
// configure it.
//
// The typical usage pattern is:
//
//	converter, err := tabsql.NewConverter("sales.tsv").
//		WithTableName("sales").
//		WithOutputPath("sales.sql").
//		Build(ctx)
//	if err != nil {
//		return err
//	}
//	result, err := converter.Convert(ctx)
type Converter struct {
	// inputPath is the CSV or TSV file to convert
	inputPath string
	// outputPath is where the script is written; derived from inputPath when empty
	outputPath string
	// tableName is the target table; derived from inputPath when empty
	tableName string
	// scriptOptions controls the rendered script
	scriptOptions ScriptOptions
	// loadOptions controls how the input is read
	loadOptions LoadOptions
	// built is set by a successful Build
	built bool
}

// Result describes a finished conversion.
type Result struct {
	// InputPath is the converted file
	InputPath string
	// OutputPath is the written script, empty when written to a stream
	OutputPath string
	// Kind is the detected input kind
	Kind model.FileKind
	// Table holds the converted header, types and rows
	Table *Table
}

// NewConverter creates a converter for the file at inputPath with default
// options.
func NewConverter(inputPath string) *Converter {
	return &Converter{
		inputPath:     inputPath,
		scriptOptions: NewScriptOptions(),
	}
}

// WithTableName sets the table name used in the script.
// An empty name derives one from the input file name.
func (c *Converter) WithTableName(name string) *Converter {
	c.tableName = name
	return c
}

// WithOutputPath sets the script path.
// An empty path derives one from the input path, see DefaultOutputPath.
func (c *Converter) WithOutputPath(path string) *Converter {
	c.outputPath = path
	return c
}

// WithScriptOptions sets the script rendering options.
func (c *Converter) WithScriptOptions(opts ScriptOptions) *Converter {
	c.scriptOptions = opts
	return c
}

// WithLoadOptions sets the input reading options.
func (c *Converter) WithLoadOptions(opts LoadOptions) *Converter {
	c.loadOptions = opts
	return c
}

// Build validates the configuration and fills in derived defaults:
//
//  1. The input path must name an existing CSV or TSV file
//  2. The table name, when given, must be a valid identifier
//  3. The output path must not be the input file
//
// Returns the same converter for method chaining, or an error if validation fails.
func (c *Converter) Build(ctx context.Context) (*Converter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := newValidator()
	if err := v.validateInputPath(c.inputPath); err != nil {
		return nil, NewErrorContext("build", c.inputPath).Error(err)
	}

	if c.tableName == "" {
		c.tableName = TableNameFromPath(c.inputPath).String()
		logger.Debug("derived table name %s from %s", c.tableName, c.inputPath)
	} else if err := v.validateTableName(NewTableName(c.tableName)); err != nil {
		return nil, err
	}
	c.tableName = NewTableName(c.tableName).String()

	if c.outputPath == "" {
		c.outputPath = DefaultOutputPath(c.inputPath)
		logger.Debug("derived output path %s", c.outputPath)
	}
	if err := v.validateOutputPath(c.outputPath, c.inputPath); err != nil {
		return nil, err
	}

	c.built = true
	return c, nil
}

// TableName returns the table name, derived by Build when not set.
func (c *Converter) TableName() string {
	return c.tableName
}

// OutputPath returns the script path, derived by Build when not set.
func (c *Converter) OutputPath() string {
	return c.outputPath
}

// Convert loads the input, converts it and writes the script to OutputPath.
func (c *Converter) Convert(ctx context.Context) (*Result, error) {
	table, kind, err := c.convert(ctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := SaveScript(c.outputPath, table, c.scriptOptions); err != nil {
		return nil, err
	}
	logger.Info("wrote %d rows to %s", len(table.Rows()), c.outputPath)

	return &Result{
		InputPath:  c.inputPath,
		OutputPath: c.outputPath,
		Kind:       kind,
		Table:      table,
	}, nil
}

// ConvertTo loads the input, converts it and writes the script to w.
func (c *Converter) ConvertTo(ctx context.Context, w io.Writer) (*Result, error) {
	table, kind, err := c.convert(ctx)
	if err != nil {
		return nil, err
	}

	if err := table.WriteScript(w, c.scriptOptions); err != nil {
		return nil, NewErrorContext("write", c.inputPath).WithTable(table.Name()).Error(fmt.Errorf("%w: %w", ErrOutputWrite, err))
	}

	return &Result{
		InputPath: c.inputPath,
		Kind:      kind,
		Table:     table,
	}, nil
}

func (c *Converter) convert(ctx context.Context) (*Table, model.FileKind, error) {
	if !c.built {
		return nil, model.FileKindUnsupported, errors.New("converter is not built, did you call Build()?")
	}

	logger.Info("loading %s", c.inputPath)
	doc, err := LoadDocument(c.inputPath, c.loadOptions)
	if err != nil {
		return nil, model.FileKindUnsupported, err
	}
	logger.Debug("detected %s input %s with %d data lines", doc.Kind(), doc.Path(), len(doc.Lines()))

	if err := ctx.Err(); err != nil {
		return nil, doc.Kind(), err
	}

	table, err := NewTable(c.tableName, doc)
	if err != nil {
		return nil, doc.Kind(), NewErrorContext("convert", doc.Path()).WithTable(c.tableName).Error(err)
	}
	logger.Debug("column types %s", table.Types())

	return table, doc.Kind(), nil
}
