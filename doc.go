// Package tabsql converts CSV and TSV files into SQL scripts that recreate
// the file as a table and insert every row.
//
// The conversion is a single pass over the file held in memory:
//
//  1. The file kind (CSV or TSV) is detected from the file name and fixes the delimiter
//  2. The first line is the header, every following non-empty line is a row
//  3. Column types are inferred from the first row only
//  4. The header becomes a list of backtick quoted identifiers
//  5. Every row becomes a list of SQL literals: strings single quoted, numbers bare
//  6. DROP TABLE, CREATE TABLE, INSERT INTO and VALUES are emitted
//
// # Basic Usage
//
//	converter, err := tabsql.NewConverter("sales.tsv").
//	    WithTableName("sales").
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := converter.Convert(ctx) // writes sales.sql
//
// The pipeline stages are exported on their own as well: LoadDocument,
// InferTypes, ReformHeader, ReformRow, ReformBody, NewTable and
// Table.Script.
//
// # Type Inference
//
// A cell that parses as a decimal number is INTEGER when it equals its rounded
// value ("2", "3.0") and FLOAT otherwise ("3.2"). Anything else is STRING.
// Only the first data row is inspected; later rows are not re-checked, so a
// fractional value in an INTEGER column is still emitted as a bare number.
//
// # Input Format
//
// Lines are split on the delimiter only. Quoted fields, escaped delimiters
// and embedded newlines are not supported. Every row must have as many cells
// as the header, otherwise conversion fails with ErrRaggedRow.
//
// Files ending in .gz, .bz2, .xz or .zst are decompressed transparently, and
// a script path ending in .gz, .xz or .zst is compressed.
//
// # SQL Syntax
//
// The generated script targets MySQL: identifiers are quoted with backticks
// and the surrogate key uses AUTO_INCREMENT. Load it with:
//
//	mysql -u <user> -p <database> < sales.sql
package tabsql
