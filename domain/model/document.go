package model

import "strings"

// utf8BOM is stripped from the start of the header line.
const utf8BOM = "\uFEFF"

// Document is the parsed content of a delimited text file: one header line
// followed by data lines. It is immutable after NewDocument.
type Document struct {
	path   string
	kind   FileKind
	header string
	lines  []string
	// lineNumbers holds the 1-based source line of each entry in lines
	lineNumbers []int
}

// NewDocument splits content into a header line and data lines.
//
// Lines end at '\n'; a trailing '\r' is removed. Empty lines are skipped and
// the first non-empty line is the header. The original line numbers are kept
// so errors can point at the source.
func NewDocument(path string, kind FileKind, content string) *Document {
	doc := &Document{
		path: path,
		kind: kind,
	}

	content = strings.TrimPrefix(content, utf8BOM)
	headerSeen := false
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if !headerSeen {
			doc.header = line
			headerSeen = true
			continue
		}
		doc.lines = append(doc.lines, line)
		doc.lineNumbers = append(doc.lineNumbers, i+1)
	}
	return doc
}

// Path returns the path the document was loaded from
func (d *Document) Path() string {
	return d.path
}

// Kind returns the file kind the document was parsed as
func (d *Document) Kind() FileKind {
	return d.kind
}

// HeaderLine returns the raw header line, or "" for an empty document
func (d *Document) HeaderLine() string {
	return d.header
}

// Header returns the header split into column names
func (d *Document) Header() Header {
	if d.header == "" {
		return nil
	}
	return NewHeader(d.Split(d.header))
}

// Lines returns the raw data lines in file order
func (d *Document) Lines() []string {
	return d.lines
}

// LineNumber returns the 1-based source line of the i-th data line
func (d *Document) LineNumber(i int) int {
	if i < 0 || i >= len(d.lineNumbers) {
		return 0
	}
	return d.lineNumbers[i]
}

// LineNumbers returns the 1-based source line of every data line
func (d *Document) LineNumbers() []int {
	return d.lineNumbers
}

// FirstRow returns the cells of the first data line, or nil when there is none
func (d *Document) FirstRow() Record {
	if len(d.lines) == 0 {
		return nil
	}
	return NewRecord(d.Split(d.lines[0]))
}

// Split splits a line on the document delimiter
func (d *Document) Split(line string) []string {
	return strings.Split(line, string(d.kind.Delimiter()))
}
