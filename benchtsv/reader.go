// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtsv reads headerless, tab-separated benchmark result
// files into go-gg tables.
//
// Each line of such a file is one observation. The columns are not
// named in the file; the caller supplies a Schema that names and types
// them positionally. A field left empty in a float column is a
// missing value and is read as NaN.
package benchtsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Reader reads rows of a tab-separated file.
//
// Its API is modeled on bufio.Scanner. The slice returned by Row is
// only valid until the next call to Scan.
type Reader struct {
	s      *bufio.Scanner
	schema Schema
	err    error

	fileName string
	line     int
	row      []string
}

// A SyntaxError represents a malformed row at a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader that splits the lines of r into the
// columns of schema. fileName is used in error messages; it is purely
// diagnostic.
func NewReader(r io.Reader, fileName string, schema Schema) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), schema: schema, fileName: fileName}
}

func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// Scan advances the reader to the next row and reports whether a row
// was read. Blank lines are skipped. A line with fewer fields than the
// schema has columns stops the scan with a *SyntaxError; extra
// trailing fields are ignored. When Scan returns false, the caller
// should use Err to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimSuffix(r.s.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < len(r.schema) {
			r.err = r.newSyntaxError("expected %d fields, got %d", len(r.schema), len(fields))
			return false
		}
		r.row = fields[:len(r.schema)]
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Row returns the fields of the row just read by Scan, one per schema
// column.
func (r *Reader) Row() []string {
	return r.row
}

// Line returns the line number of the row just read by Scan.
func (r *Reader) Line() int {
	return r.line
}

// Err returns the first error encountered by Scan, if any. If Scan
// stopped because it reached EOF, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}
