// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtsv

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
)

// Load reads the file at path into a Table with one column per entry
// of schema. It fails if the file cannot be opened or if any row is
// short or holds a field that does not parse as its column's kind.
func Load(path string, schema Schema) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading benchmark results: %w", err)
	}
	defer f.Close()
	return Decode(f, path, schema)
}

// Decode reads tab-separated rows from r into a Table with one column
// per entry of schema. fileName is used in error messages.
func Decode(r io.Reader, fileName string, schema Schema) (*table.Table, error) {
	cols := make([]columnBuilder, len(schema))
	for i, c := range schema {
		cols[i] = newColumnBuilder(c.Kind)
	}

	rd := NewReader(r, fileName, schema)
	for rd.Scan() {
		for i, field := range rd.Row() {
			if err := cols[i].append(field); err != nil {
				return nil, rd.newSyntaxError("column %s: %v", schema[i].Name, err)
			}
		}
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}

	var b table.Builder
	for i, c := range schema {
		cols[i].add(&b, c.Name)
	}
	return b.Done(), nil
}
