// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchxform derives plotting columns from raw benchmark
// tables: per-operation costs, implementation families, and display
// names.
package benchxform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Divisor returns the repetition factor of the operation mix measured
// in column col. A column named "r<i>" times a mix in which every
// insert or delete is surrounded by i further insert/delete pairs, so
// it performs 1+2*i operations per unit.
func Divisor(col string) (float64, error) {
	if !strings.HasPrefix(col, "r") {
		return 0, fmt.Errorf("column %q has no repetition suffix", col)
	}
	i, err := strconv.Atoi(col[1:])
	if err != nil || i < 0 {
		return 0, fmt.Errorf("column %q has no repetition suffix", col)
	}
	return float64(1 + 2*i), nil
}

// Normalize returns g with each of cols divided by its Divisor,
// converting the raw cost of a mix into a per-operation cost. Each
// call divides again; it is not idempotent.
func Normalize(g table.Grouping, cols ...string) (table.Grouping, error) {
	for _, col := range cols {
		d, err := Divisor(col)
		if err != nil {
			return nil, err
		}
		g = table.MapCols(g, func(in, out []float64) {
			for i, v := range in {
				out[i] = v / d
			}
		}, col)(col)
	}
	return g, nil
}

// TypeOf returns the implementation family of a qualified name: the
// text before its first generic parameter list. A name without
// parameters is its own family.
func TypeOf(name string) string {
	typ, _, _ := strings.Cut(name, "<")
	return typ
}

// AddType returns g with a "type" column holding TypeOf of each
// value in the "name" column.
func AddType(g table.Grouping) table.Grouping {
	return table.MapCols(g, func(names, types []string) {
		for i, name := range names {
			types[i] = TypeOf(name)
		}
	}, "name")("type")
}
