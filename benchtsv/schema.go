// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtsv

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// A Kind is the type of the values in a column.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Column names one tab-separated field of a row and the kind its
// values are parsed as.
type Column struct {
	Name string
	Kind Kind
}

// A Schema is the ordered list of columns of a headerless file.
// Field i of every row is parsed as Schema[i].
type Schema []Column

// Names returns the column names of s in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// MixSchema is the layout of the mixed push/pop benchmark results:
// implementation name, whether keys increase monotonically, input
// size, and the cost of the r0 and r4 operation mixes.
var MixSchema = Schema{
	{"name", String},
	{"incr", Bool},
	{"n", Int},
	{"r0", Float},
	{"r4", Float},
}

// OpsSchema is the layout of the per-workload benchmark results. T is
// the element type the implementation was instantiated with.
var OpsSchema = Schema{
	{"name", String},
	{"T", String},
	{"n", Int},
	{"Linear", Float},
	{"Increasing", Float},
	{"Heapsort", Float},
	{"Random", Float},
}

// columnBuilder accumulates the parsed values of a single column.
type columnBuilder interface {
	append(field string) error
	add(b *table.Builder, name string)
}

func newColumnBuilder(k Kind) columnBuilder {
	switch k {
	case Int:
		return &intColumn{}
	case Float:
		return &floatColumn{}
	case Bool:
		return &boolColumn{}
	}
	return &stringColumn{}
}

type stringColumn struct{ vals []string }

func (c *stringColumn) append(f string) error {
	c.vals = append(c.vals, f)
	return nil
}

func (c *stringColumn) add(b *table.Builder, name string) {
	if c.vals == nil {
		c.vals = []string{}
	}
	b.Add(name, c.vals)
}

type intColumn struct{ vals []int }

func (c *intColumn) append(f string) error {
	v, err := strconv.Atoi(f)
	if err != nil {
		return fmt.Errorf("invalid int %q", f)
	}
	c.vals = append(c.vals, v)
	return nil
}

func (c *intColumn) add(b *table.Builder, name string) {
	if c.vals == nil {
		c.vals = []int{}
	}
	b.Add(name, c.vals)
}

// floatColumn treats an empty field as a missing value. The benchmark
// harness leaves a field empty once it stops timing a slow variant.
type floatColumn struct{ vals []float64 }

func (c *floatColumn) append(f string) error {
	if f == "" {
		c.vals = append(c.vals, math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return fmt.Errorf("invalid float %q", f)
	}
	c.vals = append(c.vals, v)
	return nil
}

func (c *floatColumn) add(b *table.Builder, name string) {
	if c.vals == nil {
		c.vals = []float64{}
	}
	b.Add(name, c.vals)
}

type boolColumn struct{ vals []bool }

func (c *boolColumn) append(f string) error {
	v, err := strconv.ParseBool(f)
	if err != nil {
		return fmt.Errorf("invalid bool %q", f)
	}
	c.vals = append(c.vals, v)
	return nil
}

func (c *boolColumn) add(b *table.Builder, name string) {
	if c.vals == nil {
		c.vals = []bool{}
	}
	b.Add(name, c.vals)
}
