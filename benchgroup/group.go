// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgroup partitions benchmark tables into the series that
// are drawn in one chart panel.
//
// There are two ways to do this. MinPivot collapses repeated samples
// of each (size, family) cell to their minimum and produces one series
// per family. Series keeps every row and produces one series per
// (family, variant) pair. Both preserve the order in which families
// and variants first appear in the input rather than sorting them, so
// that legend and color order follow the input.
package benchgroup

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Series is a sequence of points belonging to one implementation
// variant. Type is the variant's family and Name its full display
// name; for a family-level series they are the same.
type Series struct {
	Type, Name string
	Xs, Ys     []float64
}

// Len returns the number of points in s.
func (s Series) Len() int {
	return len(s.Xs)
}

// XY returns the i'th point of s.
func (s Series) XY(i int) (x, y float64) {
	return s.Xs[i], s.Ys[i]
}

// A Family is an implementation family and the names of its variants
// in first-seen order.
type Family struct {
	Type  string
	Names []string
}

// Select returns g restricted to cols, in that order.
func Select(g table.Grouping, cols ...string) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var nt table.Builder
		for _, col := range cols {
			if cv, ok := t.Const(col); ok {
				nt.AddConst(col, cv)
			} else {
				nt.Add(col, t.MustColumn(col))
			}
		}
		return nt.Done()
	})
}

// FilterFlag returns the rows of g whose bool column col equals want.
func FilterFlag(g table.Grouping, col string, want bool) table.Grouping {
	return table.FilterEq(g, col, want)
}

// SeriesOf groups the rows of g by typeCol and then by nameCol and
// returns one Series per group with x and y taken from columns x and
// y. Groups appear in first-seen order. Within a series, points are
// sorted by x and rows with a NaN y are dropped.
func SeriesOf(g table.Grouping, typeCol, nameCol, x, y string) []Series {
	var out []Series
	gg := table.SortBy(table.GroupBy(g, typeCol, nameCol), x)
	for _, gid := range gg.Tables() {
		t := gg.Table(gid)
		s := Series{Type: constString(t, typeCol), Name: constString(t, nameCol)}
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn(x))
		slice.Convert(&ys, t.MustColumn(y))
		for i := range xs {
			if math.IsNaN(ys[i]) {
				continue
			}
			s.Xs = append(s.Xs, xs[i])
			s.Ys = append(s.Ys, ys[i])
		}
		out = append(out, s)
	}
	return out
}

// Families returns the families of g and their variants, grouping
// rows by typeCol and then nameCol. A family seen in several tables
// of g is reported once, with the variants of all tables.
func Families(g table.Grouping, typeCol, nameCol string) []Family {
	var out []Family
	index := make(map[string]int)
	seen := make(map[[2]string]bool)
	gg := table.GroupBy(g, typeCol, nameCol)
	for _, gid := range gg.Tables() {
		t := gg.Table(gid)
		typ, name := constString(t, typeCol), constString(t, nameCol)
		i, ok := index[typ]
		if !ok {
			i = len(out)
			index[typ] = i
			out = append(out, Family{Type: typ})
		}
		if !seen[[2]string{typ, name}] {
			seen[[2]string{typ, name}] = true
			out[i].Names = append(out[i].Names, name)
		}
	}
	return out
}

// constString returns the value of col in t, which GroupBy has made
// constant.
func constString(t *table.Table, col string) string {
	if cv, ok := t.Const(col); ok {
		return cv.(string)
	}
	return t.MustColumn(col).([]string)[0]
}
