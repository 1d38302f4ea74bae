// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// A Pivot is a wide table: one row per distinct index value, in
// increasing order, and one column per distinct label, in first-seen
// order.
type Pivot struct {
	Index  []int
	Labels []string

	// Values maps each label to its column. Cells for which the
	// input had no (index, label) row hold NaN.
	Values map[string][]float64
}

// Len returns the number of rows in p.
func (p *Pivot) Len() int {
	return len(p.Index)
}

// Series returns one Series per label of p, in label order, omitting
// absent cells. The label is both the Type and the Name of its series.
func (p *Pivot) Series() []Series {
	var out []Series
	for _, label := range p.Labels {
		s := Series{Type: label, Name: label}
		for i, v := range p.Values[label] {
			if math.IsNaN(v) {
				continue
			}
			s.Xs = append(s.Xs, float64(p.Index[i]))
			s.Ys = append(s.Ys, v)
		}
		out = append(out, s)
	}
	return out
}

type cell struct {
	index int
	label string
}

// MinPivot reshapes g so that each distinct value of the int column
// index becomes a row and each distinct value of the string column
// label becomes a column. Every cell holds the minimum of the float64
// column value over the rows of g with that index and label, the
// usual best-case estimate for repeated benchmark samples. Rows where
// value is NaN do not contribute. All tables of g are pooled.
func MinPivot(g table.Grouping, index, label, value string) *Pivot {
	p := &Pivot{Values: make(map[string][]float64)}
	if len(g.Tables()) == 0 {
		return p
	}
	t := table.Flatten(Select(g, index, label, value))
	g = table.Filter(t, func(v float64) bool { return !math.IsNaN(v) }, value)
	if table.Flatten(g).Len() == 0 {
		return p
	}

	minCol := "min " + value
	agg := ggstat.Agg(index, label)(ggstat.AggMin(value)).F(g)
	// Aggregate keeps value itself if it happens to be unique in
	// every cell; it must not become a pivot key.
	agg = Select(agg, index, label, minCol)

	present := make(map[cell]bool)
	at := table.Flatten(agg)
	idx, labels := at.MustColumn(index).([]int), at.MustColumn(label).([]string)
	for i := range idx {
		present[cell{idx[i], labels[i]}] = true
	}
	p.Labels = slice.Nub(labels).([]string)

	wide := table.Flatten(table.SortBy(table.Pivot(agg, label, minCol), index))
	slice.Convert(&p.Index, wide.MustColumn(index))
	for _, l := range p.Labels {
		col := append([]float64(nil), wide.MustColumn(l).([]float64)...)
		for i, x := range p.Index {
			if !present[cell{x, l}] {
				col[i] = math.NaN()
			}
		}
		p.Values[l] = col
	}
	return p
}
