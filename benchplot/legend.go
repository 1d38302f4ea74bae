// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// legendPad separates the shared legend from the grid and its rows
// from each other.
const legendPad = vg.Length(4)

func (f *Figure) legendColumns(n int) int {
	cols := f.LegendColumns
	if cols <= 0 {
		cols = f.Cols
	}
	if cols > n {
		cols = n
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

// legendRows returns the number of entries in each legend column.
func (f *Figure) legendRows(n int) int {
	cols := f.legendColumns(n)
	return (n + cols - 1) / cols
}

func newLegend() plot.Legend {
	l := plot.NewLegend()
	l.Top = true
	l.Left = true
	l.Padding = legendPad
	return l
}

// legendHeight returns the height of the strip the shared legend of
// entries needs.
func (f *Figure) legendHeight(entries []legendEntry) vg.Length {
	l := newLegend()
	row := l.TextStyle.Font.Size*1.25 + l.Padding
	return vg.Length(f.legendRows(len(entries)))*row + 2*legendPad
}

// drawLegend lays entries out in columns across c, filling each
// column top to bottom before starting the next.
func (f *Figure) drawLegend(c draw.Canvas, entries []legendEntry) {
	cols := f.legendColumns(len(entries))
	rows := f.legendRows(len(entries))
	width := (c.Max.X - c.Min.X) / vg.Length(cols)
	for k := 0; k < cols; k++ {
		lo, hi := k*rows, (k+1)*rows
		if lo >= len(entries) {
			break
		}
		if hi > len(entries) {
			hi = len(entries)
		}
		l := newLegend()
		for _, e := range entries[lo:hi] {
			l.Add(e.label, e.thumb)
		}
		left := vg.Length(k) * width
		right := vg.Length(k+1)*width - (c.Max.X - c.Min.X)
		l.Draw(draw.Crop(c, left+legendPad, right, 0, -legendPad))
	}
}
