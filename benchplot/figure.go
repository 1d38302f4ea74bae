// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot draws grids of log-log line charts comparing
// benchmark results across implementation variants.
//
// A Figure is a fixed grid of Panels. Each Panel holds one Line per
// variant. Both axes of every panel use a base-2 logarithmic scale,
// and a Line's color and dash pattern come from the Figure's Styles,
// so a variant is drawn identically wherever it appears.
package benchplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A LegendMode selects where a Figure draws its legend.
type LegendMode int

const (
	// LegendBelow suppresses the per-panel legends and draws the
	// entries of the top-left panel (followed by any variants that
	// only appear in other panels) as one legend below the grid.
	LegendBelow LegendMode = iota

	// LegendFirstColumn draws a legend inside each panel of the
	// first column and none elsewhere.
	LegendFirstColumn

	// LegendNone draws no legend.
	LegendNone
)

// A Figure is a grid of panels drawn onto one canvas.
type Figure struct {
	Rows, Cols    int
	Width, Height vg.Length

	// ShareX and ShareY give every panel the same x or y range:
	// the union of the data ranges of all panels.
	ShareX, ShareY bool

	Legend LegendMode

	// LegendColumns is the number of columns the LegendBelow
	// legend is split into. If zero, Cols is used.
	LegendColumns int

	Styles *Styles

	panels []Panel
}

// A Panel is one chart of a Figure.
//
// Titles are only drawn on the top row, Y labels on the first column,
// and X labels on the bottom row of the figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// A Line is the series of one variant.
type Line struct {
	Type, Name string
	XYs        plotter.XYs
}

// NewFigure returns a Figure with rows×cols empty panels and a fresh
// set of Styles.
func NewFigure(rows, cols int) *Figure {
	return &Figure{
		Rows:   rows,
		Cols:   cols,
		Width:  20 * vg.Inch,
		Height: 5 * vg.Inch,
		Styles: NewStyles(),
		panels: make([]Panel, rows*cols),
	}
}

// Panel returns the panel in row r and column c.
func (f *Figure) Panel(r, c int) *Panel {
	if r < 0 || r >= f.Rows || c < 0 || c >= f.Cols {
		panic(fmt.Sprintf("panel (%d, %d) outside %d×%d figure", r, c, f.Rows, f.Cols))
	}
	return &f.panels[r*f.Cols+c]
}

// Add appends a line for variant name of family typ. Points that
// cannot be drawn on a log scale (non-positive, infinite, or NaN
// coordinates) are dropped.
func (p *Panel) Add(typ, name string, data plotter.XYer) {
	var xys plotter.XYs
	for i := 0; i < data.Len(); i++ {
		x, y := data.XY(i)
		if !drawable(x) || !drawable(y) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	p.Lines = append(p.Lines, Line{Type: typ, Name: name, XYs: xys})
}

func drawable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// build constructs the plot of every panel, and the entries of the
// shared legend.
func (f *Figure) build() ([][]*plot.Plot, []legendEntry, error) {
	// Register styles in panel order first so that assignment does
	// not depend on the order plots are built in.
	for i := range f.panels {
		for _, l := range f.panels[i].Lines {
			f.Styles.Register(l.Type, l.Name)
		}
	}

	var xr, yr bounds
	plots := make([][]*plot.Plot, f.Rows)
	ranges := make([][2]bounds, len(f.panels))
	var entries []legendEntry
	seen := make(map[[2]string]bool)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols)
		for c := range plots[r] {
			panel := f.Panel(r, c)
			p := plot.New()
			if r == 0 {
				p.Title.Text = panel.Title
			}
			if c == 0 {
				p.Y.Label.Text = panel.YLabel
			}
			if r == f.Rows-1 {
				p.X.Label.Text = panel.XLabel
			}
			p.X.Scale, p.Y.Scale = plot.LogScale{}, plot.LogScale{}
			p.X.Tick.Marker, p.Y.Tick.Marker = Log2Ticks{}, Log2Ticks{}
			p.Add(plotter.NewGrid())

			var pxr, pyr bounds
			for _, l := range panel.Lines {
				if len(l.XYs) == 0 {
					continue
				}
				line, err := plotter.NewLine(l.XYs)
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", l.Name, err)
				}
				line.LineStyle = f.Styles.Style(l.Type, l.Name)
				p.Add(line)
				pxr.add(l.XYs, func(xy plotter.XY) float64 { return xy.X })
				pyr.add(l.XYs, func(xy plotter.XY) float64 { return xy.Y })

				switch f.Legend {
				case LegendFirstColumn:
					if c == 0 {
						p.Legend.Add(l.Name, line)
					}
				case LegendBelow:
					key := [2]string{l.Type, l.Name}
					if !seen[key] {
						seen[key] = true
						entries = append(entries, legendEntry{l.Name, line})
					}
				}
			}
			if f.Legend == LegendFirstColumn {
				p.Legend.Top = true
				p.Legend.Left = true
			}
			xr.merge(pxr)
			yr.merge(pyr)
			ranges[r*f.Cols+c] = [2]bounds{pxr, pyr}
			plots[r][c] = p
		}
	}

	for r := range plots {
		for c, p := range plots[r] {
			pr := ranges[r*f.Cols+c]
			if f.ShareX {
				pr[0] = xr
			}
			if f.ShareY {
				pr[1] = yr
			}
			pr[0].apply(&p.X)
			pr[1].apply(&p.Y)
		}
	}
	return plots, entries, nil
}

// bounds is a data range that may be empty.
type bounds struct {
	ok       bool
	min, max float64
}

func (b *bounds) add(xys plotter.XYs, coord func(plotter.XY) float64) {
	vs := make([]float64, len(xys))
	for i, xy := range xys {
		vs[i] = coord(xy)
	}
	min, max := stats.Bounds(vs)
	b.merge(bounds{true, min, max})
}

func (b *bounds) merge(o bounds) {
	switch {
	case !o.ok:
	case !b.ok:
		*b = o
	default:
		b.min = math.Min(b.min, o.min)
		b.max = math.Max(b.max, o.max)
	}
}

// apply sets the range of a log-scaled axis. An empty range becomes
// [1, 2] and a single value is widened to an octave, since a log
// scale cannot normalize either.
func (b bounds) apply(a *plot.Axis) {
	switch {
	case !b.ok:
		a.Min, a.Max = 1, 2
	case b.min == b.max:
		a.Min, a.Max = b.min/math.Sqrt2, b.max*math.Sqrt2
	default:
		a.Min, a.Max = b.min, b.max
	}
}

// Render draws f onto c: the panel grid, and below it the shared
// legend if f.Legend is LegendBelow.
func (f *Figure) Render(c draw.Canvas) error {
	plots, entries, err := f.build()
	if err != nil {
		return err
	}

	grid := c
	if f.Legend == LegendBelow && len(entries) > 0 {
		h := f.legendHeight(entries)
		height := c.Max.Y - c.Min.Y
		grid = draw.Crop(c, 0, 0, h, 0)
		f.drawLegend(draw.Crop(c, 0, 0, 0, h-height), entries)
	}

	tiles := draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(8),
		PadX:      vg.Points(12),
		PadY:      vg.Points(8),
	}
	canvases := plot.Align(plots, tiles, grid)
	for r := range plots {
		for j := range plots[r] {
			plots[r][j].Draw(canvases[r][j])
		}
	}
	return nil
}
