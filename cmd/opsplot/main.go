// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Opsplot plots heap benchmark results for single-operation workloads
// at several element widths.
//
// Usage:
//
//	opsplot [-o plot.svg] [width=file ...]
//
// Each input is a headerless tab-separated file with the columns
//
//	name  T  n  Linear  Increasing  Heapsort  Random
//
// measured at one element width, given by the label before "=". The
// default inputs are 32=data32.tsv and 64=data64.tsv.
//
// The figure has one row of panels per input and one column per
// workload. Every variant is drawn with one line, colored by its
// family and dashed by its position within the family, and a single
// legend for all panels is drawn below the grid.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/quickheap/evals/benchgroup"
	"github.com/quickheap/evals/benchplot"
	"github.com/quickheap/evals/benchtsv"
	"github.com/quickheap/evals/benchxform"
	"gonum.org/v1/plot/vg"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: opsplot [flags] [width=file ...]

opsplot plots heap benchmark results, one row of panels per input.
The default inputs are 32=data32.tsv and 64=data64.tsv.

`)
	flag.PrintDefaults()
}

var flagOut = flag.String("o", "plot.svg", "write the figure to `file` (.svg, .png, or .pdf)")

// defaultInputs are read if no inputs are given.
var defaultInputs = []string{"32=data32.tsv", "64=data64.tsv"}

// workloads are the measurement columns, in panel order.
var workloads = []string{"Linear", "Increasing", "Heapsort", "Random"}

func main() {
	log.SetPrefix("opsplot: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		paths = defaultInputs
	}

	g, err := load(paths)
	if err != nil {
		log.Fatal(err)
	}
	fig := opsFigure(g)
	if err := fig.Save(*flagOut); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *flagOut)
}

// load reads the inputs, one group per width, and prepares the
// variant names and types for plotting.
func load(paths []string) (table.Grouping, error) {
	files := benchtsv.Files{Paths: paths, AllowLabels: true}
	g, err := benchtsv.LoadFiles(files, benchtsv.OpsSchema, "width")
	if err != nil {
		return nil, err
	}
	g = benchxform.OpsNames.Rename(g, "name")
	return benchxform.AddType(g), nil
}

func opsFigure(g table.Grouping) *benchplot.Figure {
	widths := g.Tables()
	fig := benchplot.NewFigure(len(widths), len(workloads))
	fig.Width, fig.Height = 20*vg.Inch, vg.Length(4*len(widths))*vg.Inch
	fig.ShareX, fig.ShareY = true, true
	fig.Legend = benchplot.LegendBelow

	// Assign styles over all widths up front so a family's color
	// follows its first appearance in the inputs.
	for _, f := range benchgroup.Families(g, "type", "name") {
		for _, name := range f.Names {
			fig.Styles.Register(f.Type, name)
		}
	}

	for r, gid := range widths {
		t := g.Table(gid)
		for c, col := range workloads {
			panel := fig.Panel(r, c)
			panel.Title = col
			panel.XLabel = "n"
			panel.YLabel = fmt.Sprintf("%v-bit ns/op", gid.Label())
			for _, s := range benchgroup.SeriesOf(t, "type", "name", "n", col) {
				panel.Add(s.Type, s.Name, s)
			}
		}
	}
	return fig
}
