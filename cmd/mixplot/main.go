// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mixplot plots heap benchmark results for mixed insert/delete
// workloads.
//
// Usage:
//
//	mixplot [-data data.tsv] [-o file] [-csv]
//
// The input is a headerless tab-separated file with the columns
//
//	name  incr  n  r0  r4
//
// where name is the implementation variant, incr reports whether keys
// were increasing, n is the heap size, and r0 and r4 are the timings
// of the workload (ins (del ins)^i)^m (del (ins del)^i)^m for i = 0
// and 4. Timings are divided by the 1+2i operations each round
// performs, and each implementation family is drawn with the fastest
// of its variants.
//
// The figure has one row of panels per incr value and one column per
// workload. By default it is shown in a window; -o writes it to an
// SVG, PNG, or PDF file instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/quickheap/evals/benchgroup"
	"github.com/quickheap/evals/benchplot"
	"github.com/quickheap/evals/benchtsv"
	"github.com/quickheap/evals/benchxform"
	"github.com/quickheap/evals/internal/viewer"
	"gonum.org/v1/plot/vg"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: mixplot [flags]

mixplot plots mixed insert/delete heap benchmark results. By default
the figure is shown in a window.

`)
	flag.PrintDefaults()
}

var (
	flagData = flag.String("data", "data.tsv", "read results from `file`")
	flagOut  = flag.String("o", "", "write the figure to `file` (.svg, .png, or .pdf) instead of showing it")
	flagCSV  = flag.Bool("csv", false, "print the plotted minima to stdout in CSV form")
)

// rounds are the repetition counts i of the measured workloads, in
// the order of the r<i> columns.
var rounds = []int{0, 4}

// incrs are the figure rows.
var incrs = []bool{false, true}

func main() {
	log.SetPrefix("mixplot: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	t, err := benchtsv.Load(*flagData, benchtsv.MixSchema)
	if err != nil {
		log.Fatal(err)
	}
	ps, err := pivots(t)
	if err != nil {
		log.Fatal(err)
	}
	if *flagCSV {
		if err := writeCSV(os.Stdout, ps); err != nil {
			log.Fatal(err)
		}
	}

	fig := mixFigure(ps)

	if *flagOut != "" {
		if err := fig.Save(*flagOut); err != nil {
			log.Fatal(err)
		}
		return
	}
	img, err := fig.Image(benchplot.DPI)
	if err != nil {
		log.Fatal(err)
	}
	viewer.Show("mixplot: "+*flagData, img)
}

// prepare normalizes the timings of t and adds the type column.
func prepare(t *table.Table) (table.Grouping, error) {
	g, err := benchxform.Normalize(t, roundCols()...)
	if err != nil {
		return nil, err
	}
	return benchxform.AddType(g), nil
}

func roundCols() []string {
	cols := make([]string, len(rounds))
	for i, r := range rounds {
		cols[i] = fmt.Sprintf("r%d", r)
	}
	return cols
}

// pivots returns the per-type minima of every panel, indexed by row
// and column.
func pivots(t *table.Table) ([][]*benchgroup.Pivot, error) {
	g, err := prepare(t)
	if err != nil {
		return nil, err
	}
	out := make([][]*benchgroup.Pivot, len(incrs))
	for r, incr := range incrs {
		sub := benchgroup.FilterFlag(g, "incr", incr)
		for _, col := range roundCols() {
			out[r] = append(out[r], benchgroup.MinPivot(sub, "n", "type", col))
		}
	}
	return out, nil
}

func mixFigure(ps [][]*benchgroup.Pivot) *benchplot.Figure {
	fig := benchplot.NewFigure(len(incrs), len(rounds))
	fig.Width, fig.Height = 20*vg.Inch, 5*vg.Inch
	fig.ShareY = true
	fig.Legend = benchplot.LegendFirstColumn
	for r, incr := range incrs {
		for c, i := range rounds {
			panel := fig.Panel(r, c)
			panel.Title = workload(i)
			panel.XLabel = "n"
			panel.YLabel = fmt.Sprintf("incr=%v ns/op", incr)
			for _, s := range ps[r][c].Series() {
				panel.Add(s.Type, s.Name, s)
			}
		}
	}
	return fig
}

// workload returns the operation sequence measured with repetition
// count i.
func workload(i int) string {
	return fmt.Sprintf("(ins (del ins)^%d)^m (del (ins del)^%d)^m", i, i)
}

func writeCSV(w io.Writer, ps [][]*benchgroup.Pivot) error {
	cols := roundCols()
	for r, incr := range incrs {
		for c, p := range ps[r] {
			fmt.Fprintf(w, "incr=%v %s\n", incr, cols[c])
			if err := p.WriteCSV(w, "n"); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
