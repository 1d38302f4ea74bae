// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtsv

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Files names a sequence of input files that share a schema.
//
// Each file becomes one group of the Grouping returned by LoadFiles,
// with a constant label column identifying it. By default the label
// is the path itself, except that duplicate paths are disambiguated by
// appending "#N". If AllowLabels is true, entries in Paths may be of
// the form label=path, and the label part is used verbatim.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowLabels indicates that Paths may carry explicit labels.
	// This is how callers attach meaning to a file (such as the
	// bit width its results were measured at) without deriving it
	// from the file name.
	AllowLabels bool
}

type input struct {
	path      string
	label     string
	isLabeled bool
}

func (f *Files) inputs() []input {
	var inputs []input
	pathCount := make(map[string]int)
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}
		inputs = append(inputs, input{path, label, isLabeled})
	}

	// Reading the same unlabeled file twice would produce groups
	// with indistinguishable labels.
	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || pathCount[inp.path] == 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
	return inputs
}

// Labels returns the label each path in f will be loaded under, in
// order.
func (f *Files) Labels() []string {
	var labels []string
	for _, inp := range f.inputs() {
		labels = append(labels, inp.label)
	}
	return labels
}

// LoadFiles loads every file in files with schema. The result has one
// group per file, in the order of files.Paths, and each group's table
// has an extra constant string column labelCol holding the file's
// label. Each group's GroupID is labeled with the file's label.
func LoadFiles(files Files, schema Schema, labelCol string) (table.Grouping, error) {
	var out table.GroupingBuilder
	for _, inp := range files.inputs() {
		t, err := Load(inp.path, schema)
		if err != nil {
			return nil, err
		}
		tb := table.NewBuilder(t).AddConst(labelCol, inp.label)
		out.Add(table.RootGroupID.Extend(inp.label), tb.Done())
	}
	return out.Done(), nil
}
