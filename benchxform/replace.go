// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchxform

import (
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Replacement substitutes every occurrence of Old with New.
type Replacement struct {
	Old, New string
}

// A Replacer is an ordered sequence of literal substitutions.
//
// Unlike strings.Replacer, each substitution sees the output of the
// ones before it, so a later pair may match text that an earlier pair
// introduced or exposed. The order is significant.
type Replacer []Replacement

// Apply runs each substitution of r over s in order.
func (r Replacer) Apply(s string) string {
	for _, p := range r {
		s = strings.ReplaceAll(s, p.Old, p.New)
	}
	return s
}

// Reverse returns the substitutions of r in the opposite order.
func (r Replacer) Reverse() Replacer {
	out := make(Replacer, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Rename returns g with every value of the string column col rewritten
// by r.
func (r Replacer) Rename(g table.Grouping, col string) table.Grouping {
	return table.MapCols(g, func(in, out []string) {
		for i, s := range in {
			out[i] = r.Apply(s)
		}
	}, col)(col)
}

// OpsNames turns the Rust type names printed by the benchmark harness
// into display names: crate and module paths are dropped, the
// orx_priority_queue d-ary heap is told apart from the dary_heap one,
// and the element type becomes the placeholder T.
//
// "dary_heap::DaryHeap" must be stripped before any remaining
// "::DaryHeap" is renamed, and key wrappers such as
// "Reverse<u32>, ()>" must be collapsed before "u32" is.
var OpsNames = Replacer{
	{"alloc::collections::binary_heap::", ""},
	{"alloc::collections::btree::set::", ""},
	{"core::cmp::", ""},
	{"quickheap::", ""},
	{"dary_heap::DaryHeap", "DaryHeap"},
	{"::DaryHeap", "::OrxDaryHeap"},
	{"orx_priority_queue::dary::heap::", ""},
	{"orx_priority_queue::", ""},
	{"radix_heap::", ""},
	{"indexset::BTreeSet", "IndexSet"},
	{"<(), ", "<"},
	{"Reverse<u32>, ()>", "T>"},
	{"Reverse<u64>, ()>", "T>"},
	{"u32", "T"},
	{"u64", "T"},
}
