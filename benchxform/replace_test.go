// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchxform

import (
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

func TestOpsNames(t *testing.T) {
	for _, test := range []struct{ in, want string }{
		{"dary_heap::DaryHeap<u32>", "DaryHeap<T>"},
		{"dary_heap::DaryHeap<core::cmp::Reverse<u64>, 8>", "DaryHeap<Reverse<T>, 8>"},
		{"orx_priority_queue::dary::heap::DaryHeap<(), u32, 4>", "OrxDaryHeap<T, 4>"},
		{"alloc::collections::binary_heap::BinaryHeap<core::cmp::Reverse<u32>>", "BinaryHeap<Reverse<T>>"},
		{"radix_heap::RadixHeapMap<core::cmp::Reverse<u32>, ()>", "RadixHeapMap<T>"},
		{"quickheap::QuickHeap<16, 1>", "QuickHeap<16, 1>"},
		{"indexset::BTreeSet<u64>", "IndexSet<T>"},
	} {
		if got := OpsNames.Apply(test.in); got != test.want {
			t.Errorf("Apply(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestOpsNamesOrder(t *testing.T) {
	const in = "dary_heap::DaryHeap<u32>"
	fwd := OpsNames.Apply(in)
	rev := OpsNames.Reverse().Apply(in)
	if fwd != "DaryHeap<T>" {
		t.Fatalf("Apply(%q) = %q, want %q", in, fwd, "DaryHeap<T>")
	}
	if rev == fwd {
		t.Fatalf("reversed Apply(%q) = %q, want a different result", in, rev)
	}
	if want := "dary_heap::OrxDaryHeap<T>"; rev != want {
		t.Errorf("reversed Apply(%q) = %q, want %q", in, rev, want)
	}
}

func TestReverse(t *testing.T) {
	r := Replacer{{"a", "b"}, {"b", "c"}}
	if got := r.Apply("a"); got != "c" {
		t.Errorf("Apply(a) = %q, want c", got)
	}
	if got := r.Reverse().Apply("a"); got != "b" {
		t.Errorf("reversed Apply(a) = %q, want b", got)
	}
	if diff := cmp.Diff(Replacer{{"a", "b"}, {"b", "c"}}, r); diff != "" {
		t.Errorf("Reverse modified its receiver (-want +got):\n%s", diff)
	}
}

func TestRename(t *testing.T) {
	var b table.Builder
	b.Add("name", []string{"dary_heap::DaryHeap<u32>", "quickheap::QuickHeap<8, 3>"})
	b.Add("n", []int{1024, 2048})
	g := AddType(OpsNames.Rename(b.Done(), "name"))
	tab := g.Table(table.RootGroupID)
	if diff := cmp.Diff([]string{"DaryHeap<T>", "QuickHeap<8, 3>"}, tab.MustColumn("name")); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"DaryHeap", "QuickHeap"}, tab.MustColumn("type")); diff != "" {
		t.Errorf("type mismatch (-want +got):\n%s", diff)
	}
}
