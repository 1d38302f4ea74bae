// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchxform

import (
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDivisor(t *testing.T) {
	for _, test := range []struct {
		col  string
		want float64
	}{
		{"r0", 1},
		{"r1", 3},
		{"r4", 9},
	} {
		got, err := Divisor(test.col)
		if err != nil {
			t.Errorf("Divisor(%q): %v", test.col, err)
		} else if got != test.want {
			t.Errorf("Divisor(%q) = %v, want %v", test.col, got, test.want)
		}
	}
	for _, col := range []string{"n", "r", "rx", "r-1", "Linear"} {
		if _, err := Divisor(col); err == nil {
			t.Errorf("Divisor(%q) succeeded, want error", col)
		}
	}
}

func TestNormalize(t *testing.T) {
	var b table.Builder
	b.Add("r0", []float64{20, 8, math.NaN()})
	b.Add("r4", []float64{90, 36, 18})
	g, err := Normalize(b.Done(), "r0", "r4")
	if err != nil {
		t.Fatal(err)
	}
	tab := g.Table(table.RootGroupID)
	opt := cmpopts.EquateNaNs()
	if diff := cmp.Diff([]float64{20, 8, math.NaN()}, tab.MustColumn("r0"), opt); diff != "" {
		t.Errorf("r0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{10, 4, 2}, tab.MustColumn("r4"), opt); diff != "" {
		t.Errorf("r4 mismatch (-want +got):\n%s", diff)
	}

	// Normalizing again divides again.
	g, err = Normalize(g, "r4")
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Table(table.RootGroupID).MustColumn("r4").([]float64)[0]; got != 10.0/9 {
		t.Errorf("twice-normalized r4[0] = %v, want %v", got, 10.0/9)
	}

	if _, err := Normalize(g, "n"); err == nil {
		t.Errorf("Normalize(n) succeeded, want error")
	}
}

func TestTypeOf(t *testing.T) {
	for _, test := range []struct{ name, want string }{
		{"QuickHeap<u32>", "QuickHeap"},
		{"DaryHeap<Reverse<T>, 8>", "DaryHeap"},
		{"BucketHeap", "BucketHeap"},
		{"", ""},
	} {
		if got := TypeOf(test.name); got != test.want {
			t.Errorf("TypeOf(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestAddType(t *testing.T) {
	var b table.Builder
	b.Add("name", []string{"QuickHeap<16, 1>", "BinaryHeap<Reverse<T>>", "Radix"})
	g := AddType(b.Done())
	got := g.Table(table.RootGroupID).MustColumn("type")
	if diff := cmp.Diff([]string{"QuickHeap", "BinaryHeap", "Radix"}, got); diff != "" {
		t.Errorf("type mismatch (-want +got):\n%s", diff)
	}
}
