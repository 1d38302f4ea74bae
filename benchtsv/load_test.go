// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtsv

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

// tableT is a decoded table with its shape pulled out for comparison.
type tableT struct {
	len  int
	cols []string
	t    *table.Table
}

func decode(t *testing.T, data string, schema Schema) *tableT {
	t.Helper()
	tab, err := Decode(strings.NewReader(data), "test", schema)
	if err != nil {
		t.Fatal("decoding failed: ", err)
	}
	return &tableT{tab.Len(), tab.Columns(), tab}
}

func TestDecodeColumns(t *testing.T) {
	for _, rows := range []int{0, 1, 3} {
		var data strings.Builder
		for i := 0; i < rows; i++ {
			data.WriteString("QuickHeap<u32>\tTrue\t1024\t5.5\t9.25\n")
		}
		got := decode(t, data.String(), MixSchema)
		if got.len != rows {
			t.Errorf("%d rows: got Len %d", rows, got.len)
		}
		if diff := cmp.Diff(MixSchema.Names(), got.cols); diff != "" {
			t.Errorf("%d rows: columns mismatch (-want +got):\n%s", rows, diff)
		}
	}
}

func TestDecodeValues(t *testing.T) {
	data := "A<u32>\tTrue\t10\t20\t90\r\n\nB\tfalse\t16\t\t1.5\n"
	got := decode(t, data, MixSchema)

	if diff := cmp.Diff([]string{"A<u32>", "B"}, got.t.MustColumn("name")); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, got.t.MustColumn("incr")); diff != "" {
		t.Errorf("incr mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 16}, got.t.MustColumn("n")); diff != "" {
		t.Errorf("n mismatch (-want +got):\n%s", diff)
	}
	r0 := got.t.MustColumn("r0").([]float64)
	if r0[0] != 20 || !math.IsNaN(r0[1]) {
		t.Errorf("r0: got %v, want [20 NaN]", r0)
	}
	if diff := cmp.Diff([]float64{90, 1.5}, got.t.MustColumn("r4")); diff != "" {
		t.Errorf("r4 mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeExtraFields(t *testing.T) {
	// The harness ends some lines with a trailing separator.
	got := decode(t, "X\tu64\t1024\t1\t2\t3\t4\t\n", OpsSchema)
	if got.len != 1 || len(got.cols) != len(OpsSchema) {
		t.Fatalf("got %d rows, %d columns; want 1, %d", got.len, len(got.cols), len(OpsSchema))
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
		line int
		msg  string
	}{
		{"short", "A\tTrue\t10\t20\t90\nB\tTrue\t10\t20\n", 2, "expected 5 fields, got 4"},
		{"int", "A\tTrue\tten\t20\t90\n", 1, `column n: invalid int "ten"`},
		{"float", "\n\nA\tTrue\t10\tx\t90\n", 3, `column r0: invalid float "x"`},
		{"bool", "A\tmaybe\t10\t20\t90\n", 1, `column incr: invalid bool "maybe"`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(test.data), "data.tsv", MixSchema)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("got error %v, want *SyntaxError", err)
			}
			if se.FileName != "data.tsv" || se.Line != test.line || se.Msg != test.msg {
				t.Errorf("got %s, want data.tsv:%d: %s", se, test.line, test.msg)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "data.tsv"), MixSchema)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}
	p32 := write("a.tsv", "H<u32>\tu32\t1024\t1\t2\t3\t4\nH<u32>\tu32\t2048\t1\t2\t3\t4\n")
	p64 := write("b.tsv", "H<u64>\tu64\t1024\t5\t6\t7\t8\n")

	files := Files{Paths: []string{"32=" + p32, "64=" + p64}, AllowLabels: true}
	g, err := LoadFiles(files, OpsSchema, "width")
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	var lens []int
	for _, gid := range g.Tables() {
		tab := g.Table(gid)
		w, ok := tab.Const("width")
		if !ok {
			t.Fatalf("group %s: width is not a constant column", gid)
		}
		if gid.Label() != w {
			t.Errorf("group %s: label %v, width %v", gid, gid.Label(), w)
		}
		labels = append(labels, w.(string))
		lens = append(lens, tab.Len())
	}
	if diff := cmp.Diff([]string{"32", "64"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1}, lens); diff != "" {
		t.Errorf("lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestFilesLabels(t *testing.T) {
	for _, test := range []struct {
		paths       []string
		allowLabels bool
		want        []string
	}{
		{[]string{"a", "b"}, false, []string{"a", "b"}},
		{[]string{"a", "a", "b"}, false, []string{"a#0", "a#1", "b"}},
		{[]string{"x=a", "y=a"}, true, []string{"x", "y"}},
		{[]string{"x=a"}, false, []string{"x=a"}},
	} {
		f := Files{Paths: test.paths, AllowLabels: test.allowLabels}
		if diff := cmp.Diff(test.want, f.Labels()); diff != "" {
			t.Errorf("%v: labels mismatch (-want +got):\n%s", test.paths, diff)
		}
	}
}
