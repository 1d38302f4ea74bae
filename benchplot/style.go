// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Styles assigns line styles to implementation variants so that a
// family is identified by color and a variant within its family by
// dash pattern.
//
// Families are given the next color of Colors in the order they are
// first seen, and each family's variants the next pattern of Dashes,
// wrapping around when either runs out. Once assigned, a style never
// changes, so a variant looks the same in every panel of a figure.
type Styles struct {
	Colors []color.Color
	Dashes [][]vg.Length
	Width  vg.Length

	types map[string]*family
}

type family struct {
	color int
	names map[string]int
}

// NewStyles returns a Styles using gonum's default palette and dash
// patterns.
func NewStyles() *Styles {
	return &Styles{
		Colors: plotutil.DefaultColors,
		Dashes: plotutil.DefaultDashes,
		Width:  vg.Points(1.5),
	}
}

// Register assigns styles to typ and name if they have none yet.
func (s *Styles) Register(typ, name string) {
	if s.types == nil {
		s.types = make(map[string]*family)
	}
	f, ok := s.types[typ]
	if !ok {
		f = &family{color: len(s.types), names: make(map[string]int)}
		s.types[typ] = f
	}
	if _, ok := f.names[name]; !ok {
		f.names[name] = len(f.names)
	}
}

// Style returns the line style of variant name of family typ,
// registering it first if needed.
func (s *Styles) Style(typ, name string) draw.LineStyle {
	s.Register(typ, name)
	f := s.types[typ]
	sty := draw.LineStyle{Width: s.Width, Color: color.Black}
	if len(s.Colors) > 0 {
		sty.Color = s.Colors[f.color%len(s.Colors)]
	}
	if len(s.Dashes) > 0 {
		sty.Dashes = s.Dashes[f.names[name]%len(s.Dashes)]
	}
	return sty
}
