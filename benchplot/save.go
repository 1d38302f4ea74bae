// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DPI is the resolution of raster output.
const DPI = 96

// canvasFor returns an f-sized canvas for the given image format:
// "svg", "png", or "pdf".
func (f *Figure) canvasFor(format string) (vg.CanvasWriterTo, error) {
	switch format {
	case "svg":
		return vgsvg.New(f.Width, f.Height), nil
	case "pdf":
		return vgpdf.New(f.Width, f.Height), nil
	case "png":
		return vgimg.PngCanvas{Canvas: f.newImage(DPI)}, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", format)
}

func (f *Figure) newImage(dpi int) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
}

// Encode renders f and writes it to w in the given image format.
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := f.canvasFor(format)
	if err != nil {
		return err
	}
	if err := f.Render(draw.New(c)); err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

// Save renders f to the file path. The image format is chosen by the
// file's extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := f.canvasFor(format)
	if err != nil {
		return err
	}
	if err := f.Render(draw.New(c)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(file)
	return err
}

// Image renders f to an in-memory raster image at the given
// resolution.
func (f *Figure) Image(dpi int) (image.Image, error) {
	c := f.newImage(dpi)
	if err := f.Render(draw.New(c)); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
