// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows rendered figures in a desktop window.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window titled title displaying img, scaled to fit, and
// blocks until the user closes it.
//
// Show must be called from the main goroutine, and at most once per
// process.
func Show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)
	w.SetContent(newImage(img))
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
}

func newImage(img image.Image) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	// Let the window shrink below the image's natural size.
	c.SetMinSize(fyne.NewSize(200, 100))
	return c
}
