// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// maxLabels is the most labeled ticks Log2Ticks puts on an axis.
const maxLabels = 8

// Log2Ticks is a plot.Ticker for log-scaled axes that places a tick at
// every power of two in range. When there are too many, only every
// second (or fourth, ...) power is labeled, with unlabeled minor
// ticks in between.
type Log2Ticks struct{}

var _ plot.Ticker = Log2Ticks{}

// Ticks returns the powers of two in [min, max].
// It returns no ticks for a range that is not positive.
func (Log2Ticks) Ticks(min, max float64) []plot.Tick {
	if !(min > 0) || !(max >= min) {
		return nil
	}
	lo := int(math.Ceil(math.Log2(min)))
	hi := int(math.Floor(math.Log2(max)))
	if lo > hi {
		// No power of two in range; label the ends instead.
		return []plot.Tick{
			{Value: min, Label: fmt.Sprintf("%.3g", min)},
			{Value: max, Label: fmt.Sprintf("%.3g", max)},
		}
	}
	step := 1
	for (hi-lo)/step >= maxLabels {
		step *= 2
	}
	var ticks []plot.Tick
	for e := lo; e <= hi; e++ {
		t := plot.Tick{Value: math.Ldexp(1, e)}
		if e%step == 0 {
			t.Label = pow2(e)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

func pow2(e int) string {
	return fmt.Sprintf("2^%d", e)
}
