// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteCSV writes p to out as CSV. The header row is indexName
// followed by p's labels; absent cells are empty.
func (p *Pivot) WriteCSV(out io.Writer, indexName string) error {
	hdr := append([]string{indexName}, p.Labels...)
	tab := [][]string{hdr}
	for i, x := range p.Index {
		row := []string{strconv.Itoa(x)}
		for _, l := range p.Labels {
			v := p.Values[l][i]
			if math.IsNaN(v) {
				row = append(row, "")
			} else {
				row = append(row, strof(v))
			}
		}
		tab = append(tab, row)
	}
	csvw := csv.NewWriter(out)
	csvw.WriteAll(tab)
	return csvw.Error()
}

func strof(x float64) string {
	return fmt.Sprintf("%f", x)
}
