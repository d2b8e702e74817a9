// SPDX-License-Identifier: MIT

package layout

import (
	"bufio"
	"fmt"
	"io"
)

const (
	svgMargin = 20.0
	svgRadius = 4.0
)

// WriteSVG renders g with the positions from Spring into a size×size SVG.
func WriteSVG(w io.Writer, g *Graph, pos []Point, size float64) error {
	if g == nil {
		return ErrNotGraph
	}
	if len(pos) != g.N || size <= 2*svgMargin {
		return fmt.Errorf("%w: %d positions for %d vertices, size %g", ErrBadOptions, len(pos), g.N, size)
	}

	inner := size - 2*svgMargin
	at := func(p Point) (float64, float64) {
		return svgMargin + p.X*inner, svgMargin + p.Y*inner
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n", size, size, size, size)
	fmt.Fprintln(bw, `<g stroke="#888" stroke-width="1">`)
	for _, e := range g.Edges {
		x1, y1 := at(pos[e[0]])
		x2, y2 := at(pos[e[1]])
		fmt.Fprintf(bw, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `<g fill="#1f77b4">`)
	for i, p := range pos {
		x, y := at(p)
		fmt.Fprintf(bw, `<circle id="v%d" cx="%.2f" cy="%.2f" r="%g"/>`+"\n", i, x, y, svgRadius)
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}
