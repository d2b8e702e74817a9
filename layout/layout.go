// SPDX-License-Identifier: MIT

// Package layout places the vertices of a graph with a force-directed
// (Fruchterman–Reingold) spring layout and renders the result as SVG.
//
// Spring accepts only *Graph values; anything else fails with ErrNotGraph and
// nothing is computed or rendered. Layouts are deterministic: the initial
// placement is a circle and no randomness is involved.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/walkfeat/matrix"
)

var (
	// ErrNotGraph is returned when a layout is requested for a non-graph value.
	ErrNotGraph = errors.New("layout: input is not a graph")

	// ErrBadOptions is returned for non-positive iteration counts or sizes.
	ErrBadOptions = errors.New("layout: bad options")
)

// Graph is an undirected simple graph on vertices 0..N-1.
type Graph struct {
	N     int
	Edges [][2]int // i < j, sorted row-major
}

// FromAdjacency builds the undirected graph of a square matrix: {i,j} is an
// edge when A[i][j] or A[j][i] is non-zero. Self-loops are dropped.
func FromAdjacency(a matrix.Matrix) (*Graph, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("layout.FromAdjacency: %w", err)
	}

	n := a.Rows()
	g := &Graph{N: n}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			aji, err := a.At(j, i)
			if err != nil {
				return nil, err
			}
			if aij != 0 || aji != 0 {
				g.Edges = append(g.Edges, [2]int{i, j})
			}
		}
	}

	return g, nil
}

// Point is a position in the unit square.
type Point struct{ X, Y float64 }

// Options tunes Spring. The zero value selects DefaultOptions.
type Options struct {
	Iterations int
}

// DefaultOptions mirrors common spring-layout defaults.
var DefaultOptions = Options{Iterations: 50}

// Spring computes a Fruchterman–Reingold layout of v, which must be a *Graph.
// Positions are normalised into [0,1]².
//
// Complexity: O(iterations · (N² + |E|)).
func Spring(v any, opts Options) ([]Point, error) {
	g, ok := v.(*Graph)
	if !ok || g == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotGraph, v)
	}
	if opts == (Options{}) {
		opts = DefaultOptions
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations=%d", ErrBadOptions, opts.Iterations)
	}

	n := g.N
	pos := make([]Point, n)
	if n == 0 {
		return pos, nil
	}
	for i := range pos {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	if n == 1 {
		pos[0] = Point{X: 0.5, Y: 0.5}
		return pos, nil
	}

	k := math.Sqrt(4.0 / float64(n)) // optimal distance in a 2×2 frame
	temp := 0.2
	cool := temp / float64(opts.Iterations+1)
	disp := make([]Point, n)

	for it := 0; it < opts.Iterations; it++ {
		for i := range disp {
			disp[i] = Point{}
		}
		// repulsion between every pair
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), 1e-9)
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}
		// attraction along edges
		for _, e := range g.Edges {
			i, j := e[0], e[1]
			dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
			d := math.Max(math.Hypot(dx, dy), 1e-9)
			f := d * d / k
			disp[i].X -= dx / d * f
			disp[i].Y -= dy / d * f
			disp[j].X += dx / d * f
			disp[j].Y += dy / d * f
		}
		// move, capped by temperature
		for i := range pos {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d > 0 {
				step := math.Min(d, temp)
				pos[i].X += disp[i].X / d * step
				pos[i].Y += disp[i].Y / d * step
			}
		}
		temp -= cool
	}

	return normalise(pos), nil
}

// normalise rescales pos into [0,1]² keeping the aspect ratio.
func normalise(pos []Point) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	for i := range pos {
		pos[i] = Point{X: (pos[i].X - minX) / span, Y: (pos[i].Y - minY) / span}
	}

	return pos
}
