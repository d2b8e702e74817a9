// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/katalvlaran/walkfeat/olg"
	"github.com/katalvlaran/walkfeat/walks"
)

// Func is a named feature function: one matrix in, one vector out.
// Name takes part in cache keys, so it must identify the parameters too.
type Func interface {
	Name() string
	Compute(a matrix.Matrix) ([]float64, error)
}

type funcOf struct {
	name string
	fn   func(matrix.Matrix) ([]float64, error)
}

func (f funcOf) Name() string                               { return f.name }
func (f funcOf) Compute(a matrix.Matrix) ([]float64, error) { return f.fn(a) }

// FuncOf adapts a plain function to Func.
func FuncOf(name string, fn func(matrix.Matrix) ([]float64, error)) Func {
	return funcOf{name: name, fn: fn}
}

// ClosedWalks returns the closed-walk feature [trace(A²) … trace(A^k)].
// k is validated eagerly so a bad configuration fails before any matrix is read.
func ClosedWalks(k int) (Func, error) {
	if err := walks.ValidateWalkLength(k); err != nil {
		return nil, err
	}

	return FuncOf(fmt.Sprintf("closed_walks(k=%d)", k), func(a matrix.Matrix) ([]float64, error) {
		return walks.ClosedWalks(a, k)
	}), nil
}

// NonBacktrackingWalks returns closed-walk counts of the oriented line graph:
// [trace(T²) … trace(T^k)] where T = olg.Build(A). These count closed
// non-backtracking walks of the input graph. A graph without edges yields
// a zero vector of the same length.
func NonBacktrackingWalks(k int) (Func, error) {
	if err := walks.ValidateWalkLength(k); err != nil {
		return nil, err
	}

	return FuncOf(fmt.Sprintf("olg_closed_walks(k=%d)", k), func(a matrix.Matrix) ([]float64, error) {
		t, err := olg.Build(a)
		if err != nil {
			return nil, err
		}
		if t.Rows() == 0 {
			return make([]float64, k-1), nil
		}
		return walks.ClosedWalks(t, k)
	}), nil
}

// Names returns the names of fs in order.
func Names(fs []Func) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name()
	}

	return out
}
