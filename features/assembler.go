// SPDX-License-Identifier: MIT

package features

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/walkfeat/dataset"
	"golang.org/x/sync/errgroup"
)

// LabelColumn is the name of the trailing label column.
const LabelColumn = "label"

// Labels maps collection names to their numeric class label.
type Labels map[string]float64

// Cache persists assembled tables by key.
type Cache interface {
	Get(key string) (Table, bool, error)
	Put(key string, t Table) error
}

// EventKind tags an Event.
type EventKind int

const (
	CacheHit EventKind = iota + 1
	CacheMiss
	CacheStored
	CollectionDone
)

func (k EventKind) String() string {
	switch k {
	case CacheHit:
		return "cache-hit"
	case CacheMiss:
		return "cache-miss"
	case CacheStored:
		return "cache-stored"
	case CollectionDone:
		return "collection-done"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is emitted to the Observer during Assemble.
type Event struct {
	Kind       EventKind
	Key        string
	Collection string // set for CollectionDone
	Rows       int    // rows produced so far (CollectionDone) or in the table (cache events)
}

// Observer receives assembler events. A nil Observer is silent.
type Observer func(Event)

// Options configures an Assembler.
type Options struct {
	// Workers bounds the number of matrices processed concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
	// Cache, when set, is consulted before and written after assembly.
	Cache Cache
	// Observer, when set, receives progress events.
	Observer Observer
}

// Assembler turns collections into feature tables.
type Assembler struct {
	funcs []Func
	opts  Options
}

// NewAssembler validates the ordered feature list and returns an Assembler.
func NewAssembler(funcs []Func, opts Options) (*Assembler, error) {
	if len(funcs) == 0 {
		return nil, ErrNoFuncs
	}
	seen := make(map[string]struct{}, len(funcs))
	for _, f := range funcs {
		if _, dup := seen[f.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFunc, f.Name())
		}
		seen[f.Name()] = struct{}{}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &Assembler{funcs: funcs, opts: opts}, nil
}

// Key returns the cache key for the given collection names under this
// Assembler's feature list.
func (a *Assembler) Key(collections []string) string {
	return Key(collections, Names(a.funcs))
}

// Assemble computes (or loads) the table for colls. Each collection must
// have a label. On a cache hit no matrix is touched.
func (a *Assembler) Assemble(ctx context.Context, colls []*dataset.Collection, labels Labels) (Table, error) {
	names := make([]string, len(colls))
	total := 0
	for i, c := range colls {
		if _, ok := labels[c.Name]; !ok {
			return Table{}, fmt.Errorf("%w: %q", ErrMissingLabel, c.Name)
		}
		names[i] = c.Name
		total += c.Len()
	}
	key := a.Key(names)

	if a.opts.Cache != nil {
		t, ok, err := a.opts.Cache.Get(key)
		if err != nil {
			return Table{}, fmt.Errorf("features: cache get %s: %w", key, err)
		}
		if ok {
			a.emit(Event{Kind: CacheHit, Key: key, Rows: len(t.Rows)})
			return t, nil
		}
		a.emit(Event{Kind: CacheMiss, Key: key})
	}

	rows := make([][]float64, total)
	widths := make([]int, len(a.funcs)) // filled by the worker that computes rows[0]
	offset := 0
	for _, c := range colls {
		var w []int
		if offset == 0 {
			w = widths
		}
		if err := a.assembleCollection(ctx, c, labels[c.Name], rows[offset:offset+c.Len()], w); err != nil {
			return Table{}, err
		}
		offset += c.Len()
		a.emit(Event{Kind: CollectionDone, Key: key, Collection: c.Name, Rows: offset})
	}

	cols, err := a.columns(rows, widths)
	if err != nil {
		return Table{}, err
	}
	t := Table{Key: key, Columns: cols, Rows: rows}

	if a.opts.Cache != nil {
		if err := a.opts.Cache.Put(key, t); err != nil {
			return Table{}, fmt.Errorf("features: cache put %s: %w", key, err)
		}
		a.emit(Event{Kind: CacheStored, Key: key, Rows: len(rows)})
	}

	return t, nil
}

// assembleCollection fills out[i] with the row of c.Matrices[i].
// Each worker owns its slot, so no locking is needed. When widths is non-nil
// the worker for out[0] records the length of every feature vector in it.
func (a *Assembler) assembleCollection(ctx context.Context, c *dataset.Collection, label float64, out [][]float64, widths []int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i, m := range c.Matrices {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var row []float64
			for fi, f := range a.funcs {
				v, err := f.Compute(m)
				if err != nil {
					return fmt.Errorf("features: %s[%d]: %s: %w", c.Name, i, f.Name(), err)
				}
				if i == 0 && widths != nil {
					widths[fi] = len(v)
				}
				row = append(row, v...)
			}
			out[i] = append(row, label)
			return nil
		})
	}

	return g.Wait()
}

// columns names every column after the feature vector widths of the first
// row and checks that all rows share the same width.
func (a *Assembler) columns(rows [][]float64, widths []int) ([]string, error) {
	var cols []string
	for fi, f := range a.funcs {
		for j := 0; j < widths[fi]; j++ {
			cols = append(cols, fmt.Sprintf("%s[%d]", f.Name(), j))
		}
	}
	cols = append(cols, LabelColumn)

	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("%w: row %d has %d, want %d", ErrRaggedRow, i, len(r), len(cols))
		}
	}

	return cols, nil
}

func (a *Assembler) emit(e Event) {
	if a.opts.Observer != nil {
		a.opts.Observer(e)
	}
}
