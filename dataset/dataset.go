// SPDX-License-Identifier: MIT

package dataset

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Extensions tried, in order, when resolving a collection name inside a directory.
var Extensions = []string{".yaml", ".yml", ".json"}

// Collection is a named, shape-homogeneous list of adjacency matrices.
type Collection struct {
	Name     string
	Matrices []*matrix.Dense
}

// Len returns the number of matrices in the collection.
func (c *Collection) Len() int { return len(c.Matrices) }

// Shape returns the common shape. Only meaningful after Validate succeeded.
func (c *Collection) Shape() (rows, cols int) {
	if len(c.Matrices) == 0 {
		return 0, 0
	}
	return c.Matrices[0].Shape()
}

// Validate checks that the collection is non-empty and that every matrix has
// the shape of the first one.
func (c *Collection) Validate() error {
	if len(c.Matrices) == 0 {
		return errors.Wrapf(ErrEmpty, "collection %q", c.Name)
	}
	r0, c0 := c.Matrices[0].Shape()
	for i, m := range c.Matrices {
		if m == nil {
			return errors.Wrapf(ErrInconsistent, "collection %q: entry %d is nil", c.Name, i)
		}
		if r, cc := m.Shape(); r != r0 || cc != c0 {
			return errors.Wrapf(ErrInconsistent, "collection %q: entry %d is %dx%d, want %dx%d",
				c.Name, i, r, cc, r0, c0)
		}
	}

	return nil
}

// Event describes a loaded collection. It is passed to the Observer, if any.
type Event struct {
	Collection string
	Path       string
	Count      int
	Rows, Cols int
}

// Observer receives loader events. A nil Observer is silent.
type Observer func(Event)

// Loader reads collections from files. The zero value is usable.
type Loader struct {
	Observer Observer
}

// Load reads the collection called name from the file at path.
func (l *Loader) Load(path, name string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	coll, err := Parse(data, name)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if l.Observer != nil {
		r, c := coll.Shape()
		l.Observer(Event{Collection: name, Path: path, Count: coll.Len(), Rows: r, Cols: c})
	}

	return coll, nil
}

// LoadAll resolves each name to <dir>/<name><ext> and loads it, preserving
// the order of names. The first failing collection aborts the batch.
func (l *Loader) LoadAll(dir string, names []string) ([]*Collection, error) {
	out := make([]*Collection, 0, len(names))
	for _, name := range names {
		path, err := Resolve(dir, name)
		if err != nil {
			return nil, err
		}
		coll, err := l.Load(path, name)
		if err != nil {
			return nil, err
		}
		out = append(out, coll)
	}

	return out, nil
}

// Resolve returns the first existing <dir>/<name><ext> for ext in Extensions.
func Resolve(dir, name string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Wrapf(ErrNotFound, "%s in %s", name, dir)
}

// Parse decodes a collection document and extracts the named, validated collection.
func Parse(data []byte, name string) (*Collection, error) {
	var doc map[string][][][]float64
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode collection document")
	}
	raw, ok := doc[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}

	coll := &Collection{Name: name, Matrices: make([]*matrix.Dense, 0, len(raw))}
	for i, rows := range raw {
		m, err := matrix.NewDenseFrom(rows)
		if err != nil {
			return nil, errors.Wrapf(ErrInconsistent, "collection %q: entry %d: %v", name, i, err)
		}
		coll.Matrices = append(coll.Matrices, m)
	}
	if err := coll.Validate(); err != nil {
		return nil, err
	}

	return coll, nil
}

// Encode renders collections as a document that Parse reads back.
func Encode(colls ...*Collection) ([]byte, error) {
	doc := make(map[string][][][]float64, len(colls))
	for _, c := range colls {
		if c == nil {
			return nil, errors.New("dataset: nil collection")
		}
		entries := make([][][]float64, len(c.Matrices))
		for i, m := range c.Matrices {
			entries[i] = m.ToRows()
		}
		doc[c.Name] = entries
	}

	return yaml.Marshal(doc)
}
