// SPDX-License-Identifier: MIT
package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/walkfeat/dataset"
	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/stretchr/testify/require"
)

const twoCollections = `
normal:
  - [[0, 1], [1, 0]]
  - [[0, 0], [1, 0]]
ad:
  - [[0, 1, 0], [0, 0, 1], [1, 0, 0]]
mixed:
  - [[0, 1], [1, 0]]
  - [[0, 1, 0], [0, 0, 1], [1, 0, 0]]
ragged:
  - [[0, 1], [1]]
empty: []
`

func TestParse(t *testing.T) {
	coll, err := dataset.Parse([]byte(twoCollections), "normal")
	require.NoError(t, err)
	require.Equal(t, "normal", coll.Name)
	require.Equal(t, 2, coll.Len())
	r, c := coll.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, [][]float64{{0, 0}, {1, 0}}, coll.Matrices[1].ToRows())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{"mixed", dataset.ErrInconsistent},
		{"ragged", dataset.ErrInconsistent},
		{"empty", dataset.ErrEmpty},
		{"missing", dataset.ErrNotFound},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(twoCollections), tc.name)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := dataset.Parse([]byte("normal: [[[0, x]]]"), "normal")
	require.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	coll, err := dataset.Parse([]byte(`{"g": [[[0, 1], [1, 0]]]}`), "g")
	require.NoError(t, err)
	require.Equal(t, 1, coll.Len())
}

func TestValidateNil(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	coll := &dataset.Collection{Name: "x", Matrices: []*matrix.Dense{m, nil}}
	require.ErrorIs(t, coll.Validate(), dataset.ErrInconsistent)
}

func TestLoadAllKeepsOrderAndReports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "normal.yaml"), []byte(twoCollections), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ad.json"), []byte(`{"ad": [[[1]], [[0]], [[1]]]}`), 0o644))

	var events []dataset.Event
	l := dataset.Loader{Observer: func(e dataset.Event) { events = append(events, e) }}

	colls, err := l.LoadAll(dir, []string{"ad", "normal"})
	require.NoError(t, err)
	require.Len(t, colls, 2)
	require.Equal(t, "ad", colls[0].Name)
	require.Equal(t, "normal", colls[1].Name)

	require.Len(t, events, 2)
	require.Equal(t, dataset.Event{Collection: "ad", Path: filepath.Join(dir, "ad.json"), Count: 3, Rows: 1, Cols: 1}, events[0])

	_, err = l.LoadAll(dir, []string{"nope"})
	require.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := dataset.Parse([]byte(twoCollections), "ad")
	require.NoError(t, err)

	data, err := dataset.Encode(orig)
	require.NoError(t, err)

	back, err := dataset.Parse(data, "ad")
	require.NoError(t, err)
	require.Equal(t, orig.Matrices[0].ToRows(), back.Matrices[0].ToRows())
}
