// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/walkfeat/config"
	"github.com/katalvlaran/walkfeat/dataset"
	"github.com/katalvlaran/walkfeat/walks"
	"github.com/stretchr/testify/require"
)

const collections = `
cycle:
  - [[0, 1, 0], [0, 0, 1], [1, 0, 0]]
pair:
  - [[0, 1, 0], [1, 0, 0], [0, 0, 0]]
`

// fixture writes one collection document per name into a temp dir and
// returns the dir.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"cycle", "pair"} {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(collections), 0o644))
	}
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "walkfeat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), "nope", nil, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestWalks_MissingK(t *testing.T) {
	dir := fixture(t)
	var out bytes.Buffer
	err := run(context.Background(), "walks",
		[]string{"-in", filepath.Join(dir, "cycle.yaml"), "-name", "cycle"}, &out)
	require.ErrorIs(t, err, walks.ErrConfiguration)
	require.Empty(t, out.String())
}

func TestWalks_Cycle(t *testing.T) {
	dir := fixture(t)
	var out bytes.Buffer
	err := run(context.Background(), "walks",
		[]string{"-in", filepath.Join(dir, "cycle.yaml"), "-name", "cycle", "-k", "6"}, &out)
	require.NoError(t, err)
	require.Equal(t, "cycle[0] [0 3 0 0 3]\n", out.String())
}

func TestWalks_UnknownCollection(t *testing.T) {
	dir := fixture(t)
	err := run(context.Background(), "walks",
		[]string{"-in", filepath.Join(dir, "cycle.yaml"), "-name", "nope", "-k", "3"}, &bytes.Buffer{})
	require.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestOLG_Pair(t *testing.T) {
	dir := fixture(t)
	var out bytes.Buffer
	err := run(context.Background(), "olg",
		[]string{"-in", filepath.Join(dir, "pair.yaml"), "-name", "pair"}, &out)
	require.NoError(t, err)
	// (0,1) and (1,0) are reverses of each other, so T is all zeros.
	require.Equal(t, "edges [(0,1) (1,0)]\n[0, 0]\n[0, 0]\n", out.String())
}

func TestOLG_IndexOutOfRange(t *testing.T) {
	dir := fixture(t)
	err := run(context.Background(), "olg",
		[]string{"-in", filepath.Join(dir, "pair.yaml"), "-name", "pair", "-index", "3"}, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestDraw_WritesSVG(t *testing.T) {
	dir := fixture(t)
	svg := filepath.Join(dir, "cycle.svg")
	err := run(context.Background(), "draw",
		[]string{"-in", filepath.Join(dir, "cycle.yaml"), "-name", "cycle", "-out", svg}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "<svg"))
	require.Equal(t, 3, strings.Count(string(data), "<line"))
}

func TestFeatures_Table(t *testing.T) {
	dir := fixture(t)
	cfg := writeConfig(t, dir, `
collections: [cycle, pair]
labels: {cycle: 1, pair: 2}
max_walk_length: 3
data_dir: `+dir+`
`)
	var out bytes.Buffer
	err := run(context.Background(), "features", []string{"-config", cfg}, &out)
	require.NoError(t, err)
	require.Equal(t,
		"closed_walks(k=3)[0],closed_walks(k=3)[1],label\n"+
			"0,3,1\n"+
			"2,0,2\n",
		out.String())
}

func TestFeatures_KFlagOverridesConfig(t *testing.T) {
	dir := fixture(t)
	cfg := writeConfig(t, dir, `
collections: [cycle]
labels: {cycle: 1}
data_dir: `+dir+`
`)
	err := run(context.Background(), "features", []string{"-config", cfg}, &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrConfiguration)

	var out bytes.Buffer
	err = run(context.Background(), "features", []string{"-config", cfg, "-k", "2"}, &out)
	require.NoError(t, err)
	require.Equal(t, "closed_walks(k=2)[0],label\n0,1\n", out.String())
}

func TestFeatures_CacheDir(t *testing.T) {
	dir := fixture(t)
	cfg := writeConfig(t, dir, `
collections: [cycle]
labels: {cycle: 1}
max_walk_length: 3
non_backtracking: true
data_dir: `+dir+`
cache_dir: `+filepath.Join(dir, "cache")+`
`)
	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), "features", []string{"-config", cfg}, &first))
	require.NoError(t, run(context.Background(), "features", []string{"-config", cfg}, &second))
	require.Equal(t, first.String(), second.String())
	require.DirExists(t, filepath.Join(dir, "cache"))
}
