// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/walkfeat/cache"
	"github.com/katalvlaran/walkfeat/config"
	"github.com/katalvlaran/walkfeat/dataset"
	"github.com/katalvlaran/walkfeat/features"
	"github.com/katalvlaran/walkfeat/layout"
	"github.com/katalvlaran/walkfeat/matrix"
	"github.com/katalvlaran/walkfeat/olg"
	"github.com/katalvlaran/walkfeat/walks"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

var errUsage = errors.New("walkfeat: bad usage")

// run dispatches one subcommand. Output goes to stdout unless -out is given.
func run(ctx context.Context, cmd string, args []string, stdout io.Writer) error {
	switch cmd {
	case "features":
		return runFeatures(ctx, args, stdout)
	case "walks":
		return runWalks(args, stdout)
	case "olg":
		return runOLG(args, stdout)
	case "draw":
		return runDraw(args, stdout)
	}
	return errors.Wrapf(errUsage, "unknown command %q", cmd)
}

// loaderObserver forwards loader events to klog.
func loaderObserver(e dataset.Event) {
	klog.V(1).Infof("loaded %s from %s: %d entries of %dx%d", e.Collection, e.Path, e.Count, e.Rows, e.Cols)
}

// assemblerObserver forwards assembler events to klog.
func assemblerObserver(e features.Event) {
	switch e.Kind {
	case features.CollectionDone:
		klog.V(1).Infof("%s: %s done, %d rows", e.Key, e.Collection, e.Rows)
	default:
		klog.V(1).Infof("%s: %v (%d rows)", e.Key, e.Kind, e.Rows)
	}
}

func runFeatures(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("features", flag.ContinueOnError)
	cfgPath := fs.String("config", "walkfeat.yaml", "run configuration file")
	k := fs.Int("k", 0, "max walk length; overrides max_walk_length")
	cacheDir := fs.String("cache", "", "cache directory; overrides cache_dir")
	noCache := fs.Bool("no-cache", false, "disable the persistent cache")
	workers := fs.Int("workers", -1, "concurrent matrices; overrides workers")
	out := fs.String("out", "", "write the table CSV here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *k != 0 {
		cfg.MaxWalkLength = *k
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	funcs, err := featureFuncs(cfg)
	if err != nil {
		return err
	}

	loader := dataset.Loader{Observer: loaderObserver}
	colls, err := loader.LoadAll(cfg.DataDir, cfg.Collections)
	if err != nil {
		return err
	}

	opts := features.Options{Workers: cfg.Workers, Observer: assemblerObserver}
	if cfg.CacheDir != "" && !*noCache {
		store, err := cache.Open(cache.Options{Dir: cfg.CacheDir})
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Cache = store
	}

	asm, err := features.NewAssembler(funcs, opts)
	if err != nil {
		return err
	}
	tbl, err := asm.Assemble(ctx, colls, features.Labels(cfg.Labels))
	if err != nil {
		return err
	}
	klog.Infof("Number of data points : %d", len(tbl.Rows))

	return writeTo(*out, stdout, tbl.WriteCSV)
}

// featureFuncs builds the ordered feature list of cfg.
func featureFuncs(cfg *config.Config) ([]features.Func, error) {
	cw, err := features.ClosedWalks(cfg.MaxWalkLength)
	if err != nil {
		return nil, err
	}
	funcs := []features.Func{cw}
	if cfg.NonBacktracking {
		nb, err := features.NonBacktrackingWalks(cfg.MaxWalkLength)
		if err != nil {
			return nil, err
		}
		funcs = append(funcs, nb)
	}
	return funcs, nil
}

// collectionFlags are shared by the single-collection commands.
type collectionFlags struct {
	in, name string
}

func (c *collectionFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.in, "in", "", "collection file (.yaml or .json)")
	fs.StringVar(&c.name, "name", "", "collection name inside the file")
}

func (c *collectionFlags) load() (*dataset.Collection, error) {
	if c.in == "" || c.name == "" {
		return nil, errors.Wrap(errUsage, "-in and -name are required")
	}
	loader := dataset.Loader{Observer: loaderObserver}
	return loader.Load(c.in, c.name)
}

func pick(coll *dataset.Collection, index int) (*matrix.Dense, error) {
	if index < 0 || index >= coll.Len() {
		return nil, errors.Wrapf(errUsage, "-index %d out of range [0,%d)", index, coll.Len())
	}
	return coll.Matrices[index], nil
}

func runWalks(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("walks", flag.ContinueOnError)
	var cf collectionFlags
	cf.register(fs)
	k := fs.Int("k", 0, "max walk length (required, >= 2)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Fail on a missing bound before touching any file.
	if err := walks.ValidateWalkLength(*k); err != nil {
		return err
	}

	coll, err := cf.load()
	if err != nil {
		return err
	}
	for i, m := range coll.Matrices {
		fv, err := walks.ClosedWalks(m, *k)
		if err != nil {
			return errors.Wrapf(err, "%s[%d]", coll.Name, i)
		}
		fmt.Fprintf(stdout, "%s[%d] %v\n", coll.Name, i, fv)
	}
	return nil
}

func runOLG(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("olg", flag.ContinueOnError)
	var cf collectionFlags
	cf.register(fs)
	index := fs.Int("index", 0, "entry of the collection")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coll, err := cf.load()
	if err != nil {
		return err
	}
	m, err := pick(coll, *index)
	if err != nil {
		return err
	}
	g, err := olg.BuildGraph(m)
	if err != nil {
		return errors.Wrapf(err, "%s[%d]", coll.Name, *index)
	}

	fmt.Fprintf(stdout, "edges %v\n", g.Edges)
	fmt.Fprint(stdout, g.T)
	return nil
}

func runDraw(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	var cf collectionFlags
	cf.register(fs)
	index := fs.Int("index", 0, "entry of the collection")
	out := fs.String("out", "", "SVG output file instead of stdout")
	size := fs.Float64("size", 600, "image width and height")
	iterations := fs.Int("iterations", layout.DefaultOptions.Iterations, "spring layout iterations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coll, err := cf.load()
	if err != nil {
		return err
	}
	m, err := pick(coll, *index)
	if err != nil {
		return err
	}
	g, err := layout.FromAdjacency(m)
	if err != nil {
		return err
	}
	pos, err := layout.Spring(g, layout.Options{Iterations: *iterations})
	if err != nil {
		return err
	}

	return writeTo(*out, stdout, func(w io.Writer) error {
		return layout.WriteSVG(w, g, pos, *size)
	})
}

// writeTo calls write on the named file, or on stdout when path is empty.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err = write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
