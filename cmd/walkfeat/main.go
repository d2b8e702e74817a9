// SPDX-License-Identifier: MIT

// Command walkfeat extracts closed-walk and oriented-line-graph features from
// collections of adjacency matrices.
//
//	walkfeat features -config walkfeat.yaml [-k N] [-cache DIR | -no-cache] [-out table.csv]
//	walkfeat walks    -in data.yaml -name COLL -k N
//	walkfeat olg      -in data.yaml -name COLL [-index I]
//	walkfeat draw     -in data.yaml -name COLL [-index I] -out graph.svg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/walkfeat/config"
	"github.com/katalvlaran/walkfeat/walks"
	"github.com/plan-systems/klog"
)

const usage = `usage: walkfeat <features|walks|olg|draw> [flags]

Run "walkfeat <command> -h" for the flags of a command.
`

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1], os.Args[2:], os.Stdout)
	stop()

	code := 0
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, walks.ErrConfiguration), errors.Is(err, config.ErrConfiguration), errors.Is(err, errUsage):
		klog.Errorf("configuration: %v", err)
		code = 2
	default:
		klog.Errorf("%v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}
