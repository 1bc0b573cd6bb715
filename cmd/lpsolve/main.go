// Command lpsolve reads a standard-form maximization LP from stdin (or
// a file) and reports optimal/unbounded/infeasible per spec.md §6.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/quaegor/ratsimplex/internal/parse"
	"github.com/quaegor/ratsimplex/internal/report"
	"github.com/quaegor/ratsimplex/internal/simplex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lpsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "path to the input file (default: stdin)")
	verbose := fs.Bool("v", false, "trace pivot selection to stderr")
	maxPivots := fs.Int("max-pivots", 0, "abort after this many pivots (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	r := stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintf(stderr, "lpsolve: %v\n", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	problem, err := parse.Parse(r)
	if err != nil {
		fmt.Fprintf(stderr, "lpsolve: %v\n", err)
		return 1
	}

	opts := simplex.Options{MaxPivots: *maxPivots}
	if *verbose {
		opts.Trace = log.New(stderr, "lpsolve: ", 0)
	}

	dict := simplex.Build(problem)
	outcome, err := simplex.Solve(dict, opts)
	if err != nil {
		fmt.Fprintf(stderr, "lpsolve: internal error: %v\n", err)
		return 1
	}

	if err := report.Write(stdout, outcome); err != nil {
		fmt.Fprintf(stderr, "lpsolve: %v\n", err)
		return 1
	}
	return 0
}
