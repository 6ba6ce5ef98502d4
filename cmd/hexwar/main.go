// hexwar evolves, matches, and benchmarks HEXWAR rulesets from the command
// line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/seekerror/logw"
)

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "evolve":
		err = runEvolve(ctx, args)
	case "match":
		err = runMatch(ctx, args)
	case "benchmark":
		err = runBenchmark(ctx, args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	case "-version", "--version", "version":
		fmt.Println(engine.Name())
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: hexwar <command> [options]

Commands:
  evolve     run a genetic algorithm that evolves a ruleset
  match      play a match between two rulesets
  benchmark  evaluate a single ruleset's fitness at a spread of search depths

Run "hexwar <command> -h" for command-specific options, or "hexwar -version"
for the build version.
`)
}

func parseHeuristics(name string) (heuristicsFunc, error) {
	h, ok := heuristicsByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristics %q (want default, omega, apex, or zenith)", name)
	}
	return h, nil
}
