package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/giblfiz/hexwar/pkg/ruleset"
)

func runMatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	aPath := fs.String("a", "", "Path to ruleset A's JSON file (required)")
	bPath := fs.String("b", "", "Path to ruleset B's JSON file (required)")
	depth := fs.Int("depth", 4, "Search depth for both sides")
	maxRounds := fs.Int("max-rounds", 200, "Max actions per game; an unfinished game is then settled by king proximity")
	games := fs.Int("games", 10, "Games to play, alternating colors")
	seed := fs.Int64("seed", 1, "Base RNG seed")
	heuristics := fs.String("heuristics", "default", "Evaluation heuristics: default, omega, apex, or zenith")
	asJSON := fs.Bool("json", false, "Print the result as JSON instead of a summary line")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *aPath == "" || *bPath == "" {
		return fmt.Errorf("match: -a and -b are required")
	}

	h, err := parseHeuristics(*heuristics)
	if err != nil {
		return err
	}
	a, err := loadRuleset(*aPath)
	if err != nil {
		return err
	}
	b, err := loadRuleset(*bPath)
	if err != nil {
		return err
	}

	cfg := engine.AIConfig{Depth: *depth, Heuristics: h()}
	result, err := engine.PlayMatchParallel(ctx, a, b, cfg, *games, *maxRounds, *seed)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	engine.LogMatchResult(ctx, fmt.Sprintf("%s vs %s", ruleset.Name(a), ruleset.Name(b)), result)
	return nil
}
