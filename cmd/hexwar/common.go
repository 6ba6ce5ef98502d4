package main

import (
	"fmt"
	"os"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/evolve"
	"github.com/giblfiz/hexwar/pkg/ruleset"
)

type heuristicsFunc = func() eval.Heuristics

var heuristicsByName = map[string]heuristicsFunc{
	"default": eval.Default,
	"omega":   eval.Omega,
	"apex":    eval.Apex,
	"zenith":  eval.Zenith,
}

func parseEvolveSide(name string) (evolve.EvolveSide, error) {
	switch name {
	case "white":
		return evolve.EvolveWhite, nil
	case "black":
		return evolve.EvolveBlack, nil
	case "both":
		return evolve.EvolveBoth, nil
	default:
		return 0, fmt.Errorf("unknown evolve-side %q (want white, black, or both)", name)
	}
}

// loadRuleset reads and decodes a ruleset document from path.
func loadRuleset(path string) (ruleset.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ruleset.RuleSet{}, fmt.Errorf("reading %s: %w", path, err)
	}
	rs, err := ruleset.Decode(data)
	if err != nil {
		return ruleset.RuleSet{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return rs, nil
}

// writeRuleset encodes rs and writes it to path.
func writeRuleset(path string, rs ruleset.RuleSet) error {
	data, err := ruleset.Encode(rs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
