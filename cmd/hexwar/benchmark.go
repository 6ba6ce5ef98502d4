package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/giblfiz/hexwar/pkg/tournament"
	"github.com/seekerror/logw"
)

func runBenchmark(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
	path := fs.String("ruleset", "", "Path to the ruleset JSON file to evaluate (required)")
	depth := fs.Int("depth", 4, "Target search depth")
	games := fs.Int("games", 0, "Games per matchup before target-tier doubling (0 = tournament.DefaultGamesPerMatchup)")
	maxRounds := fs.Int("max-rounds", 200, "Max actions per game; an unfinished game is then settled by king proximity")
	seed := fs.Int64("seed", 1, "Base RNG seed")
	reduced := fs.Bool("reduced", true, "Use the reduced (cheaper) matchup spec")
	multiDepth := fs.Bool("multi-depth", true, "Evaluate across the full depth tier spread rather than just the target depth")
	heuristics := fs.String("heuristics", "default", "Evaluation heuristics: default, omega, apex, or zenith")
	asJSON := fs.Bool("json", false, "Print the report as JSON instead of a summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("benchmark: -ruleset is required")
	}

	h, err := parseHeuristics(*heuristics)
	if err != nil {
		return err
	}
	rs, err := loadRuleset(*path)
	if err != nil {
		return err
	}

	cfg := tournament.Config{
		TargetDepth:     *depth,
		Heuristics:      h(),
		MaxMoves:        *maxRounds,
		BaseSeed:        *seed,
		Reduced:         *reduced,
		SingleDepth:     !*multiDepth,
		GamesPerMatchup: *games,
	}
	report := tournament.Evaluate(ctx, rs, cfg)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	logw.Infof(ctx, "%s: fitness=%.4f skill_gradient=%.3f skill_score=%.3f color_fairness=%.3f game_richness=%.3f decisiveness=%.3f",
		ruleset.Name(rs), report.Fitness, report.SkillGradient, report.SkillScore, report.ColorFairness, report.GameRichness, report.Decisiveness)
	return nil
}
