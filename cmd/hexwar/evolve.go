package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/giblfiz/hexwar/pkg/evolve"
	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/seekerror/logw"
)

func runEvolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ExitOnError)
	population := fs.Int("population", 30, "Population size")
	generations := fs.Int("generations", 20, "Number of generations")
	games := fs.Int("games", 0, "Games per matchup before target-tier doubling (0 = tournament.DefaultGamesPerMatchup)")
	depth := fs.Int("depth", 4, "Target search depth the ruleset is evolved for")
	maxRounds := fs.Int("max-rounds", 200, "Max actions per game; an unfinished game is then settled by king proximity")
	seed := fs.Int64("seed", 1, "Base RNG seed")
	reduced := fs.Bool("reduced", true, "Use the reduced (cheaper) matchup spec")
	multiDepth := fs.Bool("multi-depth", true, "Evaluate across the full depth tier spread rather than just the target depth")
	mutationRate := fs.Float64("mutation-rate", 0.3, "Probability a child is mutated")
	crossoverRate := fs.Float64("crossover-rate", 0.7, "Probability a child comes from crossover rather than a clone")
	elitism := fs.Int("elitism", 2, "Number of top individuals carried unchanged")
	tournamentSize := fs.Int("tournament-size", 3, "Selection tournament size")
	evolveSide := fs.String("evolve-side", "both", "Which side(s) to evolve: white, black, or both")
	heuristics := fs.String("heuristics", "default", "Evaluation heuristics: default, omega, apex, or zenith")
	seedRuleset := fs.String("seed-ruleset", "", "Path to a ruleset JSON file to seed the population from (default ruleset if empty)")
	out := fs.String("out", ".", "Directory to write champion.json and fitness_history.csv to")
	asJSON := fs.Bool("json", false, "Also print the champion report as JSON to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	side, err := parseEvolveSide(*evolveSide)
	if err != nil {
		return err
	}
	h, err := parseHeuristics(*heuristics)
	if err != nil {
		return err
	}

	var seedPop []ruleset.RuleSet
	if *seedRuleset != "" {
		rs, err := loadRuleset(*seedRuleset)
		if err != nil {
			return err
		}
		seedPop = []ruleset.RuleSet{rs}
	}

	cfg := evolve.Config{
		PopulationSize: *population,
		Generations:    *generations,
		MutationRate:   *mutationRate,
		CrossoverRate:  *crossoverRate,
		Elitism:        *elitism,
		TournamentSize: *tournamentSize,
		EvolveSide:     side,
		TargetDepth:    *depth,
		Heuristics:     h(),
		MaxMoves:        *maxRounds,
		Reduced:         *reduced,
		Seed:            *seed,
		SingleDepth:     !*multiDepth,
		GamesPerMatchup: *games,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logw.Infof(ctx, "evolve: population=%d generations=%d depth=%d evolve_side=%s", *population, *generations, *depth, *evolveSide)
	result, err := evolve.Run(ctx, seedPop, cfg)
	if err != nil {
		return err
	}

	champion := result.Population[0]
	logw.Infof(ctx, "champion: name=%s fitness=%.4f", ruleset.Name(champion.RuleSet), champion.Fitness)

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	if err := writeRuleset(filepath.Join(*out, "champion.json"), champion.RuleSet); err != nil {
		return err
	}
	if err := writeFitnessHistory(filepath.Join(*out, "fitness_history.csv"), result.BestFitness, result.MeanFitness); err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(champion)
	}
	return nil
}

func writeFitnessHistory(path string, best, mean []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"generation", "best_fitness", "avg_fitness"}); err != nil {
		return err
	}
	for i := range best {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(best[i], 'f', 6, 64),
			strconv.FormatFloat(mean[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
