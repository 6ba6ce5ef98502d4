package evolve

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/giblfiz/hexwar/pkg/tournament"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

// Config parameterizes one genetic-algorithm run (spec.md §4.10).
type Config struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	Elitism        int
	TournamentSize int
	EvolveSide     EvolveSide

	TargetDepth     int
	Heuristics      eval.Heuristics
	MaxMoves        int
	Reduced         bool
	Seed            int64
	SingleDepth     bool
	GamesPerMatchup int
}

// Validate rejects a config that cannot run, surfacing the error at
// construction rather than panicking partway through a generation (spec.md
// §7).
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("evolve: population_size must be > 0, got %d", c.PopulationSize)
	}
	if c.Generations < 0 {
		return fmt.Errorf("evolve: generations must be >= 0, got %d", c.Generations)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf("evolve: tournament_size must be > 0, got %d", c.TournamentSize)
	}
	if c.Elitism < 0 {
		return fmt.Errorf("evolve: elitism must be >= 0, got %d", c.Elitism)
	}
	if c.TargetDepth < 2 {
		return fmt.Errorf("evolve: target depth must be >= 2, got %d", c.TargetDepth)
	}
	return nil
}

// Result is the outcome of a full GA run: the final population sorted by
// fitness descending, and the best/mean fitness recorded each generation.
type Result struct {
	Population  []Individual
	BestFitness []float64
	MeanFitness []float64
}

// Run evolves the given starting population for cfg.Generations generations
// (spec.md §4.10): evaluate, record best/mean, build the next generation via
// elitism + tournament selection + crossover/mutation, replace; after the
// final generation, re-evaluate and sort descending.
func Run(ctx context.Context, seed []ruleset.RuleSet, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	pop := ensurePopulationSize(seed, cfg.PopulationSize, rng)

	var result Result
	var individuals []Individual

	for gen := 0; gen < cfg.Generations; gen++ {
		individuals = evaluatePopulation(ctx, pop, cfg, gen)

		best, mean := summarize(individuals)
		result.BestFitness = append(result.BestFitness, best)
		result.MeanFitness = append(result.MeanFitness, mean)

		pop = nextGeneration(individuals, cfg, rng)
	}

	individuals = evaluatePopulation(ctx, pop, cfg, cfg.Generations)
	sort.Slice(individuals, func(i, j int) bool { return individuals[i].Fitness > individuals[j].Fitness })
	result.Population = individuals
	return result, nil
}

// ensurePopulationSize clones random existing individuals to fill a
// population smaller than target (or starts from the default ruleset if
// seed is empty), and truncates one that's larger (spec.md §4.10).
func ensurePopulationSize(seed []ruleset.RuleSet, target int, rng *rand.Rand) []ruleset.RuleSet {
	pop := seed
	if len(pop) == 0 {
		pop = []ruleset.RuleSet{ruleset.Default()}
	}
	if len(pop) > target {
		return append([]ruleset.RuleSet(nil), pop[:target]...)
	}

	filled := append([]ruleset.RuleSet(nil), pop...)
	for len(filled) < target {
		filled = append(filled, pop[rng.Intn(len(pop))].Clone())
	}
	return filled
}

// evaluatePopulation runs an independent tournament evaluation per
// individual, in parallel across a worker pool (spec.md §5's evaluation-
// level parallelism). A panic inside one evaluation is isolated to that
// individual, which is reported with fitness 0 rather than aborting the
// generation (spec.md §7).
func evaluatePopulation(ctx context.Context, pop []ruleset.RuleSet, cfg Config, gen int) []Individual {
	individuals := make([]Individual, len(pop))

	g, gctx := errgroup.WithContext(ctx)
	for i, rs := range pop {
		i, rs := i, rs
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					logw.Errorf(gctx, "evolve: evaluation of individual %d panicked: %v", i, r)
					individuals[i] = Individual{RuleSet: rs, Fitness: 0}
				}
			}()

			tcfg := tournament.Config{
				TargetDepth:     cfg.TargetDepth,
				Heuristics:      cfg.Heuristics,
				MaxMoves:        cfg.MaxMoves,
				Reduced:         cfg.Reduced,
				BaseSeed:        evalSeed(cfg.Seed, gen, i),
				SingleDepth:     cfg.SingleDepth,
				GamesPerMatchup: cfg.GamesPerMatchup,
			}
			report := tournament.Evaluate(gctx, rs, tcfg)
			individuals[i] = Individual{RuleSet: rs, Fitness: report.Fitness}
			return nil
		})
	}
	_ = g.Wait() // evaluatePopulation never fails the generation; see panic recovery above.

	return individuals
}

// evalSeed partitions the RNG seed space across generations and population
// members with disjoint strides, per spec.md §5.
func evalSeed(base int64, gen, individual int) int64 {
	return base + int64(gen)*1_000_000 + int64(individual)*1_000
}

func summarize(individuals []Individual) (best, mean float64) {
	if len(individuals) == 0 {
		return 0, 0
	}
	var sum float64
	best = individuals[0].Fitness
	for _, ind := range individuals {
		sum += ind.Fitness
		if ind.Fitness > best {
			best = ind.Fitness
		}
	}
	return best, sum / float64(len(individuals))
}

// nextGeneration builds the next population: the top Elitism individuals
// unchanged, then repeated tournament selection with probabilistic
// crossover and mutation until the population is refilled (spec.md §4.10).
func nextGeneration(individuals []Individual, cfg Config, rng *rand.Rand) []ruleset.RuleSet {
	next := make([]ruleset.RuleSet, 0, len(individuals))
	for _, idx := range selectElite(individuals, cfg.Elitism) {
		next = append(next, individuals[idx].RuleSet.Clone())
	}

	for len(next) < len(individuals) {
		parentA := tournamentSelect(individuals, cfg.TournamentSize, rng)

		var child ruleset.RuleSet
		if rng.Float64() < cfg.CrossoverRate {
			parentB := tournamentSelect(individuals, cfg.TournamentSize, rng)
			child = Crossover(parentA, parentB, cfg.EvolveSide, rng)
		} else {
			child = parentA.Clone()
		}

		if rng.Float64() < cfg.MutationRate {
			child = Mutate(child, cfg.EvolveSide, rng)
		}
		next = append(next, child)
	}
	return next
}
