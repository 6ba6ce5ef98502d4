package evolve

import (
	"math/rand"
	"sort"

	"github.com/giblfiz/hexwar/pkg/ruleset"
)

// Individual pairs a candidate ruleset with its evaluated fitness.
type Individual struct {
	RuleSet ruleset.RuleSet
	Fitness float64
}

// tournamentSelect picks tournamentSize individuals (clamped to
// [1, len(pop)]) uniformly with replacement and returns the fittest one's
// ruleset (spec.md §4.10,
// grounded on original_source/hexwar-evolve/src/selection.rs's
// tournament_select).
func tournamentSelect(pop []Individual, tournamentSize int, rng *rand.Rand) ruleset.RuleSet {
	n := tournamentSize
	if n > len(pop) {
		n = len(pop)
	}
	if n < 1 {
		n = 1
	}

	best := rng.Intn(len(pop))
	for i := 1; i < n; i++ {
		idx := rng.Intn(len(pop))
		if pop[idx].Fitness > pop[best].Fitness {
			best = idx
		}
	}
	return pop[best].RuleSet
}

// selectElite returns the indices of the top n individuals by fitness,
// descending (original_source/hexwar-evolve/src/selection.rs's
// select_elite).
func selectElite(pop []Individual, n int) []int {
	idx := make([]int, len(pop))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return pop[idx[i]].Fitness > pop[idx[j]].Fitness
	})
	if n > len(idx) {
		n = len(idx)
	}
	if n < 0 {
		n = 0
	}
	return idx[:n]
}
