package evolve

import (
	"math/rand"

	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/giblfiz/hexwar/pkg/ruleset"
)

// EvolveSide names which side(s) a GA run is allowed to change.
type EvolveSide int

const (
	EvolveWhite EvolveSide = iota
	EvolveBlack
	EvolveBoth
)

// Crossover produces a child ruleset whose white faction independently comes
// from parent a or b (50/50), and likewise for black — each faction moved as
// the unit (king, pieces, positions, facings, template). An EvolveSide other
// than Both locks the non-evolving faction to parent a (spec.md §4.11).
func Crossover(a, b ruleset.RuleSet, side EvolveSide, rng *rand.Rand) ruleset.RuleSet {
	child := ruleset.RuleSet{Name: "crossover"}

	if side == EvolveBlack {
		copyWhiteFaction(&child, a)
	} else {
		copyWhiteFaction(&child, pickParent(a, b, rng))
	}

	if side == EvolveWhite {
		copyBlackFaction(&child, a)
	} else {
		copyBlackFaction(&child, pickParent(a, b, rng))
	}
	return child
}

func pickParent(a, b ruleset.RuleSet, rng *rand.Rand) ruleset.RuleSet {
	if rng.Float64() < 0.5 {
		return a
	}
	return b
}

func copyWhiteFaction(child *ruleset.RuleSet, src ruleset.RuleSet) {
	child.WhiteKing = src.WhiteKing
	child.WhitePieces = append([]piece.ID(nil), src.WhitePieces...)
	child.WhitePositions = append([]hexboard.Hex(nil), src.WhitePositions...)
	child.WhiteFacings = append([]uint8(nil), src.WhiteFacings...)
	child.WhiteTemplate = src.WhiteTemplate
}

func copyBlackFaction(child *ruleset.RuleSet, src ruleset.RuleSet) {
	child.BlackKing = src.BlackKing
	child.BlackPieces = append([]piece.ID(nil), src.BlackPieces...)
	child.BlackPositions = append([]hexboard.Hex(nil), src.BlackPositions...)
	child.BlackFacings = append([]uint8(nil), src.BlackFacings...)
	child.BlackTemplate = src.BlackTemplate
}
