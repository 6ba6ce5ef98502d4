package evolve

import (
	"math/rand"

	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/giblfiz/hexwar/pkg/ruleset"
)

// side is a mutable view onto one faction of a ruleset, letting every
// operator below be written once and applied to either color.
type side struct {
	white     bool
	king      *piece.ID
	pieces    *[]piece.ID
	positions *[]hexboard.Hex
	facings   *[]uint8
}

func whiteSide(r *ruleset.RuleSet) side {
	return side{true, &r.WhiteKing, &r.WhitePieces, &r.WhitePositions, &r.WhiteFacings}
}

func blackSide(r *ruleset.RuleSet) side {
	return side{false, &r.BlackKing, &r.BlackPieces, &r.BlackPositions, &r.BlackFacings}
}

type operator struct {
	name   string
	weight float64
	side   EvolveSide // EvolveWhite or EvolveBlack — which faction this entry touches
	apply  func(side, *rand.Rand)
}

// operatorTable enumerates every (operator, side) pair with its weight
// (spec.md §4.11). Mutate filters this table by the GA's EvolveSide before
// choosing one weighted entry.
var operatorTable = buildOperatorTable()

func buildOperatorTable() []operator {
	defs := []struct {
		name   string
		weight float64
		apply  func(side, *rand.Rand)
	}{
		{"add", 2.0, opAdd},
		{"add_copy", 2.0, opAddCopy},
		{"remove", 1.0, opRemove},
		{"swap_random", 1.0, opSwapRandom},
		{"swap_existing", 2.0, opSwapExisting},
		{"change_king", 1.0, opChangeKing},
		{"shuffle_positions", 1.0, opShufflePositions},
		{"swap_two_positions", 1.0, opSwapTwoPositions},
		{"rotate", 1.0, opRotate},
	}

	var table []operator
	for _, d := range defs {
		table = append(table,
			operator{name: d.name + "_white", weight: d.weight, side: EvolveWhite, apply: d.apply},
			operator{name: d.name + "_black", weight: d.weight, side: EvolveBlack, apply: d.apply},
		)
	}
	return table
}

// Mutate applies exactly one weighted operator, chosen from the pool that
// evolveSide permits, to a clone of r (spec.md §4.11), then enforces the
// Warper/Shifter exclusivity constraint.
func Mutate(r ruleset.RuleSet, evolveSide EvolveSide, rng *rand.Rand) ruleset.RuleSet {
	child := r.Clone()

	pool := poolFor(evolveSide)
	if len(pool) == 0 {
		return child
	}

	op := pool[weightedChoice(pool, rng)]
	var s side
	if op.side == EvolveWhite {
		s = whiteSide(&child)
	} else {
		s = blackSide(&child)
	}
	op.apply(s, rng)

	enforceNoWarperShifter(whiteSide(&child))
	enforceNoWarperShifter(blackSide(&child))
	return child
}

func poolFor(evolveSide EvolveSide) []operator {
	if evolveSide == EvolveBoth {
		return operatorTable
	}
	var pool []operator
	for _, op := range operatorTable {
		if op.side == evolveSide {
			pool = append(pool, op)
		}
	}
	return pool
}

func weightedChoice(ops []operator, rng *rand.Rand) int {
	var total float64
	for _, op := range ops {
		total += op.weight
	}
	r := rng.Float64() * total
	for i, op := range ops {
		r -= op.weight
		if r < 0 {
			return i
		}
	}
	return len(ops) - 1
}

func opAdd(s side, rng *rand.Rand) {
	addPiece(s, rng, randomNonKing(rng))
}

func opAddCopy(s side, rng *rand.Rand) {
	pieces := *s.pieces
	if len(pieces) == 0 {
		addPiece(s, rng, randomNonKing(rng))
		return
	}
	addPiece(s, rng, pieces[rng.Intn(len(pieces))])
}

func addPiece(s side, rng *rand.Rand, archetype piece.ID) {
	if len(*s.pieces) >= ruleset.MaxPieces {
		return
	}
	empty := emptyZoneHexes(s.white, *s.positions)
	if len(empty) == 0 {
		return
	}
	pos := empty[rng.Intn(len(empty))]

	*s.pieces = append(*s.pieces, archetype)
	*s.positions = append(*s.positions, pos)
	*s.facings = append(*s.facings, uint8(rng.Intn(6)))
}

func opRemove(s side, rng *rand.Rand) {
	pieces := *s.pieces
	if len(pieces) <= ruleset.MinPieces {
		return
	}
	i := rng.Intn(len(pieces))
	removePieceAt(s, i)
}

func removePieceAt(s side, i int) {
	pieces := *s.pieces
	positions := *s.positions
	facings := *s.facings

	*s.pieces = append(pieces[:i], pieces[i+1:]...)
	// Position/facing index i+1 corresponds to piece index i (index 0 is the king's).
	*s.positions = append(positions[:i+1], positions[i+2:]...)
	*s.facings = append(facings[:i+1], facings[i+2:]...)
}

func opSwapRandom(s side, rng *rand.Rand) {
	pieces := *s.pieces
	if len(pieces) == 0 {
		return
	}
	pieces[rng.Intn(len(pieces))] = randomNonKing(rng)
}

func opSwapExisting(s side, rng *rand.Rand) {
	pieces := *s.pieces
	if len(pieces) == 0 {
		return
	}
	replacement := pieces[rng.Intn(len(pieces))]
	pieces[rng.Intn(len(pieces))] = replacement
}

func opChangeKing(s side, rng *rand.Rand) {
	kings := piece.KingIDs()
	*s.king = kings[rng.Intn(len(kings))]
}

func opShufflePositions(s side, rng *rand.Rand) {
	positions := *s.positions
	facings := *s.facings
	if len(positions) <= 2 {
		return
	}
	// Index 0 is the king's; shuffle only the non-king tail (Fisher-Yates).
	n := len(positions) - 1
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		positions[i+1], positions[j+1] = positions[j+1], positions[i+1]
		if i+1 < len(facings) && j+1 < len(facings) {
			facings[i+1], facings[j+1] = facings[j+1], facings[i+1]
		}
	}
}

func opSwapTwoPositions(s side, rng *rand.Rand) {
	positions := *s.positions
	facings := *s.facings
	n := len(positions) - 1 // non-king count
	if n < 2 {
		return
	}
	i := 1 + rng.Intn(n)
	j := 1 + rng.Intn(n)
	if i == j {
		j = 1 + (i % n)
	}
	positions[i], positions[j] = positions[j], positions[i]
	if i < len(facings) && j < len(facings) {
		facings[i], facings[j] = facings[j], facings[i]
	}
}

var rotateDeltas = [4]int{-2, -1, 1, 2}

func opRotate(s side, rng *rand.Rand) {
	pieces := *s.pieces
	facings := *s.facings
	if len(pieces) == 0 {
		return
	}
	i := rng.Intn(len(pieces)) + 1 // +1: facings[0] is the king's
	if i >= len(facings) {
		return
	}
	delta := rotateDeltas[rng.Intn(len(rotateDeltas))]
	facings[i] = uint8(((int(facings[i])+delta)%6 + 6) % 6)
}

func randomNonKing(rng *rand.Rand) piece.ID {
	ids := piece.NonKingIDs()
	return ids[rng.Intn(len(ids))]
}

// enforceNoWarperShifter drops every Shifter on s if s also carries a
// Warper, since the two specials may not coexist on one side (spec.md
// §4.11).
func enforceNoWarperShifter(s side) {
	warper, _ := piece.FindBySpecial(piece.SwapMove)
	shifter, _ := piece.FindBySpecial(piece.SwapRotate)

	pieces := *s.pieces
	hasWarper := false
	for _, id := range pieces {
		if id == warper {
			hasWarper = true
			break
		}
	}
	if !hasWarper {
		return
	}

	for i := 0; i < len(*s.pieces); i++ {
		if (*s.pieces)[i] == shifter {
			removePieceAt(s, i)
			i--
		}
	}
}
