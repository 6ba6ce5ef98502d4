// Package ruleset defines an army composition — the unit of evolution — and
// its conversion to a playable game.State (C12).
package ruleset

import (
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// MinPieces and MaxPieces bound the non-king roster size the mutation
// operators (C11) will add to or remove from — spec.md §3's explicit
// |pieces| ∈ [MIN_PIECES, MAX_PIECES] invariant. MaxPieces also mirrors
// hexwar-gpu/src/compact.rs's MAX_PIECES_PER_SIDE, the original's fixed
// per-side compaction buffer width.
const (
	MinPieces = 8
	MaxPieces = 15
)

// RuleSet is one army composition for each side: a king archetype, a list of
// non-king pieces, their starting positions and facings, and the action
// template each side plays under.
type RuleSet struct {
	Name string

	WhiteKing      piece.ID
	WhitePieces    []piece.ID
	WhitePositions []hexboard.Hex
	WhiteFacings   []uint8
	WhiteTemplate  game.Template

	BlackKing      piece.ID
	BlackPieces    []piece.ID
	BlackPositions []hexboard.Hex
	BlackFacings   []uint8
	BlackTemplate  game.Template
}

// NewState converts r into a playable game.State. Position index 0 is the
// king's; subsequent positions/facings line up with WhitePieces/BlackPieces
// by index, matching how C3's game.NewState lays out a setup sequence.
// Implements engine.Ruleset.
func (r RuleSet) NewState() game.State {
	white := buildSetup(r.WhiteKing, r.WhitePieces, r.WhitePositions, r.WhiteFacings, 0)
	black := buildSetup(r.BlackKing, r.BlackPieces, r.BlackPositions, r.BlackFacings, 3)
	return game.NewState(white, black, r.WhiteTemplate, r.BlackTemplate)
}

func buildSetup(king piece.ID, pieces []piece.ID, positions []hexboard.Hex, facings []uint8, defaultFacing uint8) []game.Placement {
	var setup []game.Placement
	if len(positions) > 0 {
		setup = append(setup, game.Placement{Archetype: king, Pos: positions[0], Facing: facingAt(facings, 0, defaultFacing)})
	}
	for i, id := range pieces {
		if i+1 >= len(positions) {
			break
		}
		setup = append(setup, game.Placement{Archetype: id, Pos: positions[i+1], Facing: facingAt(facings, i+1, defaultFacing)})
	}
	return setup
}

func facingAt(facings []uint8, i int, def uint8) uint8 {
	if i < len(facings) {
		return facings[i]
	}
	return def
}

// Clone returns a deep copy, safe to mutate independently of r — used by the
// mutation/crossover operators (C11), which never mutate a parent in place.
func (r RuleSet) Clone() RuleSet {
	c := r
	c.WhitePieces = append([]piece.ID(nil), r.WhitePieces...)
	c.WhitePositions = append([]hexboard.Hex(nil), r.WhitePositions...)
	c.WhiteFacings = append([]uint8(nil), r.WhiteFacings...)
	c.BlackPieces = append([]piece.ID(nil), r.BlackPieces...)
	c.BlackPositions = append([]hexboard.Hex(nil), r.BlackPositions...)
	c.BlackFacings = append([]uint8(nil), r.BlackFacings...)
	return c
}

// Default returns the baseline symmetric ruleset: a King Guard backed by
// eight Guards on each side, mirrored across the board and meeting spec.md
// §3's MinPieces floor on its own. Used to seed a GA population and to fill
// it back out if it ever empties entirely. All non-king positions fall
// inside the mutation operators' zone (pkg/evolve's zone.go).
func Default() RuleSet {
	k1, _ := piece.ByCode("K1")
	a2, _ := piece.ByCode("A2")
	guards := []piece.ID{a2, a2, a2, a2, a2, a2, a2, a2}

	return RuleSet{
		Name:        "default",
		WhiteKing:   k1,
		WhitePieces: guards,
		WhitePositions: []hexboard.Hex{
			hexboard.New(0, 3),
			hexboard.New(-3, 1), hexboard.New(-1, 1), hexboard.New(1, 1), hexboard.New(3, 1),
			hexboard.New(-2, 2), hexboard.New(0, 2), hexboard.New(2, 2),
			hexboard.New(-1, 3),
		},
		WhiteFacings:  []uint8{0, 0, 0, 0, 0, 0, 0, 0, 0},
		WhiteTemplate: game.TemplateE,

		BlackKing:   k1,
		BlackPieces: guards,
		BlackPositions: []hexboard.Hex{
			hexboard.New(0, -3),
			hexboard.New(3, -1), hexboard.New(1, -1), hexboard.New(-1, -1), hexboard.New(-3, -1),
			hexboard.New(2, -2), hexboard.New(0, -2), hexboard.New(-2, -2),
			hexboard.New(1, -3),
		},
		BlackFacings:  []uint8{3, 3, 3, 3, 3, 3, 3, 3, 3},
		BlackTemplate: game.TemplateE,
	}
}
