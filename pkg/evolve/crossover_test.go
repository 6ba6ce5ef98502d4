package evolve

import (
	"math/rand"
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/stretchr/testify/assert"
)

func distinctParents() (ruleset.RuleSet, ruleset.RuleSet) {
	a := ruleset.Default()
	a.Name = "parent-a"
	a.WhiteTemplate = game.TemplateA
	a.BlackTemplate = game.TemplateB

	b := ruleset.Default()
	b.Name = "parent-b"
	a1, _ := piece.ByCode("A1")
	b.WhitePieces = []piece.ID{a1, a1, a1, a1}
	b.WhiteTemplate = game.TemplateC
	b.BlackTemplate = game.TemplateD
	return a, b
}

func TestCrossoverBothFactionsComeFromEitherParentIndependently(t *testing.T) {
	a, b := distinctParents()
	rng := rand.New(rand.NewSource(7))

	var whiteFromA, whiteFromB, blackFromA, blackFromB bool
	for i := 0; i < 200; i++ {
		child := Crossover(a, b, EvolveBoth, rng)
		if child.WhiteTemplate == a.WhiteTemplate {
			whiteFromA = true
		} else {
			whiteFromB = true
		}
		if child.BlackTemplate == a.BlackTemplate {
			blackFromA = true
		} else {
			blackFromB = true
		}
	}

	assert.True(t, whiteFromA, "expected some children to take white faction from parent a")
	assert.True(t, whiteFromB, "expected some children to take white faction from parent b")
	assert.True(t, blackFromA, "expected some children to take black faction from parent a")
	assert.True(t, blackFromB, "expected some children to take black faction from parent b")
}

func TestCrossoverEvolveWhiteLocksBlackToParentA(t *testing.T) {
	a, b := distinctParents()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		child := Crossover(a, b, EvolveWhite, rng)
		assert.Equal(t, a.BlackTemplate, child.BlackTemplate)
		assert.Equal(t, a.BlackKing, child.BlackKing)
	}
}

func TestCrossoverEvolveBlackLocksWhiteToParentA(t *testing.T) {
	a, b := distinctParents()
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 50; i++ {
		child := Crossover(a, b, EvolveBlack, rng)
		assert.Equal(t, a.WhiteTemplate, child.WhiteTemplate)
		assert.Equal(t, a.WhitePieces, child.WhitePieces)
	}
}

func TestCrossoverDoesNotAliasParentSlices(t *testing.T) {
	a, b := distinctParents()
	rng := rand.New(rand.NewSource(3))

	child := Crossover(a, b, EvolveBoth, rng)
	if len(child.WhitePositions) == 0 {
		t.Fatal("expected child to have white positions")
	}

	original := append([]hexboard.Hex(nil), child.WhitePositions...)
	child.WhitePositions[0] = hexboard.New(5, 5)

	assert.NotEqual(t, child.WhitePositions[0], original[0])
	assert.NotEqual(t, a.WhitePositions[0], hexboard.New(5, 5))
	assert.NotEqual(t, b.WhitePositions[0], hexboard.New(5, 5))
}
