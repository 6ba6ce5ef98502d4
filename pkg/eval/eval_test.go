package eval_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/stretchr/testify/assert"
)

func id(t *testing.T, code string) piece.ID {
	t.Helper()
	i, ok := piece.ByCode(code)
	assert.True(t, ok)
	return i
}

func TestEvaluateTerminalShortCircuits(t *testing.T) {
	k1 := id(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 0), Facing: 0}},
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -1), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	s = game.Apply(s, game.Move{Kind: game.MoveSurrender})
	score := eval.Evaluate(s, eval.Default())
	// White surrendered, so it is Black's win from the perspective of the side now to move (Black).
	assert.Equal(t, eval.WinValue, score)
}

func TestEvaluateSymmetricPositionIsNearZero(t *testing.T) {
	k1 := id(t, "K1")
	guard := id(t, "A2")
	white := []game.Placement{
		{Archetype: k1, Pos: hexboard.New(0, 3), Facing: 0},
		{Archetype: guard, Pos: hexboard.New(0, 2), Facing: 0},
	}
	black := []game.Placement{
		{Archetype: k1, Pos: hexboard.New(0, -3), Facing: 3},
		{Archetype: guard, Pos: hexboard.New(0, -2), Facing: 3},
	}
	s := game.NewState(white, black, game.TemplateE, game.TemplateE)
	h := eval.Default()
	h.MobilityWeight = 0 // isolate material/centrality, which are exactly symmetric here
	score := eval.Evaluate(s, h)
	assert.InDelta(t, 0, float32(score), 0.01)
}

func TestEvaluateWithDepthBiasesTowardShorterMates(t *testing.T) {
	k1 := id(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 0), Facing: 0}},
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -1), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	s = game.Apply(s, game.Move{Kind: game.MoveSurrender})
	shallow := eval.EvaluateWithDepth(s, eval.Default(), 2)
	deep := eval.EvaluateWithDepth(s, eval.Default(), 5)
	assert.Greater(t, deep, shallow)
}

func TestPresetsKingsAreZeroValued(t *testing.T) {
	for _, h := range []eval.Heuristics{eval.Default(), eval.Omega(), eval.Apex(), eval.Zenith()} {
		for _, code := range []string{"K1", "K2", "K3", "K4", "K5"} {
			kid := id(t, code)
			assert.Equal(t, float32(0), h.PieceValues[kid])
		}
	}
}

func TestZenithMatchesOpenQuestionConfiguration(t *testing.T) {
	z := eval.Zenith()
	assert.Equal(t, float32(1.5), z.CenterWeight)
	assert.Equal(t, float32(0), z.MobilityWeight)
}
