package search

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, code string) piece.ID {
	t.Helper()
	id, ok := piece.ByCode(code)
	require.True(t, ok)
	return id
}

func TestInDangerMissingKing(t *testing.T) {
	k1 := mustID(t, "K1")
	s := game.NewState(
		nil,
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -4), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	assert.True(t, inDanger(s))
}

func TestInDangerEnemyNearby(t *testing.T) {
	k1 := mustID(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 0), Facing: 0}},
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -2), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	assert.True(t, inDanger(s))
}

func TestInDangerSafe(t *testing.T) {
	k1 := mustID(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 4), Facing: 0}},
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -4), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	assert.False(t, inDanger(s))
}

func TestIsCaptureDetectsOccupiedDestination(t *testing.T) {
	k1 := mustID(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 0), Facing: 0}},
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, -1), Facing: 3}},
		game.TemplateE, game.TemplateE,
	)
	capture := game.Move{Kind: game.MoveMovement, From: hexboard.New(0, 0), To: hexboard.New(0, -1)}
	quiet := game.Move{Kind: game.MoveMovement, From: hexboard.New(0, 0), To: hexboard.New(1, -1)}

	assert.True(t, isCapture(s, capture))
	assert.False(t, isCapture(s, quiet))
}

func TestConfigMaxMovesDefault(t *testing.T) {
	assert.Equal(t, DefaultMaxMovesPerAction, Config{}.maxMoves())
	assert.Equal(t, 5, Config{MaxMovesPerAction: 5}.maxMoves())
}
