package game_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/stretchr/testify/assert"
)

func mustID(t *testing.T, code string) piece.ID {
	t.Helper()
	id, ok := piece.ByCode(code)
	assert.True(t, ok, "unknown archetype code %q", code)
	return id
}

func TestNewStateTracksKings(t *testing.T) {
	k1 := mustID(t, "K1")
	a1 := mustID(t, "A1")

	white := []game.Placement{
		{Archetype: k1, Pos: hexboard.New(0, 3), Facing: 0},
		{Archetype: a1, Pos: hexboard.New(0, 2), Facing: 0},
	}
	black := []game.Placement{
		{Archetype: k1, Pos: hexboard.New(0, -3), Facing: 3},
	}
	s := game.NewState(white, black, game.TemplateE, game.TemplateE)

	wp, ok := s.KingPos(game.White)
	assert.True(t, ok)
	assert.Equal(t, hexboard.New(0, 3), wp)

	bp, ok := s.KingPos(game.Black)
	assert.True(t, ok)
	assert.Equal(t, hexboard.New(0, -3), bp)

	assert.Equal(t, game.White, s.CurrentPlayer())
	assert.Equal(t, 1, s.Round())
	assert.Equal(t, 0, s.ActionIndex())
	_, hasLast := s.LastPiecePos()
	assert.False(t, hasLast)
}

func TestPiecesIsDefensiveCopy(t *testing.T) {
	k1 := mustID(t, "K1")
	s := game.NewState(
		[]game.Placement{{Archetype: k1, Pos: hexboard.New(0, 0), Facing: 0}},
		nil,
		game.TemplateE, game.TemplateE,
	)
	pieces := s.Pieces()
	delete(pieces, hexboard.New(0, 0))

	_, ok := s.PieceAt(hexboard.New(0, 0))
	assert.True(t, ok, "mutating the returned map must not affect State")
}
