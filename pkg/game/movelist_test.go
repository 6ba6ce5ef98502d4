package game_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestMoveListOrdersByPriorityDescending(t *testing.T) {
	moves := []game.Move{
		{Kind: game.MovePass},
		{Kind: game.MoveSwap},
		{Kind: game.MoveRebirth},
		{Kind: game.MoveSurrender},
	}
	ml := game.NewMoveList(moves, func(m game.Move) game.Priority {
		switch m.Kind {
		case game.MovePass:
			return -1000
		case game.MoveSurrender:
			return -50000
		case game.MoveSwap:
			return 50
		case game.MoveRebirth:
			return 40
		default:
			return 0
		}
	})

	var order []game.MoveKind
	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		order = append(order, m.Kind)
	}
	assert.Equal(t, []game.MoveKind{game.MoveSwap, game.MoveRebirth, game.MovePass, game.MoveSurrender}, order)
}

func TestMoveListTruncate(t *testing.T) {
	moves := []game.Move{{Kind: game.MovePass}, {Kind: game.MoveSwap}, {Kind: game.MoveRebirth}}
	ml := game.NewMoveList(moves, func(m game.Move) game.Priority {
		if m.Kind == game.MoveSwap {
			return 50
		}
		return 0
	})
	ml.Truncate(1)
	assert.Equal(t, 1, ml.Size())
	m, ok := ml.Next()
	assert.True(t, ok)
	assert.Equal(t, game.MoveSwap, m.Kind)
}
