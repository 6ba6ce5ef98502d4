// Package record converts played-out games to and from the external game
// record JSON format used for playback (spec.md §6): a ruleset, an optional
// initial snapshot, the move history, and the outcome.
package record

import (
	"fmt"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
)

// MoveDTO is the wire representation of one game.Move. Which fields are
// populated depends on ActionType, mirroring game.Move's own closed sum type.
type MoveDTO struct {
	ActionType string        `json:"action_type"`
	FromPos    *hexboard.Hex `json:"from_pos,omitempty"`
	ToPos      *hexboard.Hex `json:"to_pos,omitempty"`
	NewFacing  *uint8        `json:"new_facing,omitempty"`
}

var actionTypeNames = map[game.MoveKind]string{
	game.MovePass:      "PASS",
	game.MoveSurrender: "SURRENDER",
	game.MoveMovement:  "MOVEMENT",
	game.MoveRotate:    "ROTATE",
	game.MoveSwap:      "SWAP",
	game.MoveRebirth:   "REBIRTH",
}

// actionTypeKinds accepts both "MOVEMENT" and the shorter "MOVE" alias on
// read, matching spec.md §6's `"MOVEMENT"|"MOVE"`.
var actionTypeKinds = map[string]game.MoveKind{
	"PASS":      game.MovePass,
	"SURRENDER": game.MoveSurrender,
	"MOVEMENT":  game.MoveMovement,
	"MOVE":      game.MoveMovement,
	"ROTATE":    game.MoveRotate,
	"SWAP":      game.MoveSwap,
	"REBIRTH":   game.MoveRebirth,
}

// ToMoveDTO converts an internal move to its wire form.
func ToMoveDTO(m game.Move) MoveDTO {
	dto := MoveDTO{ActionType: actionTypeNames[m.Kind]}
	switch m.Kind {
	case game.MoveMovement:
		from, to, facing := m.From, m.To, m.NewFacing
		dto.FromPos, dto.ToPos, dto.NewFacing = &from, &to, &facing
	case game.MoveRotate:
		pos, facing := m.Pos, m.NewFacing
		dto.FromPos, dto.NewFacing = &pos, &facing
	case game.MoveSwap:
		from, to := m.From, m.To
		dto.FromPos, dto.ToPos = &from, &to
	case game.MoveRebirth:
		to, facing := m.To, m.NewFacing
		dto.ToPos, dto.NewFacing = &to, &facing
	}
	return dto
}

// FromMoveDTO converts a wire move back to game.Move, rejecting an unknown
// action_type or a move missing the fields its kind requires.
func FromMoveDTO(dto MoveDTO) (game.Move, error) {
	kind, ok := actionTypeKinds[dto.ActionType]
	if !ok {
		return game.Move{}, fmt.Errorf("record: unknown action_type %q", dto.ActionType)
	}

	m := game.Move{Kind: kind}
	switch kind {
	case game.MoveMovement:
		if dto.FromPos == nil || dto.ToPos == nil {
			return game.Move{}, fmt.Errorf("record: %s move missing from_pos/to_pos", dto.ActionType)
		}
		m.From, m.To = *dto.FromPos, *dto.ToPos
		if dto.NewFacing != nil {
			m.NewFacing = *dto.NewFacing
		}
	case game.MoveRotate:
		if dto.FromPos == nil || dto.NewFacing == nil {
			return game.Move{}, fmt.Errorf("record: %s move missing from_pos/new_facing", dto.ActionType)
		}
		m.Pos, m.NewFacing = *dto.FromPos, *dto.NewFacing
	case game.MoveSwap:
		if dto.FromPos == nil || dto.ToPos == nil {
			return game.Move{}, fmt.Errorf("record: %s move missing from_pos/to_pos", dto.ActionType)
		}
		m.From, m.To = *dto.FromPos, *dto.ToPos
	case game.MoveRebirth:
		if dto.ToPos == nil {
			return game.Move{}, fmt.Errorf("record: %s move missing to_pos", dto.ActionType)
		}
		m.To = *dto.ToPos
		if dto.NewFacing != nil {
			m.NewFacing = *dto.NewFacing
		}
	}
	return m, nil
}
