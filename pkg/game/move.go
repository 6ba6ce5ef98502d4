package game

import (
	"fmt"

	"github.com/giblfiz/hexwar/pkg/hexboard"
)

// MoveKind tags the closed sum type of legal game moves.
type MoveKind uint8

const (
	MovePass MoveKind = iota
	MoveSurrender
	MoveMovement
	MoveRotate
	MoveSwap
	MoveRebirth
)

func (k MoveKind) String() string {
	switch k {
	case MovePass:
		return "Pass"
	case MoveSurrender:
		return "Surrender"
	case MoveMovement:
		return "Movement"
	case MoveRotate:
		return "Rotate"
	case MoveSwap:
		return "Swap"
	case MoveRebirth:
		return "Rebirth"
	default:
		return "?"
	}
}

// Move is a closed sum type over the six move kinds. Field meaning depends on
// Kind: Movement uses From/To/NewFacing (NewFacing equal to the mover's
// current facing, rotation is a separate action); Rotate uses Pos/NewFacing;
// Swap uses From (mover) and To (swap target); Rebirth uses To (destination)
// and NewFacing.
type Move struct {
	Kind      MoveKind
	From      hexboard.Hex
	To        hexboard.Hex
	Pos       hexboard.Hex
	NewFacing uint8
}

func (m Move) String() string {
	switch m.Kind {
	case MovePass, MoveSurrender:
		return m.Kind.String()
	case MoveMovement:
		return fmt.Sprintf("Movement(%v->%v, facing=%d)", m.From, m.To, m.NewFacing)
	case MoveRotate:
		return fmt.Sprintf("Rotate(%v, facing=%d)", m.Pos, m.NewFacing)
	case MoveSwap:
		return fmt.Sprintf("Swap(%v<->%v)", m.From, m.To)
	case MoveRebirth:
		return fmt.Sprintf("Rebirth(%v, facing=%d)", m.To, m.NewFacing)
	default:
		return "?"
	}
}

// Equals reports whether two moves are identical.
func (m Move) Equals(o Move) bool {
	return m == o
}
