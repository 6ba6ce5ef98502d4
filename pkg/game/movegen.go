package game

import (
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// maxSlideRange bounds a slider's walk; any value at least the board's
// diameter is sufficient since Neighbor walks off-board and IsValid stops it.
const maxSlideRange = 2 * hexboard.Radius

// LegalMoves returns every legal move for the side to move. It returns nil on
// a terminal state; otherwise it always prepends Pass and Surrender so the
// search can always choose a graceful loss.
func LegalMoves(s State) []Move {
	if _, ok := s.Winner(); ok {
		return nil
	}

	moves := []Move{{Kind: MovePass}, {Kind: MoveSurrender}}

	current := s.CurrentPlayer()
	action := s.CurrentAction()
	lastPos, hasLast := s.LastPiecePos()

	allowsMove := action.Kind == ActMove || action.Kind == ActMoveOrRotate
	allowsRotate := action.Kind == ActRotate || action.Kind == ActMoveOrRotate

	satisfiesConstraint := func(hex hexboard.Hex) bool {
		if !hasLast {
			return true
		}
		switch action.Constraint {
		case Same:
			return hex == lastPos
		case Different:
			return hex != lastPos
		default:
			return true
		}
	}

	for hex, p := range s.board {
		if p.Owner != current {
			continue
		}
		if !satisfiesConstraint(hex) {
			continue
		}
		arch := piece.Get(p.Archetype)
		if allowsMove {
			moves = append(moves, generateMovement(s, hex, p, arch)...)
		}
		if allowsRotate {
			moves = append(moves, generateRotation(s, hex, p, arch)...)
		}
	}

	if allowsMove && s.PhoenixCaptured(current) {
		moves = append(moves, generateRebirth(s, current)...)
	}

	return moves
}

func generateMovement(s State, from hexboard.Hex, p Piece, arch piece.Archetype) []Move {
	if arch.Special == piece.SwapMove {
		return generateSwaps(s, from, p)
	}

	var moves []Move
	switch arch.Move {
	case piece.NoMove:
		return nil
	case piece.Step, piece.Slide:
		maxRange := arch.Range
		if arch.Move == piece.Slide {
			maxRange = maxSlideRange
		}
		for rel := uint8(0); rel < 6; rel++ {
			if arch.Directions&(1<<rel) == 0 {
				continue
			}
			absDir := hexboard.AbsoluteDirection(p.Facing, rel)
			cur := from
			for step := 0; step < maxRange; step++ {
				cur = cur.Neighbor(absDir)
				if !cur.IsValid() {
					break
				}
				occ, has := s.PieceAt(cur)
				if has {
					if occ.Owner == p.Owner {
						break
					}
					if arch.Special == piece.Phased || piece.Get(occ.Archetype).Special == piece.Phased {
						break
					}
					moves = append(moves, Move{Kind: MoveMovement, From: from, To: cur, NewFacing: p.Facing})
					break
				}
				moves = append(moves, Move{Kind: MoveMovement, From: from, To: cur, NewFacing: p.Facing})
			}
		}
	case piece.Jump:
		hexboard.IterRing(from, arch.Range, func(to hexboard.Hex) {
			if to == from {
				return
			}
			if arch.Directions == piece.ForwardArc && !hexboard.ForwardArcContains(p.Facing, from, to) {
				return
			}
			if occ, has := s.PieceAt(to); has {
				if occ.Owner == p.Owner {
					return
				}
				if arch.Special == piece.Phased || piece.Get(occ.Archetype).Special == piece.Phased {
					return
				}
			}
			moves = append(moves, Move{Kind: MoveMovement, From: from, To: to, NewFacing: p.Facing})
		})
	}
	return moves
}

func generateRotation(s State, from hexboard.Hex, p Piece, arch piece.Archetype) []Move {
	var moves []Move
	if arch.Directions != piece.AllDirs {
		for newFacing := uint8(0); newFacing < 6; newFacing++ {
			if newFacing == p.Facing {
				continue
			}
			moves = append(moves, Move{Kind: MoveRotate, Pos: from, NewFacing: newFacing})
		}
	}
	if arch.Special == piece.SwapRotate {
		moves = append(moves, generateSwaps(s, from, p)...)
	}
	return moves
}

func generateSwaps(s State, from hexboard.Hex, p Piece) []Move {
	var moves []Move
	for hex, other := range s.board {
		if hex == from || other.Owner != p.Owner {
			continue
		}
		moves = append(moves, Move{Kind: MoveSwap, From: from, To: hex})
	}
	return moves
}

func generateRebirth(s State, current Player) []Move {
	kingPos, ok := s.KingPos(current)
	if !ok {
		return nil
	}
	var moves []Move
	for dir := uint8(0); dir < 6; dir++ {
		dest := kingPos.Neighbor(dir)
		if !dest.IsValid() {
			continue
		}
		if _, occ := s.PieceAt(dest); occ {
			continue
		}
		for facing := uint8(0); facing < 6; facing++ {
			moves = append(moves, Move{Kind: MoveRebirth, To: dest, NewFacing: facing})
		}
	}
	return moves
}
