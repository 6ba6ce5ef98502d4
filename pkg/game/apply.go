package game

import (
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// roundLimit is the round number beyond which an unresolved game is settled
// by king proximity to center.
const roundLimit = 50

// Apply returns the state that results from playing m in s. Apply is pure: s
// is never mutated. It assumes m was produced by LegalMoves(s); applying a
// forged move (naming an empty source or illegal destination) is a
// programming error and its behavior is undefined.
func Apply(s State, m Move) State {
	ns := s
	ns.board = s.Pieces()

	actor := s.current

	switch m.Kind {
	case MovePass:
		// no board effect
	case MoveSurrender:
		ns.winner, ns.hasWinner = actor.Opponent(), true
	case MoveMovement:
		mover := ns.board[m.From]
		delete(ns.board, m.From)
		applyCapture(&ns, m.To)
		mover.Facing = m.NewFacing
		ns.board[m.To] = mover
		updateKingPos(&ns, mover, m.To)
		ns.lastPiecePos, ns.hasLastPiecePos = m.To, true
	case MoveRotate:
		p := ns.board[m.Pos]
		p.Facing = m.NewFacing
		ns.board[m.Pos] = p
		ns.lastPiecePos, ns.hasLastPiecePos = m.Pos, true
	case MoveSwap:
		a, b := ns.board[m.From], ns.board[m.To]
		ns.board[m.From], ns.board[m.To] = b, a
		updateKingPos(&ns, a, m.To)
		updateKingPos(&ns, b, m.From)
		ns.lastPiecePos, ns.hasLastPiecePos = m.To, true
	case MoveRebirth:
		phoenixID, ok := piece.FindBySpecial(piece.Rebirth)
		if ok {
			ns.board[m.To] = Piece{Archetype: phoenixID, Owner: actor, Facing: m.NewFacing}
		}
		setPhoenixCaptured(&ns, actor, false)
		ns.lastPiecePos, ns.hasLastPiecePos = m.To, true
	}

	ns.actionIndex++
	if ns.actionIndex >= ns.Template(actor).Len() {
		ns.current = actor.Opponent()
		ns.actionIndex = 0
		ns.hasLastPiecePos = false
		if ns.current == White {
			ns.round++
		}
	}

	if !ns.hasWinner && ns.round > roundLimit {
		ns = ResolveByProximity(ns)
	}

	return ns
}

// applyCapture removes and accounts for whatever occupies dest, if anything:
// king loss ends the game, phoenix loss opens the Rebirth slot.
func applyCapture(ns *State, dest hexboard.Hex) {
	occ, ok := ns.board[dest]
	if !ok {
		return
	}
	delete(ns.board, dest)

	arch := piece.Get(occ.Archetype)
	if arch.IsKing {
		ns.winner, ns.hasWinner = occ.Owner.Opponent(), true
		if occ.Owner == White {
			ns.whiteHasKing = false
		} else {
			ns.blackHasKing = false
		}
	}
	if arch.Special == piece.Rebirth {
		setPhoenixCaptured(ns, occ.Owner, true)
	}
}

func updateKingPos(ns *State, p Piece, pos hexboard.Hex) {
	if !piece.Get(p.Archetype).IsKing {
		return
	}
	if p.Owner == White {
		ns.whiteKingPos, ns.whiteHasKing = pos, true
	} else {
		ns.blackKingPos, ns.blackHasKing = pos, true
	}
}

func setPhoenixCaptured(ns *State, p Player, captured bool) {
	if p == White {
		ns.whitePhoenixCaptured = captured
	} else {
		ns.blackPhoenixCaptured = captured
	}
}

// ResolveByProximity settles an unresolved game by king distance to center:
// the closer king wins; ties favor the side with more pieces; remaining ties
// favor White. Exposed separately so pkg/engine can force it explicitly, not
// only via the round-50 rule inside Apply.
func ResolveByProximity(s State) State {
	if _, ok := s.Winner(); ok {
		return s
	}

	wPos, wOK := s.KingPos(White)
	bPos, bOK := s.KingPos(Black)

	var winner Player
	switch {
	case wOK && !bOK:
		winner = White
	case bOK && !wOK:
		winner = Black
	case !wOK && !bOK:
		winner = White
	default:
		wd, bd := wPos.DistanceToCenter(), bPos.DistanceToCenter()
		switch {
		case wd < bd:
			winner = White
		case bd < wd:
			winner = Black
		default:
			wc, bc := countPieces(s, White), countPieces(s, Black)
			switch {
			case wc > bc:
				winner = White
			case bc > wc:
				winner = Black
			default:
				winner = White
			}
		}
	}

	s.winner, s.hasWinner = winner, true
	return s
}

func countPieces(s State, p Player) int {
	n := 0
	for _, pc := range s.board {
		if pc.Owner == p {
			n++
		}
	}
	return n
}
