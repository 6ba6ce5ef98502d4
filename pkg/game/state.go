// Package game implements the hex-war state machine: board state, legal move
// generation under the six action templates, and pure move application.
package game

import (
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// Player identifies a side.
type Player uint8

const (
	White Player = iota
	Black
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Piece is a single occupant of a board hex.
type Piece struct {
	Archetype piece.ID
	Owner     Player
	Facing    uint8
}

// Placement is one entry of a setup sequence passed to NewState: an archetype,
// its starting hex, and its initial facing.
type Placement struct {
	Archetype piece.ID
	Pos       hexboard.Hex
	Facing    uint8
}

// State is an immutable snapshot of a game in progress. Every change goes
// through Apply, NullMove or ResolveByProximity, each of which returns a new
// State; State itself is never mutated in place, including during search.
type State struct {
	board map[hexboard.Hex]Piece

	whiteKingPos hexboard.Hex
	blackKingPos hexboard.Hex
	whiteHasKing bool
	blackHasKing bool

	current Player

	whiteTemplate Template
	blackTemplate Template

	actionIndex int

	lastPiecePos    hexboard.Hex
	hasLastPiecePos bool

	round int

	winner    Player
	hasWinner bool

	whitePhoenixCaptured bool
	blackPhoenixCaptured bool
}

// NewState builds the initial state from two placement sequences and the two
// sides' templates. The caller is responsible for non-overlapping placements;
// NewState assumes well-formed input and does not validate it.
func NewState(whiteSetup, blackSetup []Placement, whiteTpl, blackTpl Template) State {
	s := State{
		board:         make(map[hexboard.Hex]Piece, len(whiteSetup)+len(blackSetup)),
		current:       White,
		whiteTemplate: whiteTpl,
		blackTemplate: blackTpl,
		round:         1,
	}
	place := func(setup []Placement, owner Player) {
		for _, p := range setup {
			s.board[p.Pos] = Piece{Archetype: p.Archetype, Owner: owner, Facing: p.Facing}
			if piece.Get(p.Archetype).IsKing {
				if owner == White {
					s.whiteKingPos, s.whiteHasKing = p.Pos, true
				} else {
					s.blackKingPos, s.blackHasKing = p.Pos, true
				}
			}
		}
	}
	place(whiteSetup, White)
	place(blackSetup, Black)
	return s
}

// PieceAt returns the occupant of h, if any.
func (s State) PieceAt(h hexboard.Hex) (Piece, bool) {
	p, ok := s.board[h]
	return p, ok
}

// Pieces returns a defensive copy of the board contents.
func (s State) Pieces() map[hexboard.Hex]Piece {
	m := make(map[hexboard.Hex]Piece, len(s.board))
	for h, p := range s.board {
		m[h] = p
	}
	return m
}

// KingPos returns the position of p's king, if it is still on the board.
func (s State) KingPos(p Player) (hexboard.Hex, bool) {
	if p == White {
		return s.whiteKingPos, s.whiteHasKing
	}
	return s.blackKingPos, s.blackHasKing
}

// CurrentPlayer returns the side to move.
func (s State) CurrentPlayer() Player {
	return s.current
}

// Winner returns the winning side, if the game is terminal.
func (s State) Winner() (Player, bool) {
	return s.winner, s.hasWinner
}

// Round returns the current round number (increments each time White is
// about to move again).
func (s State) Round() int {
	return s.round
}

// ActionIndex returns how many actions the current player has already taken
// this turn, within their template.
func (s State) ActionIndex() int {
	return s.actionIndex
}

// LastPiecePos returns the position of the piece that performed the most
// recent action this turn, used to enforce Same/Different constraints.
func (s State) LastPiecePos() (hexboard.Hex, bool) {
	return s.lastPiecePos, s.hasLastPiecePos
}

// PhoenixCaptured reports whether p's phoenix is in the graveyard, eligible
// for Rebirth.
func (s State) PhoenixCaptured(p Player) bool {
	if p == White {
		return s.whitePhoenixCaptured
	}
	return s.blackPhoenixCaptured
}

// Template returns p's action template.
func (s State) Template(p Player) Template {
	if p == White {
		return s.whiteTemplate
	}
	return s.blackTemplate
}

// CurrentTemplate returns the template of the side to move.
func (s State) CurrentTemplate() Template {
	return s.Template(s.current)
}

// CurrentAction returns the action slot the current player is about to fill.
// It is only valid when the game is ongoing and the turn is not yet complete.
func (s State) CurrentAction() Action {
	actions := s.CurrentTemplate().Actions()
	return actions[s.actionIndex]
}
