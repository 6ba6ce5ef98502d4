package search

import (
	"context"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
)

// NullMoveR is the depth reduction applied by null-move pruning.
const NullMoveR = 2

// DefaultMaxMovesPerAction truncates the ordered candidate list searched at
// each node.
const DefaultMaxMovesPerAction = 15

// dangerRadius is the hex distance within which an enemy piece disqualifies
// the friendly side from null-move pruning.
const dangerRadius = 3

// nullWindowMargin is ε in the null-move search window (−β, −β+ε).
const nullWindowMargin = eval.Score(1)

// Config holds the tunables for a negamax search.
type Config struct {
	Heuristics        eval.Heuristics
	Noise             eval.Noise
	MaxMovesPerAction int // 0 == DefaultMaxMovesPerAction
}

func (c Config) maxMoves() int {
	if c.MaxMovesPerAction <= 0 {
		return DefaultMaxMovesPerAction
	}
	return c.MaxMovesPerAction
}

// Negamax implements alpha-beta pruned negamax search over game.State, with
// null-move pruning, late-move reductions, and depth-to-mate biasing.
//
// Recursive contract: Search returns the score from state.CurrentPlayer()'s
// perspective.
type Negamax struct {
	Config Config

	nodes uint64
}

// BestMove runs the negamax search from s to depth and returns the highest
// scoring legal move along with its score. Null-move pruning is never
// applied at this top level.
func (n *Negamax) BestMove(ctx context.Context, s game.State, depth int) (game.Move, eval.Score, error) {
	n.nodes = 1

	if _, ok := s.Winner(); ok {
		return game.Move{}, eval.EvaluateWithDepth(s, n.Config.Heuristics, depth), nil
	}

	moves := game.LegalMoves(s)
	ordered := game.OrderMoves(s, moves, n.Config.Heuristics.PieceValues)
	ordered.Truncate(n.Config.maxMoves())

	var (
		best      = eval.NegInf
		bestMove  game.Move
		haveMove  bool
		alpha     = eval.NegInf
		beta      = eval.Inf
		moveIndex = 0
	)
	for {
		move, ok := ordered.Next()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			return bestMove, best, ErrCancelled
		}

		score := n.searchChild(ctx, s, move, moveIndex, depth, alpha, beta)
		if !haveMove || score > best {
			best, bestMove, haveMove = score, move, true
		}
		alpha = eval.Max(alpha, score)
		moveIndex++
	}
	return bestMove, best, nil
}

// Nodes reports the number of internal nodes visited by the most recent
// search.
func (n *Negamax) Nodes() uint64 {
	return n.nodes
}

// search returns the score of s from s.CurrentPlayer()'s perspective.
func (n *Negamax) search(ctx context.Context, s game.State, depth int, alpha, beta eval.Score, allowNull bool) eval.Score {
	n.nodes++

	if ctx.Err() != nil {
		return alpha
	}
	if _, ok := s.Winner(); ok {
		return eval.EvaluateWithDepth(s, n.Config.Heuristics, depth)
	}
	if depth <= 0 {
		return eval.Evaluate(s, n.Config.Heuristics) + n.Config.Noise.Sample()
	}

	if allowNull && depth >= NullMoveR+1 && s.ActionIndex() == 0 && !inDanger(s) {
		null := game.NullMove(s)
		score := -n.search(ctx, null, depth-1-NullMoveR, -beta, -beta+nullWindowMargin, false)
		if score >= beta {
			return beta
		}
	}

	moves := game.LegalMoves(s)
	ordered := game.OrderMoves(s, moves, n.Config.Heuristics.PieceValues)
	ordered.Truncate(n.Config.maxMoves())

	best := eval.NegInf
	moveIndex := 0
	for {
		move, ok := ordered.Next()
		if !ok {
			break
		}

		score := n.searchChild(ctx, s, move, moveIndex, depth, alpha, beta)
		best = eval.Max(best, score)
		alpha = eval.Max(alpha, score)
		moveIndex++
		if alpha >= beta {
			break // β cutoff
		}
	}
	return best
}

// searchChild applies move to s and returns its score from s's
// perspective, applying the surrender shortcut and late-move reductions.
func (n *Negamax) searchChild(ctx context.Context, s game.State, move game.Move, moveIndex, depth int, alpha, beta eval.Score) eval.Score {
	if move.Kind == game.MoveSurrender {
		return eval.Crop(-eval.WinValue - eval.Score(depth) + 0.5)
	}

	child := game.Apply(s, move)
	turnChanged := child.CurrentPlayer() != s.CurrentPlayer()

	if !turnChanged {
		// Same side still acting within the turn: no perspective flip.
		return n.search(ctx, child, depth, alpha, beta, true)
	}

	capture := isCapture(s, move)
	if moveIndex >= 3 && depth >= 2 && !capture {
		reduced := -n.search(ctx, child, depth-2, -beta, -alpha, true)
		if reduced > alpha {
			return -n.search(ctx, child, depth-1, -beta, -alpha, true)
		}
		return reduced
	}
	return -n.search(ctx, child, depth-1, -beta, -alpha, true)
}

// inDanger reports whether the side to move in s cannot afford null-move
// pruning: its king is missing, or an enemy piece sits within dangerRadius
// of it.
func inDanger(s game.State) bool {
	me := s.CurrentPlayer()
	kingPos, ok := s.KingPos(me)
	if !ok {
		return true
	}
	opp := me.Opponent()
	for hex, p := range s.Pieces() {
		if p.Owner == opp && hex.Distance(kingPos) <= dangerRadius {
			return true
		}
	}
	return false
}

// isCapture reports whether m, applied to s, removes an occupant.
func isCapture(s game.State, m game.Move) bool {
	if m.Kind != game.MoveMovement {
		return false
	}
	_, occupied := s.PieceAt(m.To)
	return occupied
}
