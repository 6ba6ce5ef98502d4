package search

import (
	"context"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
)

// Minimax implements naive full-width minimax search, with no pruning, move
// ordering, or reductions. Useful for comparison and validation against
// Negamax on small test positions.
type Minimax struct {
	Config Config

	nodes uint64
}

// BestMove exhaustively searches every legal move to depth and returns the
// highest scoring one.
func (m *Minimax) BestMove(ctx context.Context, s game.State, depth int) (game.Move, eval.Score, error) {
	m.nodes = 1

	if _, ok := s.Winner(); ok {
		return game.Move{}, eval.EvaluateWithDepth(s, m.Config.Heuristics, depth), nil
	}

	moves := game.LegalMoves(s)
	var (
		best     = eval.NegInf
		bestMove game.Move
		haveMove bool
	)
	for _, move := range moves {
		if ctx.Err() != nil {
			return bestMove, best, ErrCancelled
		}
		score := m.searchChild(ctx, s, move, depth)
		if !haveMove || score > best {
			best, bestMove, haveMove = score, move, true
		}
	}
	return bestMove, best, nil
}

// Nodes reports the number of internal nodes visited by the most recent
// search.
func (m *Minimax) Nodes() uint64 {
	return m.nodes
}

func (m *Minimax) search(ctx context.Context, s game.State, depth int) eval.Score {
	m.nodes++

	if _, ok := s.Winner(); ok {
		return eval.EvaluateWithDepth(s, m.Config.Heuristics, depth)
	}
	if depth <= 0 {
		return eval.Evaluate(s, m.Config.Heuristics) + m.Config.Noise.Sample()
	}

	moves := game.LegalMoves(s)
	best := eval.NegInf
	for _, move := range moves {
		score := m.searchChild(ctx, s, move, depth)
		if score > best {
			best = score
		}
	}
	return best
}

func (m *Minimax) searchChild(ctx context.Context, s game.State, move game.Move, depth int) eval.Score {
	if move.Kind == game.MoveSurrender {
		return -eval.WinValue - eval.Score(depth) + 0.5
	}

	child := game.Apply(s, move)
	if child.CurrentPlayer() != s.CurrentPlayer() {
		return -m.search(ctx, child, depth-1)
	}
	return m.search(ctx, child, depth)
}
