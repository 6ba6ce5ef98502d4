// Package search implements the negamax search engine: alpha-beta pruning
// with move ordering, null-move pruning, late-move reductions, and
// depth-to-mate score biasing, evaluated by pkg/eval.
package search

import (
	"context"
	"errors"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
)

// ErrCancelled is returned when ctx is done before a search completes.
var ErrCancelled = errors.New("search: cancelled")

// Searcher picks the best move for the side to move in a state.
type Searcher interface {
	BestMove(ctx context.Context, s game.State, depth int) (game.Move, eval.Score, error)
	Nodes() uint64
}

// BestMove runs a Negamax search from s to depth using cfg and returns the
// chosen move and its score. It is the engine's standard entry point; use
// Minimax directly only for validating Negamax against small positions.
func BestMove(ctx context.Context, s game.State, depth int, cfg Config) (game.Move, eval.Score, error) {
	n := &Negamax{Config: cfg}
	return n.BestMove(ctx, s, depth)
}
