// Package engine plays out hex-war games and matches by repeatedly invoking
// the negamax search (pkg/search) for whichever side is to move.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// noiseScale is the leaf-evaluation jitter named by spec's uniform_noise(scale=0.1).
const noiseScale = 0.1

// AIConfig configures one side's search for a game or match.
type AIConfig struct {
	Depth             int
	Heuristics        eval.Heuristics
	MaxMovesPerAction int // 0 == search.DefaultMaxMovesPerAction
	TimeLimit         lang.Optional[time.Duration]
	Seed              int64
}

func (c AIConfig) String() string {
	if v, ok := c.TimeLimit.V(); ok {
		return fmt.Sprintf("{depth=%v, seed=%v, time=%v}", c.Depth, c.Seed, v)
	}
	return fmt.Sprintf("{depth=%v, seed=%v, time=unlimited}", c.Depth, c.Seed)
}

// GameResult is the outcome of one PlayGame call.
type GameResult struct {
	Final               game.State
	Winner              game.Player
	HasWinner           bool
	Moves               []game.Move
	Rounds              int
	ResolvedByProximity bool
	Timeout             bool // a side exceeded its TimeLimit
}

// PlayGame repeatedly picks the best move for the side to move, using C7 with
// a per-side seed, and applies it, stopping when the game reaches a winner or
// maxMoves actions have been played. If forceResolution is set and the game
// is still unresolved at that point, it is settled by king proximity
// (spec.md §4.5/§4.8).
func PlayGame(ctx context.Context, initial game.State, white, black AIConfig, maxMoves int, forceResolution bool) GameResult {
	s := initial
	var history []game.Move

	whiteNoise := eval.NewNoise(white.Seed, noiseScale)
	blackNoise := eval.NewNoise(black.Seed, noiseScale)
	var elapsed [2]time.Duration

	timedOut := false
	for i := 0; i < maxMoves; i++ {
		if _, ok := s.Winner(); ok {
			break
		}
		if contextx.IsCancelled(ctx) {
			break
		}

		current := s.CurrentPlayer()
		cfg, noise := white, whiteNoise
		if current == game.Black {
			cfg, noise = black, blackNoise
		}

		if limit, ok := cfg.TimeLimit.V(); ok && elapsed[current] >= limit {
			s = game.Apply(s, game.Move{Kind: game.MoveSurrender})
			timedOut = true
			break
		}

		start := time.Now()
		move, _, err := search.BestMove(ctx, s, cfg.Depth, search.Config{
			Heuristics:        cfg.Heuristics,
			Noise:             noise,
			MaxMovesPerAction: cfg.MaxMovesPerAction,
		})
		elapsed[current] += time.Since(start)
		if err != nil {
			logw.Errorf(ctx, "search error for %v: %v", current, err)
			break
		}

		s = game.Apply(s, move)
		history = append(history, move)
	}

	resolved := false
	if _, ok := s.Winner(); !ok && forceResolution {
		s = game.ResolveByProximity(s)
		resolved = true
	}

	winner, hasWinner := s.Winner()
	return GameResult{
		Final:               s,
		Winner:              winner,
		HasWinner:           hasWinner,
		Moves:               history,
		Rounds:              s.Round(),
		ResolvedByProximity: resolved,
		Timeout:             timedOut,
	}
}
