package engine

import (
	"context"

	"github.com/giblfiz/hexwar/pkg/game"
	"golang.org/x/sync/errgroup"
)

// Ruleset produces a fresh initial game.State. Implemented by pkg/ruleset.RuleSet;
// kept as a narrow interface here so pkg/engine never needs to import pkg/ruleset.
type Ruleset interface {
	NewState() game.State
}

// MatchResult aggregates the outcome of games_per_pair games between two
// rulesets, alternating which one plays white.
type MatchResult struct {
	Games int

	WinsAsWhite int // games won by whichever ruleset played white
	WinsAsBlack int
	Draws       int

	AWins int // ruleset a's wins, regardless of which color it played
	BWins int

	TotalRounds int
}

// AverageRounds returns the mean round count across all games played.
func (r MatchResult) AverageRounds() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalRounds) / float64(r.Games)
}

// PlayMatch runs gamesPerPair games between rulesets a and b, alternating
// which plays white (even game index: a as white), seeded per game by
// baseSeed+gameIndex, and aggregates the results (spec.md §4.8).
func PlayMatch(ctx context.Context, a, b Ruleset, cfg AIConfig, gamesPerPair, maxMoves int, baseSeed int64) MatchResult {
	var result MatchResult
	for i := 0; i < gamesPerPair; i++ {
		outcome := playOne(ctx, a, b, cfg, i, baseSeed, maxMoves)
		result = accumulate(result, outcome)
	}
	return result
}

// PlayMatchParallel runs the same games_per_pair schedule as PlayMatch but
// distributes the games across a worker pool; parallelism happens only
// across games, never inside a single search (spec.md §5's scheduling
// model: "parallelism happens at the match level").
func PlayMatchParallel(ctx context.Context, a, b Ruleset, cfg AIConfig, gamesPerPair, maxMoves int, baseSeed int64) (MatchResult, error) {
	outcomes := make([]gameOutcome, gamesPerPair)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < gamesPerPair; i++ {
		i := i
		g.Go(func() error {
			outcomes[i] = playOne(gctx, a, b, cfg, i, baseSeed, maxMoves)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MatchResult{}, err
	}

	var result MatchResult
	for _, o := range outcomes {
		result = accumulate(result, o)
	}
	return result, nil
}

// gameOutcome is the minimal per-game summary accumulate needs; kept
// separate from GameResult so parallel aggregation never touches full move
// histories across goroutines.
type gameOutcome struct {
	aIsWhite  bool
	hasWinner bool
	winner    game.Player
	rounds    int
}

func playOne(ctx context.Context, a, b Ruleset, cfg AIConfig, gameIndex int, baseSeed int64, maxMoves int) gameOutcome {
	aIsWhite := gameIndex%2 == 0

	white, black := a, b
	if !aIsWhite {
		white, black = b, a
	}

	seed := baseSeed + int64(gameIndex)
	whiteCfg, blackCfg := cfg, cfg
	whiteCfg.Seed = seed
	blackCfg.Seed = seed + 1

	gr := PlayGame(ctx, white.NewState(), whiteCfg, blackCfg, maxMoves, true)
	return gameOutcome{aIsWhite: aIsWhite, hasWinner: gr.HasWinner, winner: gr.Winner, rounds: gr.Rounds}
}

func accumulate(result MatchResult, o gameOutcome) MatchResult {
	result.Games++
	result.TotalRounds += o.rounds

	if !o.hasWinner {
		result.Draws++
		return result
	}

	if o.winner == game.White {
		result.WinsAsWhite++
	} else {
		result.WinsAsBlack++
	}

	aWon := (o.winner == game.White) == o.aIsWhite
	if aWon {
		result.AWins++
	} else {
		result.BWins++
	}
	return result
}
