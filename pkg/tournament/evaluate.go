package tournament

import (
	"context"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/giblfiz/hexwar/pkg/eval"
	"github.com/giblfiz/hexwar/pkg/game"
)

// Config parameterizes one fitness evaluation: the depth the ruleset is
// ultimately meant to play at, the heuristics both sides evaluate with, the
// per-game move cap, the seed a run is reproducible from, and whether the
// matchup spec runs in reduced (fewer, cheaper) or full mode.
type Config struct {
	TargetDepth int
	Heuristics  eval.Heuristics
	MaxMoves    int
	BaseSeed    int64
	Reduced     bool

	// SingleDepth restricts evaluation to the target-depth tier's matchups,
	// skipping the lower-tier skill-gradient checks BuildMatchups otherwise
	// includes. False (the zero value) keeps the full multi-depth spread.
	SingleDepth bool

	// GamesPerMatchup overrides DefaultGamesPerMatchup. Zero keeps the default.
	GamesPerMatchup int
}

// MatchupResult is the raw tally from playing one MatchupSpec's games.
type MatchupResult struct {
	Spec MatchupSpec

	Games         int
	Draws         int
	WhiteWins     int
	BlackWins     int
	DeeperWins    int
	ShallowerWins int
	TotalRounds   int
}

func (r MatchupResult) whiteRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.WhiteWins) / float64(r.Games)
}

func (r MatchupResult) deeperWinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.DeeperWins) / float64(r.Games)
}

// Report is the aggregated fitness evaluation of a single ruleset.
type Report struct {
	Matchups []MatchupResult

	SkillGradient float64
	ColorFairness float64
	GameRichness  float64
	Decisiveness  float64
	SkillScore    float64
	Fitness       float64
}

// Evaluate plays every matchup in the spec built for cfg.TargetDepth against
// rs (self-play at varying depths) and aggregates the four fitness
// components into a final score (spec.md §4.9).
func Evaluate(ctx context.Context, rs engine.Ruleset, cfg Config) Report {
	specs := BuildMatchupsN(cfg.TargetDepth, cfg.Reduced, cfg.GamesPerMatchup)
	if cfg.SingleDepth {
		specs = TargetTierOnly(specs, cfg.TargetDepth)
	}

	results := make([]MatchupResult, len(specs))
	for i, spec := range specs {
		results[i] = playMatchup(ctx, rs, cfg, spec)
	}
	return aggregate(results)
}

// playMatchup plays spec.NumGames games of the ruleset against itself, the
// deeper side alternating colors by game-index parity, each side seeded
// independently (spec.md §4.9).
func playMatchup(ctx context.Context, rs engine.Ruleset, cfg Config, spec MatchupSpec) MatchupResult {
	result := MatchupResult{Spec: spec}
	deeper, shallower := spec.Deeper(), spec.Shallower()

	for i := 0; i < spec.NumGames; i++ {
		seed := cfg.BaseSeed + int64(i)*12345
		deeperIsWhite := i%2 == 0

		whiteDepth, blackDepth := shallower, deeper
		if deeperIsWhite {
			whiteDepth, blackDepth = deeper, shallower
		}

		white := engine.AIConfig{Depth: whiteDepth, Heuristics: cfg.Heuristics, Seed: seed}
		black := engine.AIConfig{Depth: blackDepth, Heuristics: cfg.Heuristics, Seed: seed + 7777}

		gr := engine.PlayGame(ctx, rs.NewState(), white, black, cfg.MaxMoves, true)

		result.Games++
		result.TotalRounds += gr.Rounds
		if !gr.HasWinner {
			result.Draws++
			continue
		}

		if gr.Winner == game.White {
			result.WhiteWins++
		} else {
			result.BlackWins++
		}

		deeperWon := (gr.Winner == game.White) == deeperIsWhite
		if deeperWon {
			result.DeeperWins++
		} else {
			result.ShallowerWins++
		}
	}
	return result
}

// aggregate folds the per-matchup tallies into the four fitness components,
// the skill-score ramp, the weighted fitness sum, and the two multiplicative
// penalties (spec.md §4.9).
func aggregate(results []MatchupResult) Report {
	report := Report{Matchups: results}

	report.SkillGradient = skillGradient(results)
	report.ColorFairness = colorFairness(results)
	report.GameRichness = gameRichness(results)
	report.Decisiveness = decisiveness(results)
	report.SkillScore = skillScoreFromGradient(report.SkillGradient)

	report.Fitness = 0.40*report.SkillScore + 0.35*report.ColorFairness +
		0.15*report.GameRichness + 0.10*report.Decisiveness

	if unfairEqualDepthMatchup(results) {
		report.Fitness *= 0.3
	}
	if report.SkillGradient < 0.80 {
		report.Fitness *= 0.5
	}
	return report
}

// skillGradient is the weighted mean of deeper_win_rate over every
// asymmetric matchup, weight 1+(gap-1)*0.5.
func skillGradient(results []MatchupResult) float64 {
	var sum, weightSum float64
	for _, r := range results {
		if r.Spec.IsEqualDepth() || r.Games == 0 {
			continue
		}
		w := 1 + float64(r.Spec.Gap()-1)*0.5
		sum += w * r.deeperWinRate()
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

// colorFairness averages 1-2*|white_rate-0.5| over equal-depth matchups,
// weighted by games played.
func colorFairness(results []MatchupResult) float64 {
	var sum float64
	var games int
	for _, r := range results {
		if !r.Spec.IsEqualDepth() || r.Games == 0 {
			continue
		}
		fairness := 1 - 2*absf(r.whiteRate()-0.5)
		sum += fairness * float64(r.Games)
		games += r.Games
	}
	if games == 0 {
		return 0
	}
	return sum / float64(games)
}

// gameRichness trapezoidally shapes the overall average round count: rises
// linearly to 1.0 over [0,10], flat at 1.0 over [10,60], decays to 0.5 over
// [60,160].
func gameRichness(results []MatchupResult) float64 {
	var rounds, games int
	for _, r := range results {
		rounds += r.TotalRounds
		games += r.Games
	}
	if games == 0 {
		return 0
	}
	avg := float64(rounds) / float64(games)

	switch {
	case avg <= 0:
		return 0
	case avg < 10:
		return avg / 10
	case avg <= 60:
		return 1.0
	case avg < 160:
		return 1.0 - 0.5*(avg-60)/100
	default:
		return 0.5
	}
}

// decisiveness is 1 minus the overall draw rate across every game played.
func decisiveness(results []MatchupResult) float64 {
	var draws, games int
	for _, r := range results {
		draws += r.Draws
		games += r.Games
	}
	if games == 0 {
		return 0
	}
	return 1 - float64(draws)/float64(games)
}

// skillScoreFromGradient applies the piecewise-linear ramp from skill
// gradient to skill score.
func skillScoreFromGradient(g float64) float64 {
	switch {
	case g >= 0.95:
		return 1.0
	case g >= 0.90:
		return 0.9 + (g-0.90)*2.0
	case g >= 0.80:
		return 0.6 + (g-0.80)*3.0
	case g >= 0.65:
		return 0.3 + (g-0.65)*2.0
	default:
		return g * 0.5
	}
}

// unfairEqualDepthMatchup reports whether any equal-depth matchup with at
// least 4 games shut out one color entirely.
func unfairEqualDepthMatchup(results []MatchupResult) bool {
	for _, r := range results {
		if !r.Spec.IsEqualDepth() || r.Games < 4 {
			continue
		}
		if r.WhiteWins == 0 || r.BlackWins == 0 {
			return true
		}
	}
	return false
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
