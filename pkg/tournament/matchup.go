// Package tournament evaluates a single ruleset's fitness by playing it
// against itself at a spread of search depths (C9). A shallower search
// stands in for a weaker opponent, so the spread exercises both the skill
// gradient between depths and the color fairness of the ruleset at a fixed
// depth.
package tournament

// DefaultGamesPerMatchup is the num_games carried by an equal/1-ply/2-ply
// matchup before target-tier doubling. Not pinned by the original design;
// chosen to match the original tournament crate's
// EvalConfig.games_per_opponent default.
const DefaultGamesPerMatchup = 10

// MatchupSpec is one (d1, d2) pairing of search depths to play games at,
// together with the number of games and the aggregation weight it carries.
type MatchupSpec struct {
	D1, D2   int
	NumGames int
	Weight   float64
}

// Gap is the ply distance between the two depths.
func (m MatchupSpec) Gap() int {
	return abs(m.D1 - m.D2)
}

// Deeper and Shallower split D1/D2 by depth.
func (m MatchupSpec) Deeper() int {
	if m.D1 > m.D2 {
		return m.D1
	}
	return m.D2
}

func (m MatchupSpec) Shallower() int {
	if m.D1 < m.D2 {
		return m.D1
	}
	return m.D2
}

// IsEqualDepth reports whether this matchup tests color fairness rather than
// skill gradient.
func (m MatchupSpec) IsEqualDepth() bool {
	return m.D1 == m.D2
}

// BuildMatchups constructs the matchup spec for target depth d (clamped to a
// minimum of 2): tiers = {2, 4, ...} union {d}, each tier always contributing
// its equal-depth matchup, tiers >= 3 a 1-ply gradient matchup, and tiers >= 4
// a 2-ply gradient matchup (spec.md §4.9). Games per matchup defaults to
// DefaultGamesPerMatchup.
func BuildMatchups(targetDepth int, reduced bool) []MatchupSpec {
	return BuildMatchupsN(targetDepth, reduced, DefaultGamesPerMatchup)
}

// BuildMatchupsN is BuildMatchups with an explicit games-per-matchup count
// (before the target tier's doubling), letting a caller trade evaluation
// fidelity for speed.
func BuildMatchupsN(targetDepth int, reduced bool, gamesPerMatchup int) []MatchupSpec {
	d := targetDepth
	if d < 2 {
		d = 2
	}
	if gamesPerMatchup <= 0 {
		gamesPerMatchup = DefaultGamesPerMatchup
	}

	seen := map[int]bool{}
	var tiers []int
	for t := 2; t < d; t += 2 {
		if !seen[t] {
			seen[t] = true
			tiers = append(tiers, t)
		}
	}
	if !seen[d] {
		tiers = append(tiers, d)
	}

	var specs []MatchupSpec
	for _, t := range tiers {
		isTarget := t == d
		wEqual, w1, w2 := tierWeights(t, isTarget, reduced)

		games := gamesPerMatchup
		if isTarget {
			games *= 2
		}

		specs = append(specs, MatchupSpec{D1: t, D2: t, NumGames: games, Weight: wEqual})
		if t >= 3 {
			specs = append(specs, MatchupSpec{D1: t, D2: t - 1, NumGames: games, Weight: w1})
		}
		if t >= 4 {
			specs = append(specs, MatchupSpec{D1: t, D2: t - 2, NumGames: games, Weight: w2})
		}
	}
	return specs
}

// tierWeights returns the (equal, 1-ply, 2-ply) weights for tier t. The
// target tier gets the fixed reduced-mode triple (1.5, 1.5, 2.5); full mode
// adds (0.3, 0.3, 0.5) on top. Other tiers scale with t (spec.md §4.9).
func tierWeights(t int, isTarget, reduced bool) (equal, ply1, ply2 float64) {
	if isTarget {
		equal, ply1, ply2 = 1.5, 1.5, 2.5
		if !reduced {
			equal += 0.3
			ply1 += 0.3
			ply2 += 0.5
		}
		return
	}
	tf := float64(t)
	return 0.6 + tf/10, 0.8 + tf/10, 1.2 + tf/10
}

// TargetTierOnly filters specs down to the matchups whose deeper side is the
// clamped target depth, dropping the lower-tier skill-gradient checks. Used
// when a caller wants one quick read at the evaluation depth rather than the
// full multi-depth spread BuildMatchups produces.
func TargetTierOnly(specs []MatchupSpec, targetDepth int) []MatchupSpec {
	d := targetDepth
	if d < 2 {
		d = 2
	}
	var out []MatchupSpec
	for _, s := range specs {
		if s.Deeper() == d {
			out = append(out, s)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
