package tournament_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/tournament"
	"github.com/stretchr/testify/assert"
)

func TestBuildMatchupsDepthTwo(t *testing.T) {
	specs := tournament.BuildMatchups(2, true)
	// Only tier {2}: just the equal-depth matchup (2 < 3, so no 1-ply; 2 < 4, no 2-ply).
	assert.Len(t, specs, 1)
	assert.Equal(t, tournament.MatchupSpec{D1: 2, D2: 2, NumGames: 20, Weight: 1.5}, specs[0])
}

func TestBuildMatchupsDepthFour(t *testing.T) {
	specs := tournament.BuildMatchups(4, true)
	// Tiers {2, 4}: tier 2 contributes only equal-depth (2<3); tier 4 (target)
	// contributes equal, 1-ply, and 2-ply.
	assert.Len(t, specs, 4)
	assert.Equal(t, 2, specs[0].D1)
	assert.Equal(t, 2, specs[0].D2)

	var sawOnePly, sawTwoPly bool
	for _, s := range specs {
		if s.D1 == 4 && s.D2 == 3 {
			sawOnePly = true
		}
		if s.D1 == 4 && s.D2 == 2 {
			sawTwoPly = true
		}
	}
	assert.True(t, sawOnePly)
	assert.True(t, sawTwoPly)
}

func TestBuildMatchupsDepthFiveIncludesGradientTiers(t *testing.T) {
	specs := tournament.BuildMatchups(5, false)
	// Tiers {2, 4, 5}. Tier 2: equal only. Tier 4: equal + 1-ply + 2-ply.
	// Tier 5 (target): equal + 1-ply + 2-ply.
	assert.Len(t, specs, 1+3+3)

	var sawTargetEqual bool
	for _, s := range specs {
		if s.D1 == 5 && s.D2 == 5 {
			sawTargetEqual = true
			// Full mode adds +0.3 on top of the reduced 1.5 base.
			assert.InDelta(t, 1.8, s.Weight, 1e-9)
			assert.Equal(t, 20, s.NumGames)
		}
	}
	assert.True(t, sawTargetEqual)
}

func TestBuildMatchupsNOverridesGamesPerMatchup(t *testing.T) {
	specs := tournament.BuildMatchupsN(2, true, 3)
	assert.Len(t, specs, 1)
	assert.Equal(t, 6, specs[0].NumGames) // target tier doubles 3 -> 6
}

func TestBuildMatchupsNZeroFallsBackToDefault(t *testing.T) {
	specs := tournament.BuildMatchupsN(2, true, 0)
	assert.Equal(t, tournament.BuildMatchups(2, true), specs)
}

func TestTargetTierOnlyKeepsOnlyTargetDepthMatchups(t *testing.T) {
	specs := tournament.BuildMatchups(4, true)
	filtered := tournament.TargetTierOnly(specs, 4)

	assert.Len(t, filtered, 3) // equal, 1-ply, 2-ply at the target tier
	for _, s := range filtered {
		assert.Equal(t, 4, s.Deeper())
	}
}

func TestMatchupSpecGapAndOrdering(t *testing.T) {
	s := tournament.MatchupSpec{D1: 5, D2: 3}
	assert.Equal(t, 2, s.Gap())
	assert.Equal(t, 5, s.Deeper())
	assert.Equal(t, 3, s.Shallower())
	assert.False(t, s.IsEqualDepth())
}
