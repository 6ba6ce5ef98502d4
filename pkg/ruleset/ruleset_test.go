package ruleset_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesetProducesPlayableState(t *testing.T) {
	rs := ruleset.Default()
	s := rs.NewState()

	wk, ok := s.KingPos(game.White)
	require.True(t, ok)
	assert.Equal(t, hexboard.New(0, 3), wk)

	bk, ok := s.KingPos(game.Black)
	require.True(t, ok)
	assert.Equal(t, hexboard.New(0, -3), bk)
	assert.Equal(t, game.White, s.CurrentPlayer())
}

func TestSignatureIgnoresPieceOrder(t *testing.T) {
	a2, _ := piece.ByCode("A2")
	a3, _ := piece.ByCode("A3")

	rs1 := ruleset.Default()
	rs1.WhitePieces = []piece.ID{a2, a3, a2, a3}

	rs2 := ruleset.Default()
	rs2.WhitePieces = []piece.ID{a3, a2, a3, a2}

	assert.Equal(t, ruleset.Signature(rs1), ruleset.Signature(rs2))
}

func TestSignatureDistinguishesDifferentKings(t *testing.T) {
	k2, _ := piece.ByCode("K2")
	rs1 := ruleset.Default()
	rs2 := ruleset.Default()
	rs2.WhiteKing = k2

	assert.NotEqual(t, ruleset.Signature(rs1), ruleset.Signature(rs2))
}

func TestNameIsDeterministicAndTwoWords(t *testing.T) {
	rs := ruleset.Default()
	name1 := ruleset.Name(rs)
	name2 := ruleset.Name(rs)
	assert.Equal(t, name1, name2)

	var hyphens int
	for _, c := range name1 {
		if c == '-' {
			hyphens++
		}
	}
	assert.Equal(t, 1, hyphens)
}

func TestNameDiffersForDifferentComposition(t *testing.T) {
	d5, _ := piece.ByCode("D5")
	rs1 := ruleset.Default()
	rs2 := ruleset.Default()
	rs2.WhitePieces = []piece.ID{d5, d5, d5, d5}

	assert.NotEqual(t, ruleset.Name(rs1), ruleset.Name(rs2))
}

func TestCloneIsIndependent(t *testing.T) {
	rs := ruleset.Default()
	clone := rs.Clone()
	a3, _ := piece.ByCode("A3")
	clone.WhitePieces[0] = a3

	assert.NotEqual(t, rs.WhitePieces[0], clone.WhitePieces[0])
}
