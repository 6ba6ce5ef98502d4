package record

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(initial game.State) engine.GameResult {
	return engine.GameResult{
		Final:     initial,
		Winner:    game.White,
		HasWinner: true,
		Moves: []game.Move{
			{Kind: game.MoveMovement, From: hexboard.New(0, 3), To: hexboard.New(0, 2), NewFacing: 0},
			{Kind: game.MoveSurrender},
		},
		Rounds: 3,
	}
}

func TestFromGameResultBuildsRecordWithWinnerAndMoves(t *testing.T) {
	rs := ruleset.Default()
	initial := rs.NewState()
	result := sampleResult(initial)

	rec := FromGameResult(rs, initial, result)

	require.NotNil(t, rec.Ruleset)
	assert.Equal(t, rs.WhiteKing, rec.Ruleset.WhiteKing)
	require.NotNil(t, rec.Winner)
	assert.Equal(t, game.White, *rec.Winner)
	assert.Len(t, rec.Moves, 2)
	assert.Equal(t, "decisive", rec.EndReason)
	require.NotNil(t, rec.InitialState)
}

func TestGameRecordEncodeDecodeRoundTrip(t *testing.T) {
	rs := ruleset.Default()
	initial := rs.NewState()
	result := sampleResult(initial)
	rec := FromGameResult(rs, initial, result)

	data, err := Encode(rec)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)

	require.NotNil(t, back.Ruleset)
	assert.Equal(t, rec.Ruleset.WhiteKing, back.Ruleset.WhiteKing)
	assert.Equal(t, ruleset.Signature(*rec.Ruleset), ruleset.Signature(*back.Ruleset))
	require.NotNil(t, back.Winner)
	assert.Equal(t, *rec.Winner, *back.Winner)
	require.Len(t, back.Moves, len(rec.Moves))
	assert.Equal(t, rec.Moves[0].ActionType, back.Moves[0].ActionType)
	assert.Equal(t, rec.EndReason, back.EndReason)
}

func TestGameRecordDecodeWithoutRulesetOrWinner(t *testing.T) {
	data := []byte(`{"moves": [{"action_type": "PASS"}], "winner": null}`)

	rec, err := Decode(data)
	require.NoError(t, err)
	assert.Nil(t, rec.Ruleset)
	assert.Nil(t, rec.Winner)
	require.Len(t, rec.Moves, 1)
	assert.Equal(t, "PASS", rec.Moves[0].ActionType)
}

func TestGameRecordDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{not valid json`))
	assert.Error(t, err)
}

func TestGameRecordDecodeRejectsUnknownWinner(t *testing.T) {
	data := []byte(`{"moves": [], "winner": "purple"}`)
	_, err := Decode(data)
	assert.Error(t, err)
}
