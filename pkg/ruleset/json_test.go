package ruleset_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatDoc = `{
  "name": "iron-wolf",
  "white_king": "K1",
  "white_pieces": ["A2", "A2"],
  "white_positions": [[0,3], [-1,3], [1,2]],
  "white_facings": [0, 0, 0],
  "white_template": "E",
  "black_king": "K1",
  "black_pieces": ["A2", "A2"],
  "black_positions": [[0,-3], [1,-3], [-1,-2]],
  "black_facings": [3, 3, 3],
  "black_template": "E"
}`

const numericDoc = `{
  "white_king": 25,
  "white_pieces": [1, 1],
  "white_positions": [[0,3], [-1,3], [1,2]],
  "white_facings": [0, 0, 0],
  "white_template": "E",
  "black_king": 25,
  "black_pieces": [1, 1],
  "black_positions": [[0,-3], [1,-3], [-1,-2]],
  "black_facings": [3, 3, 3],
  "black_template": "E"
}`

const envelopeDoc = `{
  "name": "wrapped",
  "ruleset": ` + flatDoc + `
}`

func TestDecodeFlatDocWithCodes(t *testing.T) {
	rs, err := ruleset.Decode([]byte(flatDoc))
	require.NoError(t, err)
	assert.Equal(t, "iron-wolf", rs.Name)
	assert.Len(t, rs.WhitePieces, 2)
}

func TestDecodeFlatDocWithNumericArchetypes(t *testing.T) {
	rs, err := ruleset.Decode([]byte(numericDoc))
	require.NoError(t, err)
	assert.Len(t, rs.WhitePieces, 2)
}

func TestDecodeEnvelopeDoc(t *testing.T) {
	rs, err := ruleset.Decode([]byte(envelopeDoc))
	require.NoError(t, err)
	assert.Equal(t, "wrapped", rs.Name)
}

func TestDecodeRejectsUnknownArchetypeCode(t *testing.T) {
	bad := `{"white_king":"ZZ","white_pieces":[],"white_positions":[[0,3]],"white_facings":[0],"white_template":"E","black_king":"K1","black_pieces":[],"black_positions":[[0,-3]],"black_facings":[3],"black_template":"E"}`
	_, err := ruleset.Decode([]byte(bad))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := ruleset.Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeRejectsMissingPositions(t *testing.T) {
	bad := `{"white_king":"K1","white_pieces":[],"white_positions":[],"white_facings":[],"white_template":"E","black_king":"K1","black_pieces":[],"black_positions":[[0,-3]],"black_facings":[3],"black_template":"E"}`
	_, err := ruleset.Decode([]byte(bad))
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rs, err := ruleset.Decode([]byte(flatDoc))
	require.NoError(t, err)

	data, err := ruleset.Encode(rs)
	require.NoError(t, err)

	rs2, err := ruleset.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, rs.WhiteKing, rs2.WhiteKing)
	assert.Equal(t, rs.WhitePieces, rs2.WhitePieces)
	assert.Equal(t, rs.WhitePositions, rs2.WhitePositions)
}
