package evolve

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/stretchr/testify/assert"
)

func TestZoneExcludesDefaultKingHex(t *testing.T) {
	for _, h := range zone(true) {
		assert.NotEqual(t, hexboard.New(0, 3), h)
	}
	for _, h := range zone(false) {
		assert.NotEqual(t, hexboard.New(0, -3), h)
	}
}

func TestZoneRowsAreMirrored(t *testing.T) {
	white := zone(true)
	black := zone(false)
	assert.Equal(t, len(white), len(black))

	for _, h := range white {
		assert.True(t, h.R >= 1 && h.R <= 3)
	}
	for _, h := range black {
		assert.True(t, h.R >= -3 && h.R <= -1)
	}
}

func TestEmptyZoneHexesExcludesOccupied(t *testing.T) {
	all := zone(true)
	occupied := []hexboard.Hex{all[0], all[1]}
	empty := emptyZoneHexes(true, occupied)

	assert.Equal(t, len(all)-2, len(empty))
	for _, h := range empty {
		assert.NotEqual(t, all[0], h)
		assert.NotEqual(t, all[1], h)
	}
}
