package hexboard_test

import (
	"testing"

	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, hexboard.New(0, 0).IsValid())
	assert.True(t, hexboard.New(4, 0).IsValid())
	assert.True(t, hexboard.New(0, 4).IsValid())
	assert.True(t, hexboard.New(-4, 0).IsValid())
	assert.False(t, hexboard.New(5, 0).IsValid())
	assert.False(t, hexboard.New(3, 3).IsValid()) // q+r = 6 > 4
}

func TestDistanceToCenter(t *testing.T) {
	assert.Equal(t, 0, hexboard.New(0, 0).DistanceToCenter())
	assert.Equal(t, 1, hexboard.New(1, 0).DistanceToCenter())
	assert.Equal(t, 4, hexboard.New(2, 2).DistanceToCenter())
}

func TestDistance(t *testing.T) {
	a := hexboard.New(0, 0)
	b := hexboard.New(2, -2)
	assert.Equal(t, 2, a.Distance(b))
	assert.Equal(t, 0, a.Distance(a))
}

func TestNeighbor(t *testing.T) {
	center := hexboard.New(0, 0)
	for dir := uint8(0); dir < 6; dir++ {
		n := center.Neighbor(dir)
		assert.Equal(t, 1, center.Distance(n))
	}
}

func TestIterRing(t *testing.T) {
	var onRing []hexboard.Hex
	hexboard.IterRing(hexboard.New(0, 0), 2, func(h hexboard.Hex) {
		onRing = append(onRing, h)
	})
	assert.Len(t, onRing, 12) // full ring of radius 2 fits inside radius-4 board
	for _, h := range onRing {
		assert.Equal(t, 2, h.Distance(hexboard.New(0, 0)))
	}
}

func TestIterRingZero(t *testing.T) {
	var hit []hexboard.Hex
	hexboard.IterRing(hexboard.New(1, 1), 0, func(h hexboard.Hex) {
		hit = append(hit, h)
	})
	assert.Equal(t, []hexboard.Hex{hexboard.New(1, 1)}, hit)
}

func TestForwardArcContainsForward(t *testing.T) {
	from := hexboard.New(0, 0)
	to := from.Neighbor(hexboard.AbsoluteDirection(0, hexboard.Forward))
	assert.True(t, hexboard.ForwardArcContains(0, from, to))
}

func TestForwardArcExcludesBackward(t *testing.T) {
	from := hexboard.New(0, 0)
	to := from.Neighbor(hexboard.AbsoluteDirection(0, hexboard.Backward))
	assert.False(t, hexboard.ForwardArcContains(0, from, to))
}
