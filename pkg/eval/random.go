package eval

import "math/rand"

// Noise is a seeded uniform noise generator added to leaf evaluations so
// that otherwise-tied positions don't always resolve identically (spec.md
// §4.7 step 1: "uniform_noise(scale=0.1)"). All randomness in the search is
// seeded; Noise never consults global randomness.
type Noise struct {
	rand  *rand.Rand
	scale float32
}

// NewNoise returns a noise generator seeded deterministically.
func NewNoise(seed int64, scale float32) Noise {
	return Noise{rand: rand.New(rand.NewSource(seed)), scale: scale}
}

// Sample returns a uniform value in [-scale/2, scale/2].
func (n Noise) Sample() Score {
	if n.scale <= 0 {
		return 0
	}
	return Score(n.rand.Float32()*n.scale - n.scale/2)
}
