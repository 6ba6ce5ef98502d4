// Package eval implements the king-of-the-hill position evaluator: material
// plus centrality plus mobility plus a cubic-urgency KOTH term.
package eval

import (
	"fmt"

	"github.com/giblfiz/hexwar/pkg/game"
)

// Score is a signed position score, positive favors the player it is
// reported from the perspective of. Kept well clear of +/-Inf so that
// WinValue+depth mate biasing never crops at the boundary.
type Score float32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1
)

// WinValue is the terminal score magnitude (spec.md's "±WIN_VALUE (≈1e5)").
const WinValue Score = 100000

func (s Score) String() string {
	return fmt.Sprintf("%.2f", s)
}

// Unit returns the signed unit for a player: 1 for White, -1 for Black.
func Unit(p game.Player) Score {
	if p == game.White {
		return 1
	}
	return -1
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	return Max(MinScore, Min(MaxScore, s))
}

// Max returns the larger of a, b.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of a, b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
