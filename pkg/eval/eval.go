package eval

import (
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// Heuristics are the tunable weights driving Evaluate. King values are
// handled via terminal scoring, not PieceValues (kings are left at 0).
type Heuristics struct {
	PieceValues    [piece.NumArchetypes]float32
	CenterWeight   float32
	MobilityWeight float32
}

// Default mirrors the original engine's pre-Triton baseline heuristics,
// extended with Triton/Triskelion values on the same capability scale.
func Default() Heuristics {
	var v [piece.NumArchetypes]float32
	for i := range v {
		v[i] = 1.0
	}
	v[0], v[1], v[2], v[3], v[4] = 1.0, 3.0, 2.0, 2.0, 1.5
	v[5], v[6], v[7], v[8] = 2.5, 3.0, 5.0, 4.0
	v[9], v[10], v[11] = 3.5, 5.5, 7.0
	v[12], v[13], v[14], v[15], v[16] = 4.0, 5.0, 5.0, 6.0, 9.0
	v[17], v[18], v[19], v[20] = 4.0, 5.0, 5.0, 6.0
	v[21], v[22], v[23], v[24] = 4.0, 4.0, 3.5, 2.0
	for i := 25; i < 30; i++ {
		v[i] = 0.0
	}
	v[30], v[31] = 4.5, 6.5 // Triton, Triskelion: interpolated onto the same scale

	return Heuristics{PieceValues: v, CenterWeight: 0.5, MobilityWeight: 0.1}
}

// Omega is the "material is everything" zodiac preset: extreme piece values,
// lower center weight to compensate.
func Omega() Heuristics {
	var v [piece.NumArchetypes]float32
	for i := range v {
		v[i] = 1.0
	}
	v[0], v[1], v[2], v[3], v[4] = 5.0, 10.0, 7.0, 7.0, 5.5
	v[5], v[6], v[7], v[8] = 8.0, 9.0, 14.0, 10.0
	v[9], v[10], v[11] = 10.0, 14.0, 16.0
	v[12], v[13], v[14], v[15], v[16] = 12.0, 14.0, 14.0, 15.0, 20.0
	v[17], v[18], v[19], v[20] = 10.0, 11.0, 11.0, 12.0
	v[21], v[22], v[23], v[24] = 9.0, 9.5, 9.0, 7.0
	for i := 25; i < 30; i++ {
		v[i] = 0.0
	}
	v[30], v[31] = 9.0, 12.0

	return Heuristics{PieceValues: v, CenterWeight: 1.0, MobilityWeight: 0.01}
}

// Apex is the "optimized ratios" zodiac preset: all-direction pieces valued
// at a premium.
func Apex() Heuristics {
	var v [piece.NumArchetypes]float32
	for i := range v {
		v[i] = 1.0
	}
	v[0], v[1], v[2], v[3], v[4] = 3.0, 9.0, 5.0, 5.0, 3.5
	v[5], v[6], v[7], v[8] = 6.0, 7.0, 13.0, 8.0
	v[9], v[10], v[11] = 8.0, 11.0, 15.0
	v[12], v[13], v[14], v[15], v[16] = 9.0, 11.0, 11.0, 12.0, 17.0
	v[17], v[18], v[19], v[20] = 8.0, 10.0, 9.0, 11.0
	v[21], v[22], v[23], v[24] = 7.0, 7.5, 7.0, 5.0
	for i := 25; i < 30; i++ {
		v[i] = 0.0
	}
	v[30], v[31] = 7.0, 11.0

	return Heuristics{PieceValues: v, CenterWeight: 1.25, MobilityWeight: 0.02}
}

// Zenith is the "maximum everything" zodiac preset: high material and the
// maximal center_weight=1.5, mobility_weight=0 configuration named in
// spec.md §9's Open Questions.
func Zenith() Heuristics {
	var v [piece.NumArchetypes]float32
	for i := range v {
		v[i] = 1.0
	}
	v[0], v[1], v[2], v[3], v[4] = 5.0, 10.0, 6.5, 6.5, 5.0
	v[5], v[6], v[7], v[8] = 7.5, 8.5, 14.0, 10.0
	v[9], v[10], v[11] = 10.0, 13.0, 16.0
	v[12], v[13], v[14], v[15], v[16] = 11.0, 13.0, 13.0, 14.0, 19.0
	v[17], v[18], v[19], v[20] = 9.5, 10.5, 10.5, 12.0
	v[21], v[22], v[23], v[24] = 8.0, 9.0, 8.5, 6.0
	for i := 25; i < 30; i++ {
		v[i] = 0.0
	}
	v[30], v[31] = 8.5, 12.0

	return Heuristics{PieceValues: v, CenterWeight: 1.5, MobilityWeight: 0.0}
}

const mobilityElideThreshold = 1e-3

// koth returns the cubic-urgency king-of-the-hill advantage term for s,
// from the perspective of s.CurrentPlayer().
func koth(s game.State) Score {
	current := s.CurrentPlayer()
	opponent := current.Opponent()

	urgency := Score(s.Round()) / 50
	if urgency > 1 {
		urgency = 1
	}
	urgency = urgency * urgency * urgency * 50

	myPos, myOK := s.KingPos(current)
	oppPos, oppOK := s.KingPos(opponent)

	var advantage Score
	switch {
	case !myOK && !oppOK:
		advantage = 0
	case !myOK:
		advantage = -4
	case !oppOK:
		advantage = 4
	default:
		advantage = Score(oppPos.DistanceToCenter() - myPos.DistanceToCenter())
	}
	return urgency * advantage
}

// Evaluate scores s from the perspective of s.CurrentPlayer(). Terminal
// states short-circuit to ±WinValue.
func Evaluate(s game.State, h Heuristics) Score {
	current := s.CurrentPlayer()

	if winner, ok := s.Winner(); ok {
		if winner == current {
			return WinValue
		}
		return -WinValue
	}

	var whiteScore Score
	for hex, p := range s.Pieces() {
		value := Score(h.PieceValues[p.Archetype]) + Score(h.CenterWeight)*(4-Score(hex.DistanceToCenter()))
		whiteScore += Unit(p.Owner) * value
	}
	score := whiteScore * Unit(current)

	if abs32(h.MobilityWeight) >= mobilityElideThreshold {
		myMobility := game.Mobility(s, current)
		oppMobility := game.Mobility(s, current.Opponent())
		score += Score(h.MobilityWeight) * Score(myMobility-oppMobility)
	}

	score += koth(s)

	return score
}

// EvaluateWithDepth adds a depth bias to terminal scores so that shorter
// mates outrank longer ones.
func EvaluateWithDepth(s game.State, h Heuristics, depth int) Score {
	score := Evaluate(s, h)
	if winner, ok := s.Winner(); ok {
		if winner == s.CurrentPlayer() {
			return score + Score(depth)
		}
		return score - Score(depth)
	}
	return score
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
