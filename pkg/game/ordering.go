package game

// Move ordering weights (not legality), consumed by pkg/search to sort the
// candidate list before alpha-beta descends it.
const (
	orderingPass       = -1000
	orderingSurrender  = -50000
	orderingRotate     = 0
	orderingSwap       = 50
	orderingRebirth    = 40
	captureValueWeight = 10
	centerBonusWeight  = 0.1
)

// OrderingScore ranks m for move ordering within state s. pieceValues is
// typically a Heuristics.PieceValues table from pkg/eval; OrderingScore takes
// the raw array rather than the Heuristics type to avoid an import cycle
// between pkg/game and pkg/eval.
func OrderingScore(s State, m Move, pieceValues [32]float32) float32 {
	switch m.Kind {
	case MovePass:
		return orderingPass
	case MoveSurrender:
		return orderingSurrender
	case MoveRotate:
		return orderingRotate
	case MoveSwap:
		return orderingSwap
	case MoveRebirth:
		return orderingRebirth
	case MoveMovement:
		score := float32(0)
		if occ, ok := s.PieceAt(m.To); ok {
			score += pieceValues[occ.Archetype] * captureValueWeight
		}
		delta := m.From.DistanceToCenter() - m.To.DistanceToCenter()
		score += float32(delta) * centerBonusWeight
		return score
	default:
		return 0
	}
}
