package game

import "github.com/giblfiz/hexwar/pkg/piece"

// Mobility counts p's total movement destinations across all of their
// pieces — movement only, rotations are not counted — independent of whose
// turn it is or which action the template currently permits. Used by the
// evaluator (pkg/eval) for the mobility term.
func Mobility(s State, p Player) int {
	total := 0
	for hex, pc := range s.board {
		if pc.Owner != p {
			continue
		}
		arch := piece.Get(pc.Archetype)
		total += len(generateMovement(s, hex, pc, arch))
	}
	return total
}
