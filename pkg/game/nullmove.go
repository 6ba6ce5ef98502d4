package game

// NullMove returns the state reached by passing the turn without taking any
// action: flips the side to move, resets the action index, clears the
// last-acted-piece position, and advances the round if play returns to
// White. Used only by the search's null-move pruning heuristic — it is never
// a legal move a player can choose, so it bypasses Apply entirely.
func NullMove(s State) State {
	ns := s
	ns.current = s.current.Opponent()
	ns.actionIndex = 0
	ns.hasLastPiecePos = false
	if ns.current == White {
		ns.round++
	}
	return ns
}
