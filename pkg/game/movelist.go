package game

import (
	"container/heap"
	"fmt"
)

// Priority is a move ordering priority: higher sorts first.
type Priority float32

// MoveList is a move priority queue for move ordering, generalized from a
// chess move-ordering heap to game.Move and OrderingScore-derived priorities.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with priorities assigned by fn.
func NewMoveList(moves []Move, fn func(m Move) Priority) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move: the highest-priority move remaining in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

// Size returns the number of moves remaining in the list.
func (ml *MoveList) Size() int {
	return ml.h.Len()
}

// Truncate discards all but the n highest-priority moves.
func (ml *MoveList) Truncate(n int) {
	if n < 0 || ml.Size() <= n {
		return
	}
	kept := make(moveHeap, 0, n)
	for len(kept) < n {
		if ml.Size() == 0 {
			break
		}
		kept = append(kept, heap.Pop(&ml.h).(elm))
	}
	heap.Init(&kept)
	ml.h = kept
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(elm))
}

func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	ret := old[n-1]
	*h = old[0 : n-1]
	return ret
}

// OrderMoves builds a ranked MoveList for moves in s, scored by OrderingScore
// against pieceValues (typically a Heuristics.PieceValues table from pkg/eval).
func OrderMoves(s State, moves []Move, pieceValues [32]float32) *MoveList {
	return NewMoveList(moves, func(m Move) Priority {
		return Priority(OrderingScore(s, m, pieceValues))
	})
}
