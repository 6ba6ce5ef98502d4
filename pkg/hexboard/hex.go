// Package hexboard implements axial hex-grid geometry for a radius-4 board.
package hexboard

import (
	"encoding/json"
	"fmt"
)

// Radius is the board radius: the maximum distance from center to edge.
const Radius = 4

// Hex is an axial hex coordinate.
type Hex struct {
	Q, R int8
}

// New returns the hex at (q, r).
func New(q, r int8) Hex {
	return Hex{Q: q, R: r}
}

// MarshalJSON encodes h as the two-element [q, r] array the ruleset file
// format uses (spec.md §6).
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int8{h.Q, h.R})
}

// UnmarshalJSON decodes a [q, r] array into h.
func (h *Hex) UnmarshalJSON(b []byte) error {
	var pair [2]int8
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("hexboard: invalid hex %s: %w", b, err)
	}
	h.Q, h.R = pair[0], pair[1]
	return nil
}

// IsValid reports whether h lies on the radius-4 board.
func (h Hex) IsValid() bool {
	return abs8(h.Q) <= Radius && abs8(h.R) <= Radius && abs8(h.Q+h.R) <= Radius
}

// DistanceToCenter returns the hex distance from h to the origin.
func (h Hex) DistanceToCenter() int {
	return (abs(int(h.Q)) + abs(int(h.R)) + abs(int(h.Q+h.R))) / 2
}

// Distance returns the hex distance between h and o.
func (h Hex) Distance(o Hex) int {
	dq := abs(int(h.Q) - int(o.Q))
	dr := abs(int(h.R) - int(o.R))
	ds := abs(int(h.Q+h.R) - int(o.Q+o.R))
	return (dq + dr + ds) / 2
}

// Neighbor returns the hex adjacent to h in absolute direction dir (0-5, mod 6).
func (h Hex) Neighbor(dir uint8) Hex {
	d := Directions[int(dir)%6]
	return Hex{Q: h.Q + d.Q, R: h.R + d.R}
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Directions holds the six neighbor vectors in canonical order: N, NE, SE, S, SW, NW.
var Directions = [6]Hex{
	{0, -1}, // N
	{1, -1}, // NE
	{1, 0},  // SE
	{0, 1},  // S
	{-1, 1}, // SW
	{-1, 0}, // NW
}

// Relative direction indices, added to a piece's facing to get an absolute direction.
const (
	Forward = uint8(iota)
	ForwardRight
	BackRight
	Backward
	BackLeft
	ForwardLeft
)

// AbsoluteDirection returns the absolute direction (0-5) for a facing plus a relative direction.
func AbsoluteDirection(facing, relative uint8) uint8 {
	return (facing + relative) % 6
}

// IterRing calls fn for every valid hex at exact hex-distance radius from center.
func IterRing(center Hex, radius int, fn func(Hex)) {
	if radius == 0 {
		if center.IsValid() {
			fn(center)
		}
		return
	}
	// Walk the ring starting at center + radius*Directions[4] (SW), turning at each corner.
	h := Hex{Q: center.Q + Directions[4].Q*int8(radius), R: center.R + Directions[4].R*int8(radius)}
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			if h.IsValid() {
				fn(h)
			}
			h = h.Neighbor(uint8(side))
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func abs8(n int8) int8 {
	if n < 0 {
		return -n
	}
	return n
}
