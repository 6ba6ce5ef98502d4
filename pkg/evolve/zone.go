package evolve

import "github.com/giblfiz/hexwar/pkg/hexboard"

// zone enumerates the hexes a side may place a non-king piece on: rows
// r ∈ [1,3] on white's side (the mirror r ∈ [-3,-1] on black's), excluding
// that side's default king hex (spec.md §4.11).
func zone(white bool) []hexboard.Hex {
	kingDefault := hexboard.New(0, 3)
	sign := int8(1)
	if !white {
		kingDefault = hexboard.New(0, -3)
		sign = -1
	}

	var hexes []hexboard.Hex
	for row := int8(1); row <= 3; row++ {
		r := row * sign
		for q := int8(-hexboard.Radius); q <= hexboard.Radius; q++ {
			h := hexboard.New(q, r)
			if !h.IsValid() || h == kingDefault {
				continue
			}
			hexes = append(hexes, h)
		}
	}
	return hexes
}

// emptyZoneHexes returns the zone hexes not already occupied by positions.
func emptyZoneHexes(white bool, positions []hexboard.Hex) []hexboard.Hex {
	occupied := make(map[hexboard.Hex]bool, len(positions))
	for _, p := range positions {
		occupied[p] = true
	}

	var empty []hexboard.Hex
	for _, h := range zone(white) {
		if !occupied[h] {
			empty = append(empty, h)
		}
	}
	return empty
}
