// Package piece holds the immutable 32-archetype catalog shared by every ruleset.
package piece

import "github.com/giblfiz/hexwar/pkg/hexboard"

// MoveKind classifies how an archetype travels.
type MoveKind uint8

const (
	Step MoveKind = iota
	Slide
	Jump
	NoMove // Warper: cannot move normally, only swap.
)

// Special marks a unique ability beyond plain movement/rotation.
type Special uint8

const (
	NoSpecial Special = iota
	SwapMove              // Warper: swaps with an ally instead of moving.
	SwapRotate            // Shifter: swaps with an ally on a rotate action.
	Rebirth               // Phoenix: can return from the graveyard.
	Phased                // Ghost: cannot capture or be captured.
)

// Direction bitmask, relative to the piece's facing.
const (
	DirF  = 1 << hexboard.Forward
	DirFR = 1 << hexboard.ForwardRight
	DirBR = 1 << hexboard.BackRight
	DirB  = 1 << hexboard.Backward
	DirBL = 1 << hexboard.BackLeft
	DirFL = 1 << hexboard.ForwardLeft

	AllDirs     = DirF | DirFR | DirBR | DirB | DirBL | DirFL
	ForwardArc  = DirF | DirFL | DirFR
	Diagonal    = DirFL | DirFR | DirBL | DirBR
	ForwardBack = DirF | DirB
	Trident     = DirFL | DirFR | DirB // three non-adjacent directions
)

// ID indexes into Catalog. Stable across the process lifetime.
type ID uint8

// NumArchetypes is the catalog size (resolves the spec's 30-vs-32 open question in favor of 32,
// matching the Triton/Triskelion revision of the original source).
const NumArchetypes = 32

// Archetype is an immutable piece definition.
type Archetype struct {
	Code       string
	Name       string
	Move       MoveKind
	Range      int
	Directions uint8
	Special    Special
	IsKing     bool
}

// Catalog is the full, process-wide, immutable set of 32 archetypes.
var Catalog = [NumArchetypes]Archetype{
	// Step-1
	{Code: "A1", Name: "Pawn", Move: Step, Range: 1, Directions: DirF},
	{Code: "A2", Name: "Guard", Move: Step, Range: 1, Directions: AllDirs},
	{Code: "A3", Name: "Scout", Move: Step, Range: 1, Directions: ForwardArc},
	{Code: "A4", Name: "Crab", Move: Step, Range: 1, Directions: DirFL | DirFR | DirB},
	{Code: "A5", Name: "Flanker", Move: Step, Range: 1, Directions: DirFL | DirFR},
	// Step-2
	{Code: "B1", Name: "Strider", Move: Step, Range: 2, Directions: DirF},
	{Code: "B2", Name: "Dancer", Move: Step, Range: 2, Directions: DirFL | DirFR},
	{Code: "B3", Name: "Ranger", Move: Step, Range: 2, Directions: AllDirs},
	{Code: "B4", Name: "Hound", Move: Step, Range: 2, Directions: ForwardArc},
	// Step-3
	{Code: "C1", Name: "Lancer", Move: Step, Range: 3, Directions: DirF},
	{Code: "C2", Name: "Dragoon", Move: Step, Range: 3, Directions: ForwardArc},
	{Code: "C3", Name: "Courser", Move: Step, Range: 3, Directions: AllDirs},
	// Sliders
	{Code: "D1", Name: "Pike", Move: Slide, Range: 99, Directions: DirF},
	{Code: "D2", Name: "Rook", Move: Slide, Range: 99, Directions: ForwardBack},
	{Code: "D3", Name: "Bishop", Move: Slide, Range: 99, Directions: Diagonal},
	{Code: "D4", Name: "Chariot", Move: Slide, Range: 99, Directions: ForwardArc},
	{Code: "D5", Name: "Queen", Move: Slide, Range: 99, Directions: AllDirs},
	// Jumpers
	{Code: "E1", Name: "Knight", Move: Jump, Range: 2, Directions: ForwardArc},
	{Code: "E2", Name: "Frog", Move: Jump, Range: 2, Directions: AllDirs},
	{Code: "F1", Name: "Locust", Move: Jump, Range: 3, Directions: ForwardArc},
	{Code: "F2", Name: "Cricket", Move: Jump, Range: 3, Directions: AllDirs},
	// Specials
	{Code: "W1", Name: "Warper", Move: NoMove, Range: 0, Directions: 0, Special: SwapMove},
	{Code: "W2", Name: "Shifter", Move: Step, Range: 1, Directions: AllDirs, Special: SwapRotate},
	{Code: "P1", Name: "Phoenix", Move: Step, Range: 1, Directions: ForwardArc, Special: Rebirth},
	{Code: "G1", Name: "Ghost", Move: Step, Range: 1, Directions: AllDirs, Special: Phased},
	// Kings
	{Code: "K1", Name: "King Guard", Move: Step, Range: 1, Directions: AllDirs, IsKing: true},
	{Code: "K2", Name: "King Scout", Move: Step, Range: 1, Directions: ForwardArc, IsKing: true},
	{Code: "K3", Name: "King Ranger", Move: Step, Range: 2, Directions: AllDirs, IsKing: true},
	{Code: "K4", Name: "King Frog", Move: Jump, Range: 2, Directions: AllDirs, IsKing: true},
	{Code: "K5", Name: "King Pike", Move: Slide, Range: 99, Directions: DirF, IsKing: true},
	// Trident pieces: three non-adjacent directions (FL, FR, B)
	{Code: "B5", Name: "Triton", Move: Step, Range: 2, Directions: Trident},
	{Code: "D6", Name: "Triskelion", Move: Slide, Range: 99, Directions: Trident},
}

var byCode = func() map[string]ID {
	m := make(map[string]ID, len(Catalog))
	for i, a := range Catalog {
		m[a.Code] = ID(i)
	}
	return m
}()

// ByCode returns the archetype ID for a two-character code such as "A1" or "K5".
func ByCode(code string) (ID, bool) {
	id, ok := byCode[code]
	return id, ok
}

// Get returns the archetype for id.
func Get(id ID) Archetype {
	return Catalog[id]
}

// FindBySpecial returns the first archetype carrying the given special
// ability. There is exactly one of each special in the catalog.
func FindBySpecial(sp Special) (ID, bool) {
	for i, a := range Catalog {
		if a.Special == sp {
			return ID(i), true
		}
	}
	return 0, false
}

// KingIDs returns the IDs of the five king archetypes, in catalog order.
func KingIDs() []ID {
	var ids []ID
	for i, a := range Catalog {
		if a.IsKing {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// NonKingIDs returns the IDs of every non-king archetype, in catalog order.
func NonKingIDs() []ID {
	var ids []ID
	for i, a := range Catalog {
		if !a.IsKing {
			ids = append(ids, ID(i))
		}
	}
	return ids
}
