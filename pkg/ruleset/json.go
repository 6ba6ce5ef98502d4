package ruleset

import (
	"encoding/json"
	"fmt"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// archetypeRef unmarshals either a numeric catalog index or a two-character
// archetype code ("K1", "D5", ...), and always marshals back out as a code
// (the readable form a hand-edited ruleset file would use).
type archetypeRef piece.ID

func (a *archetypeRef) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err == nil {
		id, ok := piece.ByCode(code)
		if !ok {
			return fmt.Errorf("ruleset: unknown archetype code %q", code)
		}
		*a = archetypeRef(id)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("ruleset: invalid archetype reference %s", b)
	}
	if n < 0 || n >= piece.NumArchetypes {
		return fmt.Errorf("ruleset: archetype index %d out of range", n)
	}
	*a = archetypeRef(n)
	return nil
}

func (a archetypeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(piece.Get(piece.ID(a)).Code)
}

// wire is the on-disk shape of a RuleSet: archetype fields accept either
// form via archetypeRef, and the template fields are single-letter names.
type wire struct {
	Name           string         `json:"name,omitempty"`
	WhiteKing      archetypeRef   `json:"white_king"`
	WhitePieces    []archetypeRef `json:"white_pieces"`
	WhitePositions []hexboard.Hex `json:"white_positions"`
	WhiteFacings   []uint8        `json:"white_facings"`
	WhiteTemplate  string         `json:"white_template"`
	BlackKing      archetypeRef   `json:"black_king"`
	BlackPieces    []archetypeRef `json:"black_pieces"`
	BlackPositions []hexboard.Hex `json:"black_positions"`
	BlackFacings   []uint8        `json:"black_facings"`
	BlackTemplate  string         `json:"black_template"`
}

// envelope is the `{name?, ruleset: {...}}` wrapper form.
type envelope struct {
	Name    string `json:"name,omitempty"`
	RuleSet *wire  `json:"ruleset"`
}

// Decode parses either a flat ruleset document or one wrapped in a `ruleset`
// envelope, failing cleanly on malformed JSON or an unknown archetype code
// (spec.md §6/§7 — input errors surface to the caller, never partial-init).
func Decode(data []byte) (RuleSet, error) {
	var w wire
	name := ""
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.RuleSet != nil {
		w = *env.RuleSet
		name = firstNonEmpty(env.Name, env.RuleSet.Name)
	} else {
		if err := json.Unmarshal(data, &w); err != nil {
			return RuleSet{}, fmt.Errorf("ruleset: malformed JSON: %w", err)
		}
		name = w.Name
	}
	if len(w.WhitePositions) == 0 || len(w.BlackPositions) == 0 {
		return RuleSet{}, fmt.Errorf("ruleset: missing white_positions/black_positions")
	}
	return fromWire(w, name)
}

func fromWire(w wire, name string) (RuleSet, error) {
	whiteTpl, ok := game.ParseTemplate(w.WhiteTemplate)
	if !ok {
		return RuleSet{}, fmt.Errorf("ruleset: unknown white_template %q", w.WhiteTemplate)
	}
	blackTpl, ok := game.ParseTemplate(w.BlackTemplate)
	if !ok {
		return RuleSet{}, fmt.Errorf("ruleset: unknown black_template %q", w.BlackTemplate)
	}

	return RuleSet{
		Name:           name,
		WhiteKing:      piece.ID(w.WhiteKing),
		WhitePieces:    toIDs(w.WhitePieces),
		WhitePositions: w.WhitePositions,
		WhiteFacings:   w.WhiteFacings,
		WhiteTemplate:  whiteTpl,
		BlackKing:      piece.ID(w.BlackKing),
		BlackPieces:    toIDs(w.BlackPieces),
		BlackPositions: w.BlackPositions,
		BlackFacings:   w.BlackFacings,
		BlackTemplate:  blackTpl,
	}, nil
}

func toIDs(refs []archetypeRef) []piece.ID {
	ids := make([]piece.ID, len(refs))
	for i, r := range refs {
		ids[i] = piece.ID(r)
	}
	return ids
}

func toRefs(ids []piece.ID) []archetypeRef {
	refs := make([]archetypeRef, len(ids))
	for i, id := range ids {
		refs[i] = archetypeRef(id)
	}
	return refs
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Encode serializes r as a flat ruleset document (always valid input to
// Decode).
func Encode(r RuleSet) ([]byte, error) {
	w := wire{
		Name:           r.Name,
		WhiteKing:      archetypeRef(r.WhiteKing),
		WhitePieces:    toRefs(r.WhitePieces),
		WhitePositions: r.WhitePositions,
		WhiteFacings:   r.WhiteFacings,
		WhiteTemplate:  r.WhiteTemplate.String(),
		BlackKing:      archetypeRef(r.BlackKing),
		BlackPieces:    toRefs(r.BlackPieces),
		BlackPositions: r.BlackPositions,
		BlackFacings:   r.BlackFacings,
		BlackTemplate:  r.BlackTemplate.String(),
	}
	return json.MarshalIndent(w, "", "  ")
}
