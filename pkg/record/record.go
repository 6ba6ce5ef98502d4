package record

import (
	"encoding/json"
	"fmt"

	"github.com/giblfiz/hexwar/pkg/engine"
	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/ruleset"
)

// GameRecord is a complete playable history: the ruleset it was played
// under, an optional initial snapshot, the move sequence, and how it ended
// (spec.md §6).
type GameRecord struct {
	Ruleset      *ruleset.RuleSet
	InitialState *StateDTO
	Moves        []MoveDTO
	Winner       *game.Player
	EndReason    string
}

// recordWire is GameRecord's on-disk shape: the ruleset is embedded as its
// own Encode/Decode wire format, and the winner is "White"/"Black"/null.
type recordWire struct {
	Ruleset      json.RawMessage `json:"ruleset,omitempty"`
	InitialState *StateDTO       `json:"initial_state,omitempty"`
	Moves        []MoveDTO       `json:"moves"`
	Winner       *string         `json:"winner"`
	EndReason    string          `json:"end_reason,omitempty"`
}

func (g GameRecord) MarshalJSON() ([]byte, error) {
	w := recordWire{Moves: g.Moves, EndReason: g.EndReason, InitialState: g.InitialState}
	if g.Ruleset != nil {
		b, err := ruleset.Encode(*g.Ruleset)
		if err != nil {
			return nil, err
		}
		w.Ruleset = b
	}
	if g.Winner != nil {
		name := g.Winner.String()
		w.Winner = &name
	}
	return json.Marshal(w)
}

func (g *GameRecord) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("record: malformed JSON: %w", err)
	}

	g.Moves = w.Moves
	g.EndReason = w.EndReason
	g.InitialState = w.InitialState

	if len(w.Ruleset) > 0 {
		rs, err := ruleset.Decode(w.Ruleset)
		if err != nil {
			return err
		}
		g.Ruleset = &rs
	}
	if w.Winner != nil {
		p, err := parsePlayer(*w.Winner)
		if err != nil {
			return err
		}
		g.Winner = &p
	}
	return nil
}

func parsePlayer(s string) (game.Player, error) {
	switch s {
	case "White", "white":
		return game.White, nil
	case "Black", "black":
		return game.Black, nil
	default:
		return 0, fmt.Errorf("record: unknown winner %q", s)
	}
}

// FromGameResult builds a GameRecord from a played-out game, for writing it
// out as an external playback document.
func FromGameResult(rs ruleset.RuleSet, initial game.State, result engine.GameResult) GameRecord {
	moves := make([]MoveDTO, len(result.Moves))
	for i, m := range result.Moves {
		moves[i] = ToMoveDTO(m)
	}

	rec := GameRecord{Ruleset: &rs, Moves: moves}
	initDTO := ToStateDTO(initial)
	rec.InitialState = &initDTO

	if result.HasWinner {
		w := result.Winner
		rec.Winner = &w
	}
	switch {
	case result.ResolvedByProximity:
		rec.EndReason = "proximity"
	case result.Timeout:
		rec.EndReason = "timeout"
	case result.HasWinner:
		rec.EndReason = "decisive"
	}
	return rec
}

// Encode serializes g as an indented JSON document.
func Encode(g GameRecord) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// Decode parses a game record document.
func Decode(data []byte) (GameRecord, error) {
	var g GameRecord
	if err := json.Unmarshal(data, &g); err != nil {
		return GameRecord{}, err
	}
	return g, nil
}
