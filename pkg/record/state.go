package record

import (
	"sort"

	"github.com/giblfiz/hexwar/pkg/game"
	"github.com/giblfiz/hexwar/pkg/hexboard"
	"github.com/giblfiz/hexwar/pkg/piece"
)

// PieceDTO is one occupied hex in a StateDTO snapshot.
type PieceDTO struct {
	Pos       hexboard.Hex `json:"pos"`
	Archetype string       `json:"archetype"`
	Owner     string       `json:"owner"`
	Facing    uint8        `json:"facing"`
}

// StateDTO is the external snapshot of a game.State, for the record format's
// optional initial_state field (spec.md §6). It is display/playback data,
// not a reconstructable engine state: rebuilding an in-progress game.State
// goes through ruleset.RuleSet.NewState plus replaying the move history, not
// through this struct.
type StateDTO struct {
	Board                []PieceDTO `json:"board"`
	CurrentPlayer        string     `json:"current_player"`
	WhiteTemplate        string     `json:"w_template"`
	BlackTemplate        string     `json:"b_template"`
	ActionIndex          int        `json:"action_index"`
	RoundNumber          int        `json:"round_number"`
	Winner               *string    `json:"winner,omitempty"`
	WhitePhoenixCaptured bool       `json:"w_phoenix_captured"`
	BlackPhoenixCaptured bool       `json:"b_phoenix_captured"`
}

// ToStateDTO snapshots s into its external representation. Board entries are
// sorted by (q, r) so the output is deterministic across runs.
func ToStateDTO(s game.State) StateDTO {
	dto := StateDTO{
		CurrentPlayer:        s.CurrentPlayer().String(),
		WhiteTemplate:        s.Template(game.White).String(),
		BlackTemplate:        s.Template(game.Black).String(),
		ActionIndex:          s.ActionIndex(),
		RoundNumber:          s.Round(),
		WhitePhoenixCaptured: s.PhoenixCaptured(game.White),
		BlackPhoenixCaptured: s.PhoenixCaptured(game.Black),
	}
	if w, ok := s.Winner(); ok {
		name := w.String()
		dto.Winner = &name
	}

	for pos, p := range s.Pieces() {
		dto.Board = append(dto.Board, PieceDTO{
			Pos:       pos,
			Archetype: piece.Get(p.Archetype).Code,
			Owner:     p.Owner.String(),
			Facing:    p.Facing,
		})
	}
	sort.Slice(dto.Board, func(i, j int) bool {
		a, b := dto.Board[i].Pos, dto.Board[j].Pos
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})
	return dto
}
