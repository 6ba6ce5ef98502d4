package game

// ActionKind classifies a single slot in a turn template.
type ActionKind uint8

const (
	ActMove ActionKind = iota
	ActRotate
	ActMoveOrRotate
)

// Constraint restricts which piece may act, relative to the last piece that acted
// this turn. It has no effect on the first action of a turn (LastPiecePos unset).
type Constraint uint8

const (
	Any Constraint = iota
	Same
	Different
)

// Action is one ordered slot of a Template.
type Action struct {
	Kind       ActionKind
	Constraint Constraint
}

// Template names one of the six fixed turn structures (A-F).
type Template uint8

const (
	TemplateA Template = iota
	TemplateB
	TemplateC
	TemplateD
	TemplateE
	TemplateF
)

// Actions returns the ordered action list for a template.
func (t Template) Actions() []Action {
	switch t {
	case TemplateA:
		return []Action{{Kind: ActMove, Constraint: Any}}
	case TemplateB:
		return []Action{
			{Kind: ActMove, Constraint: Any},
			{Kind: ActMove, Constraint: Same},
		}
	case TemplateC:
		// Resolved per the spec's open question: Move(Any), Move(Different), Rotate(Any).
		return []Action{
			{Kind: ActMove, Constraint: Any},
			{Kind: ActMove, Constraint: Different},
			{Kind: ActRotate, Constraint: Any},
		}
	case TemplateD:
		return []Action{
			{Kind: ActMove, Constraint: Any},
			{Kind: ActRotate, Constraint: Different},
		}
	case TemplateE:
		// Single MoveOrRotate: chess-like, one action per turn.
		return []Action{{Kind: ActMoveOrRotate, Constraint: Any}}
	case TemplateF:
		return []Action{
			{Kind: ActMove, Constraint: Any},
			{Kind: ActMove, Constraint: Any},
			{Kind: ActRotate, Constraint: Same},
		}
	default:
		return nil
	}
}

// Len returns the number of actions in a turn under this template.
func (t Template) Len() int {
	return len(t.Actions())
}

func (t Template) String() string {
	switch t {
	case TemplateA:
		return "A"
	case TemplateB:
		return "B"
	case TemplateC:
		return "C"
	case TemplateD:
		return "D"
	case TemplateE:
		return "E"
	case TemplateF:
		return "F"
	default:
		return "?"
	}
}

// ParseTemplate parses a single-letter template name ("A".."F").
func ParseTemplate(s string) (Template, bool) {
	switch s {
	case "A":
		return TemplateA, true
	case "B":
		return TemplateB, true
	case "C":
		return TemplateC, true
	case "D":
		return TemplateD, true
	case "E":
		return TemplateE, true
	case "F":
		return TemplateF, true
	default:
		return 0, false
	}
}
