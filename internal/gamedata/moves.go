package gamedata

// MoveKind represents one of the five move categories. Kinds, not move
// names, drive all combat mechanics and interaction rules.
type MoveKind string

const (
	KindAttack   MoveKind = "attack"
	KindDefend   MoveKind = "defend"
	KindDoT      MoveKind = "dot"
	KindBuff     MoveKind = "buff"
	KindUltimate MoveKind = "ultimate"
)

// ChargeGain returns the charge gained by using a move of this kind,
// before the move's cost is subtracted.
func (k MoveKind) ChargeGain() int {
	switch k {
	case KindAttack:
		return 3
	case KindDefend:
		return 2
	case KindDoT, KindBuff:
		return 1
	default:
		return 0
	}
}

// MoveDef defines a single class move loaded from JSON.
type MoveDef struct {
	Name string   `json:"name"` // Immutable display name
	Kind MoveKind `json:"kind"`
	Cost int      `json:"cost"` // Charge cost to use the move
}

// MoveSetDef defines the fixed five-move table for one class. Moves are
// ordered attack, defend, dot, buff, ultimate; move indices throughout the
// engine rely on that order.
type MoveSetDef struct {
	Class string    `json:"class"`
	Moves []MoveDef `json:"moves"`
}

// MovesFile represents the structure of moves.json.
type MovesFile struct {
	MoveSets []MoveSetDef `json:"moveSets"`
}

// LoadMoveSets loads move set definitions from the embedded moves.json file.
func LoadMoveSets() ([]MoveSetDef, error) {
	file, err := Load[MovesFile]("moves.json")
	if err != nil {
		return nil, err
	}
	return file.MoveSets, nil
}
