// Package combat implements the combat resolution engine: the fighter model,
// the damage formulas, the opponent decision policy, and the turn resolvers
// for both the 1v1 and the gauntlet (1v3) modes.
package combat

import (
	"fmt"

	"github.com/ewhitmore/trialbycombat/internal/gamedata"
)

// Engine-wide limits.
const (
	MaxCharge    = 10
	MaxDotStacks = 3
)

var (
	classReg = gamedata.MustLoadClassRegistry()
	moveReg  = gamedata.MustLoadMoveRegistry()
)

// Class represents a fighter's class.
type Class int

const (
	ClassKnight Class = iota
	ClassMagician
	ClassAlchemist
)

// String returns the class display name.
func (c Class) String() string {
	switch c {
	case ClassKnight:
		return "Knight"
	case ClassMagician:
		return "Magician"
	case ClassAlchemist:
		return "Alchemist"
	default:
		return "Unknown"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassKnight:
		return "knight"
	case ClassMagician:
		return "magician"
	case ClassAlchemist:
		return "alchemist"
	default:
		return "unknown"
	}
}

// ParseClass resolves a class identifier like "knight" to a Class.
func ParseClass(id string) (Class, error) {
	switch id {
	case "knight":
		return ClassKnight, nil
	case "magician":
		return ClassMagician, nil
	case "alchemist":
		return ClassAlchemist, nil
	default:
		return 0, fmt.Errorf("unknown class %q", id)
	}
}

// Classes returns all playable classes.
func Classes() []Class {
	return []Class{ClassKnight, ClassMagician, ClassAlchemist}
}

// Fighter is one combatant. All mutable state lives here; the resolvers and
// the decision policy are the only writers during a match.
type Fighter struct {
	Name  string
	Class Class

	// Vitals. HP may go negative transiently during a round; win checks and
	// display use DisplayHP.
	HP    int
	MaxHP int

	// Base stats, fixed per class at creation.
	Attack  int
	Defense int
	Speed   int
	Crit    int // critical hit chance in percent

	// Base damage numbers, fixed per class at creation.
	AttackPower int
	UltPower    int

	// Charge is the resource gating the ultimate, always in [0, MaxCharge].
	Charge int

	// Active buff state.
	BuffActive bool
	BuffTurns  int
	BuffStat   gamedata.BuffStat
	BuffAmount int

	// Damage-over-time state. DotStacks is in [0, MaxDotStacks]; DotTurns is
	// reset to 3 whenever a stack is added.
	DotStacks int
	DotTurns  int

	// DefPenalty is the permanent armor-sunder penalty. It only ever grows.
	DefPenalty int
}

// NewFighter creates a fresh fighter of the given class. All mutable fields
// start at their class defaults; nothing persists from previous matches.
func NewFighter(name string, class Class) *Fighter {
	def := classReg.GetByID(class.ID())
	return &Fighter{
		Name:        name,
		Class:       class,
		HP:          def.HP,
		MaxHP:       def.HP,
		Attack:      def.Attack,
		Defense:     def.Defense,
		Speed:       def.Speed,
		Crit:        def.Crit,
		AttackPower: def.AttackPower,
		UltPower:    def.UltPower,
		BuffStat:    def.BuffStat,
		BuffAmount:  def.BuffAmount,
	}
}

// MoveSet returns the fixed five-move table for a class, ordered attack,
// defend, dot, buff, ultimate.
func MoveSet(class Class) []gamedata.MoveDef {
	return moveReg.GetByClass(class.ID())
}

// Moves returns the fighter's move table.
func (f *Fighter) Moves() []gamedata.MoveDef {
	return MoveSet(f.Class)
}

// IsAlive returns true if the fighter has HP remaining.
func (f *Fighter) IsAlive() bool {
	return f.HP > 0
}

// DisplayHP returns current HP clamped to zero for display and win checks.
func (f *Fighter) DisplayHP() int {
	if f.HP < 0 {
		return 0
	}
	return f.HP
}

// HPPercent returns current HP as a percentage of maximum.
func (f *Fighter) HPPercent() int {
	return f.HP * 100 / f.MaxHP
}

// EffectiveAttack returns base attack plus any active attack buff.
func (f *Fighter) EffectiveAttack() int {
	if f.BuffActive && f.BuffStat == gamedata.BuffAttack {
		return f.Attack + f.BuffAmount
	}
	return f.Attack
}

// EffectiveDefense returns base defense plus any active defense buff, minus
// the permanent penalty, floored at zero.
func (f *Fighter) EffectiveDefense() int {
	d := f.Defense - f.DefPenalty
	if f.BuffActive && f.BuffStat == gamedata.BuffDefense {
		d += f.BuffAmount
	}
	if d < 0 {
		return 0
	}
	return d
}

// EffectiveSpeed returns base speed plus any active speed buff.
func (f *Fighter) EffectiveSpeed() int {
	if f.BuffActive && f.BuffStat == gamedata.BuffSpeed {
		return f.Speed + f.BuffAmount
	}
	return f.Speed
}

// settleCharge applies a move's charge gain minus its cost, clamped to
// [0, MaxCharge].
func (f *Fighter) settleCharge(m gamedata.MoveDef) {
	f.Charge += m.Kind.ChargeGain() - m.Cost
	if f.Charge > MaxCharge {
		f.Charge = MaxCharge
	}
	if f.Charge < 0 {
		f.Charge = 0
	}
}
