package combat

import (
	"reflect"
	"testing"

	"github.com/ewhitmore/trialbycombat/internal/gamedata"
)

func TestNewFighterClassDefaults(t *testing.T) {
	cases := []struct {
		class    Class
		hp       int
		atk      int
		def      int
		spd      int
		buffStat gamedata.BuffStat
	}{
		{ClassKnight, 115, 10, 12, 9, gamedata.BuffDefense},
		{ClassMagician, 105, 10, 10, 12, gamedata.BuffSpeed},
		{ClassAlchemist, 110, 12, 10, 10, gamedata.BuffAttack},
	}

	for _, tc := range cases {
		f := NewFighter("Tester", tc.class)
		if f.HP != tc.hp || f.MaxHP != tc.hp {
			t.Errorf("%s: expected HP %d/%d, got %d/%d", tc.class, tc.hp, tc.hp, f.HP, f.MaxHP)
		}
		if f.Attack != tc.atk || f.Defense != tc.def || f.Speed != tc.spd {
			t.Errorf("%s: expected stats %d/%d/%d, got %d/%d/%d",
				tc.class, tc.atk, tc.def, tc.spd, f.Attack, f.Defense, f.Speed)
		}
		if f.Crit != 12 {
			t.Errorf("%s: expected crit 12, got %d", tc.class, f.Crit)
		}
		if f.BuffStat != tc.buffStat || f.BuffAmount != 4 {
			t.Errorf("%s: expected buff +4 %s, got +%d %s",
				tc.class, tc.buffStat, f.BuffAmount, f.BuffStat)
		}
		if f.Charge != 0 || f.DotStacks != 0 || f.DotTurns != 0 || f.DefPenalty != 0 || f.BuffActive {
			t.Errorf("%s: mutable state not zeroed: %+v", tc.class, f)
		}
	}
}

func TestNewFighterIsPureFunctionOfClass(t *testing.T) {
	a := NewFighter("Tester", ClassMagician)
	b := NewFighter("Tester", ClassMagician)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Two fresh fighters of the same class differ: %+v vs %+v", a, b)
	}
}

func TestDisplayHPClampsNegative(t *testing.T) {
	f := NewFighter("Knight", ClassKnight)
	f.HP = -7
	if got := f.DisplayHP(); got != 0 {
		t.Errorf("Expected display HP 0, got %d", got)
	}
	if f.IsAlive() {
		t.Error("Expected fighter at negative HP to be dead")
	}
}

func TestMoveSetOrder(t *testing.T) {
	wantKinds := []gamedata.MoveKind{
		gamedata.KindAttack,
		gamedata.KindDefend,
		gamedata.KindDoT,
		gamedata.KindBuff,
		gamedata.KindUltimate,
	}
	wantCosts := []int{0, 0, 3, 2, 10}

	for _, class := range Classes() {
		moves := MoveSet(class)
		if len(moves) != 5 {
			t.Fatalf("%s: expected 5 moves, got %d", class, len(moves))
		}
		for i, m := range moves {
			if m.Kind != wantKinds[i] {
				t.Errorf("%s move %d: expected kind %s, got %s", class, i, wantKinds[i], m.Kind)
			}
			if m.Cost != wantCosts[i] {
				t.Errorf("%s move %d: expected cost %d, got %d", class, i, wantCosts[i], m.Cost)
			}
			if m.Name == "" {
				t.Errorf("%s move %d: empty name", class, i)
			}
		}
	}
}

func TestSettleChargeClamps(t *testing.T) {
	f := NewFighter("Knight", ClassKnight)
	moves := f.Moves()

	// DoT from zero charge: 0 + 1 - 3 clamps to 0.
	f.settleCharge(moves[SlotDoT])
	if f.Charge != 0 {
		t.Errorf("Expected charge clamped to 0, got %d", f.Charge)
	}

	// Attack near the cap: 9 + 3 clamps to 10.
	f.Charge = 9
	f.settleCharge(moves[SlotAttack])
	if f.Charge != MaxCharge {
		t.Errorf("Expected charge clamped to %d, got %d", MaxCharge, f.Charge)
	}

	// Ultimate from full: 10 + 0 - 10 = 0.
	f.settleCharge(moves[SlotUltimate])
	if f.Charge != 0 {
		t.Errorf("Expected charge 0 after ultimate, got %d", f.Charge)
	}
}
