package gamedata

import "testing"

func TestClassRegistryLoads(t *testing.T) {
	reg := MustLoadClassRegistry()

	if reg.Count() != 3 {
		t.Fatalf("Expected 3 classes, got %d", reg.Count())
	}

	knight := reg.GetByID("knight")
	if knight == nil {
		t.Fatal("Expected knight class")
	}
	if knight.HP != 115 || knight.Attack != 10 || knight.Defense != 12 || knight.Speed != 9 {
		t.Errorf("Unexpected knight stats: %+v", knight)
	}
	if knight.AttackPower != 15 || knight.UltPower != 28 {
		t.Errorf("Unexpected knight move power: %+v", knight)
	}
	if knight.BuffStat != BuffDefense || knight.BuffAmount != 4 {
		t.Errorf("Unexpected knight buff: %+v", knight)
	}

	if got := reg.GetByID("bard"); got != nil {
		t.Errorf("Expected nil for unknown class, got %+v", got)
	}
}

func TestAllClassesShareCritChance(t *testing.T) {
	reg := MustLoadClassRegistry()
	for _, c := range reg.All() {
		if c.Crit != 12 {
			t.Errorf("%s: expected 12%% crit, got %d", c.ID, c.Crit)
		}
	}
}

func TestMoveRegistryLoads(t *testing.T) {
	reg := MustLoadMoveRegistry()

	if reg.Count() != 3 {
		t.Fatalf("Expected 3 move sets, got %d", reg.Count())
	}

	wantKinds := []MoveKind{KindAttack, KindDefend, KindDoT, KindBuff, KindUltimate}
	wantCosts := []int{0, 0, 3, 2, 10}

	for _, classID := range []string{"knight", "magician", "alchemist"} {
		moves := reg.GetByClass(classID)
		if len(moves) != 5 {
			t.Fatalf("%s: expected 5 moves, got %d", classID, len(moves))
		}
		for i, m := range moves {
			if m.Kind != wantKinds[i] {
				t.Errorf("%s move %d: expected kind %s, got %s", classID, i, wantKinds[i], m.Kind)
			}
			if m.Cost != wantCosts[i] {
				t.Errorf("%s move %d: expected cost %d, got %d", classID, i, wantCosts[i], m.Cost)
			}
		}
	}

	if got := reg.GetByClass("bard"); got != nil {
		t.Errorf("Expected nil for unknown class, got %v", got)
	}
}

func TestChargeGainByKind(t *testing.T) {
	cases := []struct {
		kind MoveKind
		gain int
	}{
		{KindAttack, 3},
		{KindDefend, 2},
		{KindDoT, 1},
		{KindBuff, 1},
		{KindUltimate, 0},
	}
	for _, tc := range cases {
		if got := tc.kind.ChargeGain(); got != tc.gain {
			t.Errorf("%s: expected gain %d, got %d", tc.kind, tc.gain, got)
		}
	}
}

func TestBuffStatShort(t *testing.T) {
	cases := []struct {
		stat BuffStat
		want string
	}{
		{BuffDefense, "DEF"},
		{BuffSpeed, "SPD"},
		{BuffAttack, "ATK"},
		{BuffStat("luck"), "?"},
	}
	for _, tc := range cases {
		if got := tc.stat.Short(); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.stat, tc.want, got)
		}
	}
}
