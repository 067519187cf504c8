package combat

import "github.com/ewhitmore/trialbycombat/internal/gamedata"

// ResolveTurn resolves one 1v1 round: both action phases, DoT ticks, charge
// settlement, and buff ticks, in that order. Both fighters are mutated in
// place and narration is appended to log.
//
// Simultaneity is modeled by resolving each action against the opponent's
// chosen move kind, not their post-action state. A's effects land before
// B's, but B's action is fully applied even if B's HP drops to zero or
// below; death is only checked by the caller after the round.
func ResolveTurn(a, b *Fighter, moveA, moveB int, log *BattleLog, src Source) {
	movesA := a.Moves()
	movesB := b.Moves()
	chosenA := movesA[moveA]
	chosenB := movesB[moveB]

	log.Addf("%s used %s", a.Name, chosenA.Name)
	log.Addf("%s used %s", b.Name, chosenB.Name)

	applyAction(a, b, chosenA.Kind, chosenB.Kind, log, src)
	applyAction(b, a, chosenB.Kind, chosenA.Kind, log, src)

	// DoT ticks. The other fighter is the attacker for formula purposes.
	for _, pair := range [2][2]*Fighter{{a, b}, {b, a}} {
		f, other := pair[0], pair[1]
		if f.DotStacks > 0 && f.DotTurns > 0 {
			tick := DotTick(dotBase[f.DotStacks-1], other.EffectiveAttack(), f.EffectiveDefense())
			f.HP -= tick
			f.DotTurns--
			log.Addf("DoT: %s burned %d (%dT left)", f.Name, tick, f.DotTurns)
			if f.DotTurns == 0 {
				f.DotStacks = 0
				log.Addf("%s's DoT faded", f.Name)
			}
		}
	}

	a.settleCharge(chosenA)
	b.settleCharge(chosenB)

	for _, f := range [2]*Fighter{a, b} {
		if f.BuffActive {
			f.BuffTurns--
			if f.BuffTurns <= 0 {
				f.BuffActive = false
				f.BuffTurns = 0
				log.Addf("%s's buff expired", f.Name)
			}
		}
	}
}

// applyAction resolves one direction of the simultaneous exchange: att's
// chosen kind against def, with oppKind (def's chosen kind) driving the
// interaction rules.
func applyAction(att, def *Fighter, kind, oppKind gamedata.MoveKind, log *BattleLog, src Source) {
	atk := att.EffectiveAttack()
	defense := def.EffectiveDefense()
	dodge := dodgeChance(def)

	switch kind {
	case gamedata.KindAttack:
		if rollPct(src) < dodge {
			log.Addf("%s dodged!", def.Name)
			return
		}
		mult := 1.0
		switch oppKind {
		case gamedata.KindDefend:
			mult = 0.5
		case gamedata.KindBuff:
			mult = 1.3
		}
		crit := rollPct(src) < att.Crit
		dmg := Damage(att.AttackPower, atk, defense)
		if crit {
			dmg = dmg * 3 / 2
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		def.HP -= dmg
		tag := ""
		switch oppKind {
		case gamedata.KindDefend:
			tag = " (blocked)"
		case gamedata.KindBuff:
			tag = " (off-guard)"
		}
		log.Addf("%s%s -> %s: %d dmg%s", critPrefix(crit), att.Name, def.Name, dmg, tag)

	case gamedata.KindDoT:
		if oppKind == gamedata.KindAttack {
			log.Addf("%s's DoT interrupted!", att.Name)
			return
		}
		if rollPct(src) < dodge {
			log.Addf("%s evaded DoT!", def.Name)
			return
		}
		if def.DotStacks < MaxDotStacks {
			def.DotStacks++
		}
		def.DotTurns = 3
		tag := ""
		if oppKind == gamedata.KindBuff {
			tag = " EMPOWERED!"
		}
		log.Addf("%s: DoT stack %d/3%s", def.Name, def.DotStacks, tag)

	case gamedata.KindBuff:
		if oppKind == gamedata.KindDefend {
			log.Addf("%s's buff suppressed!", att.Name)
			return
		}
		att.BuffActive = true
		att.BuffTurns = 3
		log.Addf("%s buffed! +%d %s (3T)", att.Name, att.BuffAmount, att.BuffStat.Short())

	case gamedata.KindUltimate:
		mult := 1.0
		switch oppKind {
		case gamedata.KindDefend:
			mult = 0.25
		case gamedata.KindBuff:
			mult = 1.25
		}
		effDef := defense
		if att.Class == ClassMagician {
			effDef = defense / 2
		}
		crit := rollPct(src) < att.Crit
		dmg := Damage(att.UltPower, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		def.HP -= dmg
		tag := ""
		if oppKind == gamedata.KindDefend {
			tag = " (deflected)"
		}
		log.Addf("%sULTIMATE! %s -> %s: %d dmg%s", critPrefix(crit), att.Name, def.Name, dmg, tag)
		applyUltSecondary(att, def, log)

	case gamedata.KindDefend:
		// Defend has no action-phase effect of its own; its value comes from
		// the mitigation multipliers on the opponent's attack or ultimate and
		// from the charge economy.
	}
}

// applyUltSecondary applies the class-specific ultimate side effect.
func applyUltSecondary(att, def *Fighter, log *BattleLog) {
	switch att.Class {
	case ClassKnight:
		def.DefPenalty += 2
		log.Addf("Armor sundered! %s -2 DEF permanently", def.Name)
	case ClassAlchemist:
		if def.HP > 0 {
			total := att.HP + def.HP
			if total < 0 {
				total = 0
			}
			na := total * 6 / 10
			nd := total - na
			if na > att.MaxHP {
				na = att.MaxHP
			}
			att.HP = na
			def.HP = nd
			log.Addf("Transmutation! HP split: %s=%d, %s=%d", att.Name, att.HP, def.Name, def.HP)
		}
	}
}
