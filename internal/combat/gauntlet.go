package combat

import "github.com/ewhitmore/trialbycombat/internal/gamedata"

// GauntletHealReward is the HP the player regains for each opponent defeated.
const GauntletHealReward = 20

// InitGauntlet creates the three gauntlet opponents (one fighter of each
// class, named after it) and rescales the player's HP to 1.5x the opponents'
// combined maximum HP.
func InitGauntlet(player *Fighter) []*Fighter {
	enemies := []*Fighter{
		NewFighter("Knight", ClassKnight),
		NewFighter("Magician", ClassMagician),
		NewFighter("Alchemist", ClassAlchemist),
	}

	total := 0
	for _, e := range enemies {
		total += e.MaxHP
	}
	scaled := int(float64(total) * 1.5)
	player.HP = scaled
	player.MaxHP = scaled

	return enemies
}

// ResolveGauntletTurn resolves one gauntlet round: the player acts against
// the chosen target, then every living opponent acts against the player via
// the decision policy, then DoT ticks burn the opponents. An invalid target
// (dead or out of range) turns the player's action phase into a no-op; the
// opponent phase and all bookkeeping still run.
func ResolveGauntletTurn(player *Fighter, enemies []*Fighter, move, target int, log *BattleLog, src Source) {
	moves := player.Moves()
	chosen := moves[move]

	log.Add("--- YOUR TURN ---")
	log.Addf("You used %s", chosen.Name)

	if target >= 0 && target < len(enemies) && enemies[target].HP > 0 {
		playerAct(player, enemies[target], chosen.Kind, log, src)
	}

	player.settleCharge(chosen)
	if player.BuffActive {
		player.BuffTurns--
		if player.BuffTurns <= 0 {
			player.BuffActive = false
			player.BuffTurns = 0
			log.Add("Your buff expired.")
		}
	}

	log.Add("--- ENEMIES TURN ---")
	playerDefending := chosen.Kind == gamedata.KindDefend

	for _, e := range enemies {
		if e.HP <= 0 {
			continue
		}
		slot := ChooseMove(e, player, src)
		em := e.Moves()[slot]
		log.Addf("%s: %s", e.Name, em.Name)

		enemyAct(e, player, em.Kind, playerDefending, log, src)

		e.settleCharge(em)
		if e.BuffActive {
			e.BuffTurns--
			if e.BuffTurns <= 0 {
				e.BuffActive = false
				e.BuffTurns = 0
			}
		}
	}

	// DoT ticks on living opponents; a lethal tick still pays the reward.
	for _, e := range enemies {
		if e.HP > 0 && e.DotStacks > 0 && e.DotTurns > 0 {
			tick := DotTick(dotBase[e.DotStacks-1], player.EffectiveAttack(), e.EffectiveDefense())
			e.HP -= tick
			e.DotTurns--
			log.Addf("DoT: %s takes %d", e.Name, tick)
			if e.DotTurns == 0 {
				e.DotStacks = 0
				log.Addf("%s DoT faded", e.Name)
			}
			if e.HP <= 0 {
				log.Addf("%s defeated by DoT! +%d HP", e.Name, GauntletHealReward)
				healKillReward(player)
				e.DotStacks = 0
			}
		}
	}
}

// playerAct applies the player's move to the chosen target. Unlike the 1v1
// exchange there is no opposing kind: no mitigation multipliers apply, a
// buff always activates, and a defend is only a logged brace.
func playerAct(player, target *Fighter, kind gamedata.MoveKind, log *BattleLog, src Source) {
	atk := player.EffectiveAttack()
	defense := target.EffectiveDefense()
	dodge := dodgeChance(target)

	switch kind {
	case gamedata.KindAttack:
		if rollPct(src) < dodge {
			log.Addf("%s dodged!", target.Name)
			return
		}
		crit := rollPct(src) < player.Crit
		dmg := Damage(player.AttackPower, atk, defense)
		if crit {
			dmg = dmg * 3 / 2
		}
		if dmg < 1 {
			dmg = 1
		}
		target.HP -= dmg
		log.Addf("%s%s -> %s: %d dmg", critPrefix(crit), player.Name, target.Name, dmg)
		rewardIfDefeated(player, target, log)

	case gamedata.KindDoT:
		if rollPct(src) < dodge {
			log.Addf("%s evaded DoT!", target.Name)
			return
		}
		if target.DotStacks < MaxDotStacks {
			target.DotStacks++
		}
		target.DotTurns = 3
		log.Addf("DoT on %s (stack %d/3)", target.Name, target.DotStacks)

	case gamedata.KindBuff:
		player.BuffActive = true
		player.BuffTurns = 3
		log.Addf("You buffed! +%d %s", player.BuffAmount, player.BuffStat.Short())

	case gamedata.KindDefend:
		log.Add("You brace for impact!")

	case gamedata.KindUltimate:
		effDef := defense
		if player.Class == ClassMagician {
			effDef = defense / 2
		}
		crit := rollPct(src) < player.Crit
		dmg := Damage(player.UltPower, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		if dmg < 1 {
			dmg = 1
		}
		target.HP -= dmg
		log.Addf("%sULTIMATE -> %s: %d dmg!", critPrefix(crit), target.Name, dmg)

		if player.Class == ClassKnight {
			target.DefPenalty += 2
			log.Addf("%s armor sundered! -2 DEF", target.Name)
		}
		if player.Class == ClassAlchemist && target.HP > 0 {
			total := player.HP + target.HP
			if total < 0 {
				total = 0
			}
			np := total * 6 / 10
			nt := total - np
			if np > player.MaxHP {
				np = player.MaxHP
			}
			player.HP = np
			target.HP = nt
			log.Addf("Transmutation: you=%d, %s=%d", player.HP, target.Name, target.HP)
		}
		rewardIfDefeated(player, target, log)
	}
}

// enemyAct applies one opponent's move against the player. Opponents never
// inflict DoT in this mode: a dot pick does nothing beyond its charge cost,
// and a buff activates without narration. Attack and ultimate damage is
// halved when the player chose defend this round.
func enemyAct(e, player *Fighter, kind gamedata.MoveKind, playerDefending bool, log *BattleLog, src Source) {
	atk := e.EffectiveAttack()
	defense := player.EffectiveDefense()
	dodge := dodgeChance(player)
	mult := 1.0
	if playerDefending {
		mult = 0.5
	}

	switch kind {
	case gamedata.KindAttack:
		if rollPct(src) < dodge {
			log.Add(" You dodged!")
			return
		}
		crit := rollPct(src) < e.Crit
		dmg := Damage(e.AttackPower, atk, defense)
		if crit {
			dmg = dmg * 3 / 2
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		player.HP -= dmg
		tag := ""
		if playerDefending {
			tag = " (blocked)"
		}
		log.Addf("%s%s deals %d to you%s", critPrefix(crit), e.Name, dmg, tag)

	case gamedata.KindUltimate:
		effDef := defense
		if e.Class == ClassMagician {
			effDef = defense / 2
		}
		crit := rollPct(src) < e.Crit
		dmg := Damage(e.UltPower, atk, effDef)
		if crit {
			dmg = dmg * 7 / 5
		}
		dmg = int(float64(dmg) * mult)
		if dmg < 1 {
			dmg = 1
		}
		player.HP -= dmg
		log.Addf("%s%s ULTIMATE: %d dmg!", critPrefix(crit), e.Name, dmg)
		if e.Class == ClassKnight {
			player.DefPenalty += 2
			log.Add("Your armor sundered! -2 DEF")
		}

	case gamedata.KindBuff:
		e.BuffActive = true
		e.BuffTurns = 3

	case gamedata.KindDefend, gamedata.KindDoT:
		// No direct effect; only the charge economy moves.
	}
}

// rewardIfDefeated grants the kill reward when the target just fell.
func rewardIfDefeated(player, target *Fighter, log *BattleLog) {
	if target.HP <= 0 {
		log.Addf("%s defeated! +%d HP", target.Name, GauntletHealReward)
		healKillReward(player)
	}
}

func healKillReward(player *Fighter) {
	player.HP += GauntletHealReward
	if player.HP > player.MaxHP {
		player.HP = player.MaxHP
	}
}
