package combat

// dotBase is the DoT tick base damage, indexed by the current stack count.
var dotBase = [MaxDotStacks]int{5, 8, 12}

// Damage computes direct hit damage: base + atk/2 - def/3, floored at 1.
// Integer division throughout.
func Damage(base, atk, def int) int {
	d := base + atk/2 - def/3
	if d < 1 {
		return 1
	}
	return d
}

// DotTick computes one damage-over-time tick: base + atk/4 - def/4,
// floored at 1.
func DotTick(base, atk, def int) int {
	d := base + atk/4 - def/4
	if d < 1 {
		return 1
	}
	return d
}

// dodgeChance is the defender's percent chance to avoid an incoming attack
// or DoT application.
func dodgeChance(defender *Fighter) int {
	return 5 + defender.EffectiveSpeed()
}

// critPrefix returns the narration prefix for a critical hit.
func critPrefix(crit bool) string {
	if crit {
		return "CRIT! "
	}
	return ""
}
