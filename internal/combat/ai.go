package combat

// Move slots. Every class's move table uses this order, so a slot index is
// valid for any fighter.
const (
	SlotAttack = iota
	SlotDefend
	SlotDoT
	SlotBuff
	SlotUltimate
)

// ChooseMove picks a move slot for self against opp. Rules are evaluated in
// strict priority order and the first match wins; each rule draws a fresh
// roll, and a failed roll falls through to the next rule. Every gated slot
// checks charge before it can be returned, so the policy never picks a move
// it cannot afford.
func ChooseMove(self, opp *Fighter, src Source) int {
	hpPct := self.HPPercent()

	if self.Charge == MaxCharge && rollPct(src) < 65 {
		return SlotUltimate
	}
	if hpPct < 25 && rollPct(src) < 60 {
		return SlotDefend
	}

	if opp.BuffActive {
		r := rollPct(src)
		if r < 45 {
			return SlotAttack
		}
		if r < 70 && self.Charge >= 3 {
			return SlotDoT
		}
	}
	if opp.DotStacks < MaxDotStacks && self.Charge >= 3 && rollPct(src) < 35 {
		return SlotDoT
	}
	if !self.BuffActive && self.Charge >= 2 && hpPct > 40 && rollPct(src) < 40 {
		return SlotBuff
	}
	if self.Charge >= 7 && self.Charge < MaxCharge && rollPct(src) < 25 {
		return SlotDefend
	}
	return SlotAttack
}
