package combat

// Source is the engine's view of a random number generator. *rand.Rand
// satisfies it; tests substitute deterministic implementations so outcomes
// are reproducible.
type Source interface {
	Intn(n int) int
}

// rollPct returns a uniform roll in [0, 100).
func rollPct(src Source) int {
	return src.Intn(100)
}
