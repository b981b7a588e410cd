package sim

// Intents is the per-tick input snapshot. Frontends only record raw intent
// flags from their event handlers; the simulation applies them at the next
// Advance, so nothing outside the loop ever mutates entity collections.
type Intents struct {
	// MoveX/MoveY are the desired movement direction, each in [-1, 1].
	MoveX, MoveY float64

	// Fire requests a shot toward the aim point, subject to the cooldown.
	Fire bool

	// AimX/AimY is the world-space point bullets travel toward.
	AimX, AimY float64

	// Restart requests a fresh session after game over.
	Restart bool
}
