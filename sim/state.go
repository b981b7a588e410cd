package sim

// GameState holds the per-session mutable scoring and survival state. It is
// created at game start, mutated only by the single simulation loop, and
// discarded on restart.
type GameState struct {
	Score      int
	Lives      int
	Multiplier float64 // combo multiplier, >= 1
	FrenzyTier int     // 0..Config.MaxTier()
	Difficulty int     // monotone non-decreasing over session time
	Elapsed    float64 // session time in seconds
	GameOver   bool

	// Remaining powerup effect time in seconds. Zero means inactive.
	RapidFire float64
	Shield    float64
	Doubler   float64
}

// NewGameState returns the starting state for a session.
func NewGameState(cfg Config) *GameState {
	return &GameState{
		Lives:      cfg.MaxLives,
		Multiplier: 1.0,
	}
}

// AddScore adds a non-negative amount to the score.
func (s *GameState) AddScore(amount int) {
	if amount < 0 {
		return
	}
	s.Score += amount
}

// tickEffects counts down the active powerup timers.
func (s *GameState) tickEffects(dt float64) {
	s.RapidFire = tickDown(s.RapidFire, dt)
	s.Shield = tickDown(s.Shield, dt)
	s.Doubler = tickDown(s.Doubler, dt)
}

func tickDown(remaining, dt float64) float64 {
	remaining -= dt
	if remaining < 0 {
		return 0
	}
	return remaining
}
