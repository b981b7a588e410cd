package sim

// comboState is the tracker's two-state machine.
type comboState int

const (
	comboIdle comboState = iota
	comboActive
)

// Tracker accumulates score, the rolling combo multiplier, and the frenzy
// tier. The combo and the kill streak are deliberately independent state:
// the combo decays on a rolling timeout while the streak only resets when
// the player loses a life.
type Tracker struct {
	cfg Config

	state    comboState
	deadline float64 // session time at which the combo expires
	streak   int     // kills since last life lost
}

// NewTracker creates a tracker for one session.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Streak returns the current kill streak.
func (t *Tracker) Streak() int {
	return t.streak
}

// ComboActive reports whether a combo window is open.
func (t *Tracker) ComboActive() bool {
	return t.state == comboActive
}

// Tick expires the combo if the deadline has passed without a kill. Emits
// EventComboEnd on the transition back to idle.
func (t *Tracker) Tick(now float64, state *GameState, events *eventBuffer) {
	if t.state == comboActive && now >= t.deadline {
		t.state = comboIdle
		state.Multiplier = 1.0
		events.emit(Event{Type: EventComboEnd})
	}
}

// OnKill applies one kill: bump and cap the multiplier, push the deadline
// out, advance the streak, and cross frenzy thresholds. Returns the points
// awarded for the kill after combo, frenzy, and doubler scaling.
func (t *Tracker) OnKill(now float64, base int, state *GameState, events *eventBuffer) int {
	if t.state == comboIdle {
		t.state = comboActive
		state.Multiplier = 1.0
	}
	state.Multiplier += t.cfg.ComboIncrement
	if state.Multiplier > t.cfg.ComboCap {
		state.Multiplier = t.cfg.ComboCap
	}
	t.deadline = now + t.cfg.ComboTimeout

	t.streak++
	t.advanceFrenzy(state, events)

	points := float64(base) * state.Multiplier * (1 + float64(state.FrenzyTier))
	if state.Doubler > 0 {
		points *= 2
	}
	awarded := int(points)
	state.AddScore(awarded)
	return awarded
}

// OnLifeLost resets the streak. The combo window is left untouched; only
// its own timeout closes it.
func (t *Tracker) OnLifeLost(state *GameState) {
	t.streak = 0
	state.FrenzyTier = 0
}

// advanceFrenzy crosses at most one threshold per kill, capped at MaxTier,
// and emits a tier-up event carrying the tier's bonus duration.
func (t *Tracker) advanceFrenzy(state *GameState, events *eventBuffer) {
	next := state.FrenzyTier
	if next >= t.cfg.MaxTier() {
		return
	}
	if t.streak < t.cfg.FrenzyThresholds[next] {
		return
	}
	state.FrenzyTier = next + 1

	bonus := 0.0
	if next < len(t.cfg.FrenzyBonusTimes) {
		bonus = t.cfg.FrenzyBonusTimes[next]
	}
	events.emit(Event{
		Type:   EventTierUp,
		Tier:   state.FrenzyTier,
		Streak: t.streak,
		Bonus:  bonus,
	})
}
