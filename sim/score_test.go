package sim

import "testing"

// TestComboDecay verifies the multiplier resets to 1 and the state returns
// to idle when exactly the timeout elapses with no kill.
func TestComboDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboTimeout = 3.0
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	tr.OnKill(10.0, 100, state, events)
	if !tr.ComboActive() {
		t.Fatal("combo not active after kill")
	}
	if state.Multiplier != 1.0+cfg.ComboIncrement {
		t.Fatalf("multiplier = %v, want %v", state.Multiplier, 1.0+cfg.ComboIncrement)
	}

	// Just before the deadline the combo holds.
	events.clear()
	tr.Tick(12.999, state, events)
	if !tr.ComboActive() {
		t.Fatal("combo expired early")
	}

	// At exactly the deadline it decays.
	tr.Tick(13.0, state, events)
	if tr.ComboActive() {
		t.Fatal("combo survived its deadline")
	}
	if state.Multiplier != 1.0 {
		t.Fatalf("multiplier after decay = %v, want 1", state.Multiplier)
	}
	if len(events.events) != 1 || events.events[0].Type != EventComboEnd {
		t.Fatalf("events = %+v, want one EventComboEnd", events.events)
	}
}

// TestComboRollingDeadline verifies each kill pushes the deadline out.
func TestComboRollingDeadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboTimeout = 3.0
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	tr.OnKill(0.0, 100, state, events)
	tr.OnKill(2.9, 100, state, events)

	tr.Tick(3.1, state, events) // old deadline passed, new one has not
	if !tr.ComboActive() {
		t.Fatal("deadline did not roll forward on kill")
	}
	tr.Tick(5.9, state, events)
	if tr.ComboActive() {
		t.Fatal("combo survived the rolled deadline")
	}
}

// TestComboCap verifies the multiplier saturates.
func TestComboCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboIncrement = 0.5
	cfg.ComboCap = 2.0
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	for i := 0; i < 10; i++ {
		tr.OnKill(float64(i)*0.1, 100, state, events)
	}
	if state.Multiplier != 2.0 {
		t.Fatalf("multiplier = %v, want cap 2.0", state.Multiplier)
	}
}

// TestFrenzyThresholds verifies tier advancement at each ascending streak
// threshold with the configured bonus duration, capped at the max tier.
func TestFrenzyThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrenzyThresholds = []int{3, 6}
	cfg.FrenzyBonusTimes = []float64{2.0, 4.0}
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	now := 0.0
	kill := func() {
		now += 0.1
		tr.OnKill(now, 100, state, events)
	}

	kill()
	kill()
	if state.FrenzyTier != 0 {
		t.Fatalf("tier = %d before threshold, want 0", state.FrenzyTier)
	}

	kill() // streak 3 crosses first threshold
	if state.FrenzyTier != 1 {
		t.Fatalf("tier = %d at streak 3, want 1", state.FrenzyTier)
	}
	var tierUps []Event
	for _, ev := range events.events {
		if ev.Type == EventTierUp {
			tierUps = append(tierUps, ev)
		}
	}
	if len(tierUps) != 1 || tierUps[0].Tier != 1 || tierUps[0].Bonus != 2.0 {
		t.Fatalf("tier-up events = %+v, want one with tier 1 bonus 2.0", tierUps)
	}

	kill()
	kill()
	kill() // streak 6 crosses second threshold
	if state.FrenzyTier != 2 {
		t.Fatalf("tier = %d at streak 6, want 2", state.FrenzyTier)
	}

	// Beyond the last threshold the tier is capped.
	for i := 0; i < 20; i++ {
		kill()
	}
	if state.FrenzyTier != 2 {
		t.Fatalf("tier = %d past cap, want 2", state.FrenzyTier)
	}
}

// TestStreakIndependentOfComboTimeout verifies the streak counter survives
// a combo decay; the two are separate state machines.
func TestStreakIndependentOfComboTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboTimeout = 1.0
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	tr.OnKill(0.0, 100, state, events)
	tr.OnKill(0.5, 100, state, events)
	tr.Tick(5.0, state, events) // combo long gone

	if tr.ComboActive() {
		t.Fatal("combo should have decayed")
	}
	if tr.Streak() != 2 {
		t.Fatalf("streak = %d after combo decay, want 2", tr.Streak())
	}
}

// TestLifeLostResetsStreak verifies losing a life clears the streak and
// the frenzy tier.
func TestLifeLostResetsStreak(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrenzyThresholds = []int{2}
	cfg.FrenzyBonusTimes = []float64{2.0}
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	tr.OnKill(0.0, 100, state, events)
	tr.OnKill(0.1, 100, state, events)
	if state.FrenzyTier != 1 {
		t.Fatalf("tier = %d, want 1", state.FrenzyTier)
	}

	tr.OnLifeLost(state)
	if tr.Streak() != 0 || state.FrenzyTier != 0 {
		t.Fatalf("streak %d tier %d after life lost, want 0/0", tr.Streak(), state.FrenzyTier)
	}
}

// TestKillPoints verifies kill scoring applies combo, frenzy, and doubler
// scaling.
func TestKillPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ComboIncrement = 1.0
	cfg.ComboCap = 10.0
	cfg.FrenzyThresholds = []int{100}
	tr := NewTracker(cfg)
	state := NewGameState(cfg)
	events := &eventBuffer{}

	// First kill: multiplier 2.0, tier 0 -> 100*2*1 = 200
	awarded := tr.OnKill(0.0, 100, state, events)
	if awarded != 200 {
		t.Fatalf("awarded = %d, want 200", awarded)
	}
	if state.Score != 200 {
		t.Fatalf("score = %d, want 200", state.Score)
	}

	// Doubler active: multiplier 3.0 -> 100*3*1*2 = 600
	state.Doubler = 5.0
	awarded = tr.OnKill(0.1, 100, state, events)
	if awarded != 600 {
		t.Fatalf("awarded with doubler = %d, want 600", awarded)
	}
}
