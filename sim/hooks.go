package sim

import "log"

// Gamification receives scoring side effects. Implementations may persist
// or display them; the simulation never depends on their success.
type Gamification interface {
	// AddPoints records points earned, tagged with a reason string such as
	// "kill", "pickup", or "frenzy-bonus".
	AddPoints(amount int, reason string)

	// UnlockAchievement marks a fixed-id achievement as earned.
	UnlockAchievement(id string)

	// ShowPopup displays a transient score popup at a world position.
	ShowPopup(text string, x, y float64)
}

// AudioHook receives fire-and-forget sound cues. No return value; failures
// must never interrupt the simulation.
type AudioHook interface {
	// Event signals a named cue such as "kill", "frenzy-start", or
	// "killstreak", with an accompanying value (tier, streak count).
	Event(name string, value int)
}

// NopGamification is the default when no gamification collaborator is wired.
type NopGamification struct{}

func (NopGamification) AddPoints(int, string)              {}
func (NopGamification) UnlockAchievement(string)           {}
func (NopGamification) ShowPopup(string, float64, float64) {}

// NopAudio is the default when no audio collaborator is wired.
type NopAudio struct{}

func (NopAudio) Event(string, int) {}

// Hooks bundles the optional collaborators. Zero-value fields are replaced
// with no-op implementations by NewSim, so callers never check for nil.
type Hooks struct {
	Gamification Gamification
	Audio        AudioHook
}

func (h Hooks) withDefaults() Hooks {
	if h.Gamification == nil {
		h.Gamification = NopGamification{}
	}
	if h.Audio == nil {
		h.Audio = NopAudio{}
	}
	return h
}

// safeHook runs fn and swallows any panic from a misbehaving collaborator.
// A broken audio or gamification hook degrades the session, it must never
// stop the loop.
func safeHook(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("collaborator %s failed: %v", name, r)
		}
	}()
	fn()
}
