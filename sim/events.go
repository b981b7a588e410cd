package sim

// EventType identifies a simulation event emitted during a tick.
type EventType int

const (
	// EventKill fires when an enemy's health reaches zero.
	// Carries position, the combo multiplier at kill time, and base points.
	EventKill EventType = iota

	// EventPickup fires when the player collects a collectible.
	EventPickup

	// EventPowerup fires when the collected item was a powerup.
	EventPowerup

	// EventComboEnd fires when the combo deadline elapses with no kill.
	EventComboEnd

	// EventTierUp fires when the kill streak crosses a frenzy threshold.
	// Carries the new tier and its bonus duration.
	EventTierUp

	// EventLifeLost fires when an enemy reaches the player.
	EventLifeLost

	// EventGameOver fires once when lives reach zero.
	EventGameOver
)

// Event is a single occurrence inside one simulation tick. Events are
// buffered in order and drained after collision resolution, so score
// mutation always sees them in emission order.
type Event struct {
	Type       EventType
	X, Y       float64
	Points     int             // base points before multipliers
	Multiplier float64         // combo multiplier active at emission
	Streak     int             // kill streak at emission
	Tier       int             // frenzy tier (EventTierUp)
	Bonus      float64         // bonus duration in seconds (EventTierUp)
	Kind       CollectibleKind // collected kind (EventPickup/EventPowerup)
}

// eventBuffer collects events within a tick. Consumers iterate by index so
// events emitted while processing (e.g. a tier-up triggered by a kill) are
// seen in the same pass, then the buffer is cleared for the next tick.
type eventBuffer struct {
	events []Event
}

func (b *eventBuffer) emit(ev Event) {
	b.events = append(b.events, ev)
}

// clear empties the buffer, keeping the backing array for reuse.
func (b *eventBuffer) clear() {
	b.events = b.events[:0]
}
