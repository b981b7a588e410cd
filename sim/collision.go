package sim

import "math"

// Resolver performs pairwise circle-overlap checks between bullets,
// enemies, the player, and collectibles. Overlap is distance < r1+r2; no
// swept collision, so tunneling at extreme velocity is an accepted
// approximation at this entity scale. Entities that die this tick are only
// marked here; pool release happens at the end of the tick, after score
// mutation, preserving the frame's fixed ordering.
type Resolver struct {
	cfg Config

	deadBullets      []*Bullet
	deadEnemies      []*Enemy
	deadCollectibles []*Collectible
}

// NewResolver creates a resolver for the given tuning.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve runs all collision checks for one tick, decrementing health and
// emitting events. dt drives the collectible attraction nudge.
func (r *Resolver) Resolve(dt float64, store *Store, player *Player, state *GameState, events *eventBuffer) {
	r.resolveBullets(store, state, events)
	r.resolvePlayerContact(store, player, state, events)
	r.resolvePickups(dt, store, player, events)
}

// resolveBullets checks every active bullet against every active enemy.
// Each bullet appears once in the active slice, so breaking after its hit
// is enough to keep it single-use.
func (r *Resolver) resolveBullets(store *Store, state *GameState, events *eventBuffer) {
	for _, b := range store.Bullets.Active() {
		for _, e := range store.Enemies.Active() {
			if e.Health <= 0 {
				continue
			}
			if !b.Overlaps(&e.Body) {
				continue
			}

			e.Health -= b.Damage
			r.deadBullets = append(r.deadBullets, b)

			if e.Health <= 0 {
				r.deadEnemies = append(r.deadEnemies, e)
				events.emit(Event{
					Type:       EventKill,
					X:          e.X,
					Y:          e.Y,
					Points:     e.Score,
					Multiplier: state.Multiplier,
				})
			}
			break // one hit per bullet
		}
	}
}

// resolvePlayerContact handles enemies reaching the player. A shield kills
// the enemy outright; otherwise a life is lost and a short invulnerability
// window opens.
func (r *Resolver) resolvePlayerContact(store *Store, player *Player, state *GameState, events *eventBuffer) {
	for _, e := range store.Enemies.Active() {
		if e.Health <= 0 {
			continue
		}
		if !player.Overlaps(&e.Body) {
			continue
		}

		if state.Shield > 0 {
			e.Health = 0
			r.deadEnemies = append(r.deadEnemies, e)
			events.emit(Event{
				Type:       EventKill,
				X:          e.X,
				Y:          e.Y,
				Points:     e.Score,
				Multiplier: state.Multiplier,
			})
			continue
		}

		if player.Invuln > 0 {
			continue
		}

		e.Health = 0
		r.deadEnemies = append(r.deadEnemies, e)
		player.Invuln = r.cfg.InvulnTime
		events.emit(Event{Type: EventLifeLost, X: e.X, Y: e.Y})
	}
}

// resolvePickups nudges near collectibles toward the player, then runs the
// overlap test, so near-misses still resolve as pickups.
func (r *Resolver) resolvePickups(dt float64, store *Store, player *Player, events *eventBuffer) {
	for _, c := range store.Collectibles.Active() {
		dx := player.X - c.X
		dy := player.Y - c.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		if dist < r.cfg.AttractionDistance && dist > 0 {
			step := r.cfg.AttractionSpeed * dt
			if step > dist {
				step = dist
			}
			c.X += dx / dist * step
			c.Y += dy / dist * step
		}

		if !player.Overlaps(&c.Body) {
			continue
		}

		r.deadCollectibles = append(r.deadCollectibles, c)
		ev := Event{Type: EventPickup, X: c.X, Y: c.Y, Kind: c.Kind}
		if c.Kind != CollectGem {
			ev.Type = EventPowerup
		}
		events.emit(ev)
	}
}

// ReleaseDead returns everything marked this tick to its pool. Release is
// idempotent, so an entity marked twice is reclaimed once.
func (r *Resolver) ReleaseDead(store *Store) {
	for _, b := range r.deadBullets {
		store.Bullets.Release(b)
	}
	for _, e := range r.deadEnemies {
		store.Enemies.Release(e)
	}
	for _, c := range r.deadCollectibles {
		store.Collectibles.Release(c)
	}
	r.deadBullets = r.deadBullets[:0]
	r.deadEnemies = r.deadEnemies[:0]
	r.deadCollectibles = r.deadCollectibles[:0]
}
