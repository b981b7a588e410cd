package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Sim is the complete simulation: entity store, spawner, collision
// resolver, and score tracker driven by a single loop. All state is
// mutated in place by Advance; frontends feed intents in and read
// snapshots out, never touching entity collections directly.
//
// Within one tick the order is fixed: combo decay check, spawn, integrate,
// fire, collision resolve, score mutate, pool release. An entity created
// this tick is eligible for collision in the same tick but never collides
// before its position is initialized.
type Sim struct {
	cfg      Config
	store    *Store
	spawner  *Spawner
	resolver *Resolver
	tracker  *Tracker
	state    *GameState
	hooks    Hooks
	rng      *rand.Rand

	player  Player
	intents Intents
	events  eventBuffer

	fireCooldown float64
	paused       bool

	// One-shot achievement latches, kept across restarts so a popup does
	// not repeat every session.
	unlocked map[string]bool
}

// NewSim creates a simulation with the given tuning and collaborators.
func NewSim(cfg Config, hooks Hooks) *Sim {
	return newSim(cfg, hooks, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSimSeeded creates a simulation with a deterministic random source.
func NewSimSeeded(cfg Config, hooks Hooks, seed int64) *Sim {
	return newSim(cfg, hooks, rand.New(rand.NewSource(seed)))
}

func newSim(cfg Config, hooks Hooks, rng *rand.Rand) *Sim {
	s := &Sim{
		cfg:      cfg,
		store:    NewStore(),
		resolver: NewResolver(cfg),
		hooks:    hooks.withDefaults(),
		rng:      rng,
		unlocked: make(map[string]bool),
	}
	s.spawner = NewSpawner(cfg, rng)
	s.tracker = NewTracker(cfg)
	s.state = NewGameState(cfg)
	s.placePlayer()
	return s
}

func (s *Sim) placePlayer() {
	s.player = Player{Body: Body{
		ID:     newEntityID(),
		X:      s.cfg.FieldWidth / 2,
		Y:      s.cfg.FieldHeight / 2,
		Radius: s.cfg.PlayerRadius,
	}}
}

// SetIntents records the input snapshot applied on the next Advance.
func (s *Sim) SetIntents(in Intents) {
	s.intents = in
}

// Pause suspends Advance. Idempotent.
func (s *Sim) Pause() { s.paused = true }

// Resume re-enables Advance. Idempotent.
func (s *Sim) Resume() { s.paused = false }

// Paused reports whether the simulation is suspended.
func (s *Sim) Paused() bool { return s.paused }

// Advance runs one tick of dt seconds. dt is the raw frame delta, never
// clamped, so physics speed follows the frame rate.
func (s *Sim) Advance(dt float64) {
	if s.paused || dt <= 0 || math.IsNaN(dt) {
		return
	}

	if s.state.GameOver {
		if s.intents.Restart {
			s.Reset()
		}
		return
	}

	s.state.Elapsed += dt
	s.state.Difficulty = int(s.state.Elapsed / s.cfg.DifficultyRamp)
	s.state.tickEffects(dt)
	s.fireCooldown = tickDown(s.fireCooldown, dt)

	s.tracker.Tick(s.state.Elapsed, s.state, &s.events)
	s.spawner.Tick(dt, s.store, s.state, &s.player)
	s.integrate(dt)
	s.handleFire()
	s.resolver.Resolve(dt, s.store, &s.player, s.state, &s.events)
	s.processEvents()
	s.resolver.ReleaseDead(s.store)
	s.events.clear()

	s.checkMilestones()
}

// handleFire spawns a bullet toward the aim point when the fire intent is
// set and the cooldown has elapsed. Rapid fire shortens the cooldown.
func (s *Sim) handleFire() {
	if !s.intents.Fire || s.fireCooldown > 0 {
		return
	}
	if s.store.Bullets.ActiveCount() >= s.cfg.Caps().MaxBullets {
		return
	}

	dx := s.intents.AimX - s.player.X
	dy := s.intents.AimY - s.player.Y
	dist := math.Hypot(dx, dy)
	if dist < 0.01 {
		dx, dy, dist = 0, -1, 1 // degenerate aim: shoot straight up
	}

	b := s.store.Bullets.Acquire()
	b.ID = newEntityID()
	b.X = s.player.X
	b.Y = s.player.Y
	b.Radius = s.cfg.BulletRadius
	b.VX = dx / dist * s.cfg.BulletSpeed
	b.VY = dy / dist * s.cfg.BulletSpeed
	b.Damage = s.cfg.BulletDamage
	b.Lifetime = s.cfg.BulletLifetime

	if s.state.RapidFire > 0 {
		s.fireCooldown = s.cfg.RapidCooldown
	} else {
		s.fireCooldown = s.cfg.FireCooldown
	}
}

// processEvents drains the tick's event buffer in emission order. Index
// iteration lets handlers append follow-up events (a kill crossing a
// frenzy threshold) that are then seen in the same pass.
func (s *Sim) processEvents() {
	for i := 0; i < len(s.events.events); i++ {
		ev := s.events.events[i]
		switch ev.Type {
		case EventKill:
			s.onKill(ev)
		case EventPickup:
			s.onPickup(ev)
		case EventPowerup:
			s.onPowerup(ev)
		case EventComboEnd:
			s.audio("combo-end", 0)
		case EventTierUp:
			s.audio("frenzy-start", ev.Tier)
			s.popup(fmt.Sprintf("FRENZY %d", ev.Tier), s.player.X, s.player.Y-30)
		case EventLifeLost:
			s.onLifeLost(ev)
		case EventGameOver:
			s.audio("game-over", s.state.Score)
		}
	}
}

func (s *Sim) onKill(ev Event) {
	awarded := s.tracker.OnKill(s.state.Elapsed, ev.Points, s.state, &s.events)
	s.spawnBurst(ev.X, ev.Y, s.cfg.ExplosionBurst)

	s.gamify(func(g Gamification) { g.AddPoints(awarded, "kill") })
	s.popup(fmt.Sprintf("+%d", awarded), ev.X, ev.Y)
	s.audio("kill", s.tracker.Streak())
	if streak := s.tracker.Streak(); streak > 0 && streak%10 == 0 {
		s.audio("killstreak", streak)
	}
	s.unlockOnce("first-blood")
}

func (s *Sim) onPickup(ev Event) {
	points := s.cfg.CollectibleScore
	if s.state.Doubler > 0 {
		points *= 2
	}
	s.state.AddScore(points)

	s.gamify(func(g Gamification) { g.AddPoints(points, "pickup") })
	s.popup(fmt.Sprintf("+%d", points), ev.X, ev.Y)
	s.audio("pickup", points)
}

func (s *Sim) onPowerup(ev Event) {
	switch ev.Kind {
	case CollectRapidFire:
		s.state.RapidFire = s.cfg.RapidFireDuration
		s.popup("RAPID FIRE", ev.X, ev.Y)
	case CollectShield:
		s.state.Shield = s.cfg.ShieldDuration
		s.popup("SHIELD", ev.X, ev.Y)
	case CollectDoubler:
		s.state.Doubler = s.cfg.DoublerDuration
		s.popup("x2 SCORE", ev.X, ev.Y)
	}
	s.audio("powerup", int(ev.Kind))
	s.unlockOnce("powered-up")
}

func (s *Sim) onLifeLost(ev Event) {
	s.state.Lives--
	if s.state.Lives < 0 {
		s.state.Lives = 0
	}
	s.tracker.OnLifeLost(s.state)
	s.spawnBurst(ev.X, ev.Y, s.cfg.ExplosionBurst*2)
	s.audio("hit", s.state.Lives)

	if s.state.Lives == 0 && !s.state.GameOver {
		s.state.GameOver = true
		s.events.emit(Event{Type: EventGameOver})
	}
}

// checkMilestones fires one-shot achievements outside the event flow.
func (s *Sim) checkMilestones() {
	if s.state.Elapsed >= 60 {
		s.unlockOnce("survivor-60")
	}
	if s.state.Multiplier >= s.cfg.ComboCap {
		s.unlockOnce("secret-max-combo")
	}
}

// spawnBurst emits an explosion of particles at a position, respecting the
// device-tier particle cap.
func (s *Sim) spawnBurst(x, y float64, count int) {
	capLeft := s.cfg.Caps().MaxParticles - s.store.Particles.ActiveCount()
	if count > capLeft {
		count = capLeft
	}
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 40 + s.rng.Float64()*160

		p := s.store.Particles.Acquire()
		p.ID = newEntityID()
		p.X = x
		p.Y = y
		p.Radius = 1
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.Lifetime = s.cfg.ParticleLifetime * (0.5 + s.rng.Float64()*0.5)
		p.Size = 1 + s.rng.Float64()*2
		p.Hue = uint8(s.rng.Intn(256))
	}
}

// Reset discards the session: every entity returns to its pool and a fresh
// game state begins. Achievement latches survive restarts.
func (s *Sim) Reset() {
	s.store.ReleaseAll()
	s.resolver.ReleaseDead(s.store)
	s.events.clear()
	s.spawner = NewSpawner(s.cfg, s.rng)
	s.tracker = NewTracker(s.cfg)
	s.state = NewGameState(s.cfg)
	s.fireCooldown = 0
	s.intents = Intents{}
	s.placePlayer()
}

// hook call helpers, all panic-safe

func (s *Sim) gamify(fn func(Gamification)) {
	safeHook("gamification", func() { fn(s.hooks.Gamification) })
}

func (s *Sim) popup(text string, x, y float64) {
	safeHook("gamification", func() { s.hooks.Gamification.ShowPopup(text, x, y) })
}

func (s *Sim) audio(name string, value int) {
	safeHook("audio", func() { s.hooks.Audio.Event(name, value) })
}

func (s *Sim) unlockOnce(id string) {
	if s.unlocked[id] {
		return
	}
	s.unlocked[id] = true
	s.gamify(func(g Gamification) { g.UnlockAchievement(id) })
}

// Snapshot accessors for renderers and HUDs. The returned slices are owned
// by the pools and valid until the next Advance.

// Player returns a copy of the player state.
func (s *Sim) Player() Player { return s.player }

// State returns a copy of the current game state.
func (s *Sim) State() GameState { return *s.state }

// Streak returns the current kill streak.
func (s *Sim) Streak() int { return s.tracker.Streak() }

// Bullets returns the active bullets.
func (s *Sim) Bullets() []*Bullet { return s.store.Bullets.Active() }

// Enemies returns the active enemies.
func (s *Sim) Enemies() []*Enemy { return s.store.Enemies.Active() }

// Particles returns the active particles.
func (s *Sim) Particles() []*Particle { return s.store.Particles.Active() }

// Collectibles returns the active collectibles.
func (s *Sim) Collectibles() []*Collectible { return s.store.Collectibles.Active() }

// Config returns the simulation tuning.
func (s *Sim) Config() Config { return s.cfg }
