package sim

import "math"

// cullMargin is how far outside the field an entity may drift before it is
// reclaimed. Enemies spawn just outside the edge, so the margin must not
// eat them on their first frame.
const cullMargin = 120.0

// integrate advances every active entity by dt seconds, in the fixed order
// player, bullets, particles, enemies, collectibles, then decrements
// lifetimes and culls anything expired, out of bounds, or with a corrupted
// position.
func (s *Sim) integrate(dt float64) {
	s.integratePlayer(dt)
	s.integrateBullets(dt)
	s.integrateParticles(dt)
	s.integrateEnemies(dt)
	s.integrateCollectibles(dt)
}

// integratePlayer applies the movement intent directly and clamps the
// player to the field. With no intent the velocity decays by friction so
// the player skids to a stop.
func (s *Sim) integratePlayer(dt float64) {
	p := &s.player
	in := s.intents

	mag := math.Hypot(in.MoveX, in.MoveY)
	if mag > 0.01 {
		// Normalize so diagonals are not faster.
		p.VX = in.MoveX / mag * s.cfg.PlayerSpeed
		p.VY = in.MoveY / mag * s.cfg.PlayerSpeed
	} else {
		p.VX *= s.cfg.PlayerFriction
		p.VY *= s.cfg.PlayerFriction
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.X = clamp(p.X, p.Radius, s.cfg.FieldWidth-p.Radius)
	p.Y = clamp(p.Y, p.Radius, s.cfg.FieldHeight-p.Radius)

	p.Invuln = tickDown(p.Invuln, dt)
}

func (s *Sim) integrateBullets(dt float64) {
	active := s.store.Bullets.Active()
	for i := len(active) - 1; i >= 0; i-- {
		b := active[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Age += dt

		if b.Age >= b.Lifetime || !b.valid() || s.outOfField(&b.Body) {
			s.store.Bullets.Release(b)
		}
	}
}

func (s *Sim) integrateParticles(dt float64) {
	active := s.store.Particles.Active()
	for i := len(active) - 1; i >= 0; i-- {
		p := active[i]
		// Particles fall under gravity for the spark-fountain look.
		p.VY += s.cfg.ParticleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt

		if p.Age >= p.Lifetime || !p.valid() || s.outOfField(&p.Body) {
			s.store.Particles.Release(p)
		}
	}
}

// integrateEnemies re-aims every enemy at the player each tick and steps it
// forward. Chase speed rises gently with difficulty.
func (s *Sim) integrateEnemies(dt float64) {
	speed := s.cfg.EnemySpeed * (1 + 0.05*float64(s.state.Difficulty))

	active := s.store.Enemies.Active()
	for i := len(active) - 1; i >= 0; i-- {
		e := active[i]

		dx := s.player.X - e.X
		dy := s.player.Y - e.Y
		dist := math.Hypot(dx, dy)
		if dist > 0.01 {
			e.VX = dx / dist * speed
			e.VY = dy / dist * speed
		}
		e.X += e.VX * dt
		e.Y += e.VY * dt

		if !e.valid() || s.outOfField(&e.Body) {
			s.store.Enemies.Release(e)
		}
	}
}

func (s *Sim) integrateCollectibles(dt float64) {
	active := s.store.Collectibles.Active()
	for i := len(active) - 1; i >= 0; i-- {
		c := active[i]
		c.Age += dt

		if c.Age >= c.Lifetime || !c.valid() {
			s.store.Collectibles.Release(c)
		}
	}
}

// outOfField reports whether a body has left the playfield plus margin.
func (s *Sim) outOfField(b *Body) bool {
	return b.X < -cullMargin || b.X > s.cfg.FieldWidth+cullMargin ||
		b.Y < -cullMargin || b.Y > s.cfg.FieldHeight+cullMargin
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
