package sim

// Store owns one pool per entity variant. An entity is exclusively owned by
// its pool's active set while live and sits on the free list otherwise.
type Store struct {
	Particles    *Pool[*Particle]
	Bullets      *Pool[*Bullet]
	Enemies      *Pool[*Enemy]
	Collectibles *Pool[*Collectible]
}

// NewStore creates a store with empty pools for every variant.
func NewStore() *Store {
	return &Store{
		Particles:    NewPool(func() *Particle { return &Particle{} }, func(p *Particle) { p.reset() }),
		Bullets:      NewPool(func() *Bullet { return &Bullet{} }, func(b *Bullet) { b.reset() }),
		Enemies:      NewPool(func() *Enemy { return &Enemy{} }, func(e *Enemy) { e.reset() }),
		Collectibles: NewPool(func() *Collectible { return &Collectible{} }, func(c *Collectible) { c.reset() }),
	}
}

// ReleaseAll reclaims every active entity of every variant (game restart).
func (s *Store) ReleaseAll() {
	s.Particles.ReleaseAll()
	s.Bullets.ReleaseAll()
	s.Enemies.ReleaseAll()
	s.Collectibles.ReleaseAll()
}
