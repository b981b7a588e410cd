package sim

import (
	"math"
	"sync/atomic"
)

// EntityID is a unique identifier for any simulation entity.
// IDs are reassigned every time an entity is acquired from a pool, so a
// stale reference to a released entity can always be detected.
type EntityID uint64

// InvalidEntityID represents an unset or invalidated entity reference.
const InvalidEntityID EntityID = 0

var nextEntityID uint64

func newEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Body holds the kinematic state shared by every pooled entity variant.
type Body struct {
	ID     EntityID
	X, Y   float64
	VX, VY float64
	Radius float64
}

// DistanceTo returns the Euclidean distance to another body.
func (b *Body) DistanceTo(other *Body) float64 {
	dx := b.X - other.X
	dy := b.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlaps reports whether two bodies intersect as circles.
func (b *Body) Overlaps(other *Body) bool {
	return b.DistanceTo(other) < b.Radius+other.Radius
}

// valid reports whether the body's position is finite. Entities that pick
// up a NaN or infinite coordinate are despawned rather than rendered.
func (b *Body) valid() bool {
	return !math.IsNaN(b.X) && !math.IsNaN(b.Y) &&
		!math.IsInf(b.X, 0) && !math.IsInf(b.Y, 0)
}

// Particle is a short-lived visual fragment from an explosion burst.
type Particle struct {
	Body
	Age      float64
	Lifetime float64
	Size     float64
	Hue      uint8 // renderer-interpreted color index
}

func (p *Particle) reset() {
	p.Body = Body{}
	p.Age = 0
	p.Lifetime = 0
	p.Size = 0
	p.Hue = 0
}

// Bullet is a player projectile.
type Bullet struct {
	Body
	Age      float64
	Lifetime float64
	Damage   float64
}

func (b *Bullet) reset() {
	b.Body = Body{}
	b.Age = 0
	b.Lifetime = 0
	b.Damage = 0
}

// Enemy chases the player until killed or culled.
type Enemy struct {
	Body
	Health    float64
	MaxHealth float64
	Score     int
}

func (e *Enemy) reset() {
	e.Body = Body{}
	e.Health = 0
	e.MaxHealth = 0
	e.Score = 0
}

// CollectibleKind distinguishes plain score gems from timed powerups.
type CollectibleKind int

const (
	CollectGem CollectibleKind = iota
	CollectRapidFire
	CollectShield
	CollectDoubler
)

// Collectible is picked up by the player, with an attraction pre-step
// pulling nearby ones toward the player before the overlap test.
type Collectible struct {
	Body
	Age      float64
	Lifetime float64
	Kind     CollectibleKind
}

func (c *Collectible) reset() {
	c.Body = Body{}
	c.Age = 0
	c.Lifetime = 0
	c.Kind = CollectGem
}

// Player is the single controlled entity. It is not pooled.
type Player struct {
	Body
	Invuln float64 // remaining invulnerability, seconds
}
