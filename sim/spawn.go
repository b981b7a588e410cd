package sim

import (
	"math"
	"math/rand"
)

// Spawner creates enemies and collectibles on per-type time accumulators.
// Each tick the accumulator gains the frame delta; every time it reaches
// the current interval, the interval is subtracted (fractional overshoot is
// preserved, never reset) and one entity spawns. Over elapsed time T with
// interval I this yields exactly floor(T/I) spawns regardless of frame
// granularity.
type Spawner struct {
	cfg  Config
	rand *rand.Rand

	enemyAcc       float64
	collectibleAcc float64
}

// NewSpawner creates a spawner using the given random source. Tests pass a
// seeded source for reproducible draws.
func NewSpawner(cfg Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rand: rng}
}

// Tick advances the accumulators and spawns into the store. Spawning is
// suppressed per type once the device-tier cap is reached; the accumulator
// still drains so pressure does not pile up while capped.
func (sp *Spawner) Tick(dt float64, store *Store, state *GameState, player *Player) {
	caps := sp.cfg.Caps()

	// A non-positive interval would drain the accumulator by nothing and
	// loop forever, so misconfigured intervals disable the spawn type.
	interval := sp.cfg.EnemyIntervalAt(state.Difficulty)
	sp.enemyAcc += dt
	for interval > 0 && sp.enemyAcc >= interval {
		sp.enemyAcc -= interval
		if store.Enemies.ActiveCount() >= caps.MaxEnemies {
			continue
		}
		sp.spawnEnemy(store, state)
	}

	interval = sp.cfg.CollectibleIntervalAt(state.Difficulty)
	sp.collectibleAcc += dt
	for interval > 0 && sp.collectibleAcc >= interval {
		sp.collectibleAcc -= interval
		if store.Collectibles.ActiveCount() >= caps.MaxCollectibles {
			continue
		}
		sp.spawnCollectible(store, player)
	}
}

// spawnEnemy places an enemy on a random field edge, headed inward. The
// chase behavior re-aims at the player every update tick.
func (sp *Spawner) spawnEnemy(store *Store, state *GameState) {
	var x, y float64
	switch sp.rand.Intn(4) {
	case 0: // top
		x = sp.rand.Float64() * sp.cfg.FieldWidth
		y = -sp.cfg.EnemyRadius
	case 1: // right
		x = sp.cfg.FieldWidth + sp.cfg.EnemyRadius
		y = sp.rand.Float64() * sp.cfg.FieldHeight
	case 2: // bottom
		x = sp.rand.Float64() * sp.cfg.FieldWidth
		y = sp.cfg.FieldHeight + sp.cfg.EnemyRadius
	case 3: // left
		x = -sp.cfg.EnemyRadius
		y = sp.rand.Float64() * sp.cfg.FieldHeight
	}

	// Later difficulty levels ship slightly tougher enemies.
	health := sp.cfg.EnemyHealth + math.Floor(float64(state.Difficulty)/3)

	e := store.Enemies.Acquire()
	e.ID = newEntityID()
	e.X = x
	e.Y = y
	e.Radius = sp.cfg.EnemyRadius
	e.Health = health
	e.MaxHealth = health
	e.Score = sp.cfg.EnemyKillScore
}

// spawnCollectible places a gem (or, by weighted draw, a powerup) at a
// random field position away from the edges.
func (sp *Spawner) spawnCollectible(store *Store, player *Player) {
	margin := sp.cfg.CollectibleRadius * 4
	x := margin + sp.rand.Float64()*(sp.cfg.FieldWidth-2*margin)
	y := margin + sp.rand.Float64()*(sp.cfg.FieldHeight-2*margin)

	c := store.Collectibles.Acquire()
	c.ID = newEntityID()
	c.X = x
	c.Y = y
	c.Radius = sp.cfg.CollectibleRadius
	c.Lifetime = sp.cfg.CollectibleLifetime
	c.Kind = sp.drawKind()
}

// drawKind gates powerups behind the spawn chance, then picks one of the
// powerup kinds by weight.
func (sp *Spawner) drawKind() CollectibleKind {
	if sp.rand.Float64() >= sp.cfg.PowerupSpawnChance {
		return CollectGem
	}
	return weightedPowerup(sp.rand.Float64())
}

// powerupWeights orders the powerup draw. Rapid fire is the most common,
// the score doubler the rarest.
var powerupWeights = []struct {
	kind   CollectibleKind
	weight float64
}{
	{CollectRapidFire, 0.45},
	{CollectShield, 0.35},
	{CollectDoubler, 0.20},
}

// weightedPowerup maps a uniform draw in [0,1) to a powerup kind.
func weightedPowerup(roll float64) CollectibleKind {
	acc := 0.0
	for _, w := range powerupWeights {
		acc += w.weight
		if roll < acc {
			return w.kind
		}
	}
	return powerupWeights[len(powerupWeights)-1].kind
}
