package sim

import (
	"math/rand"
	"testing"
)

func spawnTestConfig() Config {
	cfg := DefaultConfig()
	// Generous caps so suppression does not interfere with rate tests.
	cfg.Tiers = map[DeviceTier]TierCaps{
		TierMid: {MaxEnemies: 100000, MaxBullets: 100000, MaxCollectibles: 100000, MaxParticles: 100000},
	}
	cfg.Tier = TierMid
	return cfg
}

// TestSpawnerRateBound verifies floor(T/I) spawn events over total elapsed
// time T with interval I, irrespective of per-frame delta granularity.
func TestSpawnerRateBound(t *testing.T) {
	cfg := spawnTestConfig()
	cfg.EnemyInterval = 0.5
	cfg.EnemyIntervalStep = 0
	cfg.EnemyIntervalFloor = 0.5
	cfg.CollectibleInterval = 1e9 // keep collectibles out of the count

	store := NewStore()
	state := NewGameState(cfg)
	player := &Player{Body: Body{X: 400, Y: 300, Radius: 15}}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	// 640 frames of 1/64s each: T = 10s exactly in binary arithmetic.
	const dt = 1.0 / 64.0
	for i := 0; i < 640; i++ {
		sp.Tick(dt, store, state, player)
	}

	// floor(10 / 0.5) = 20
	if got := store.Enemies.ActiveCount(); got != 20 {
		t.Fatalf("spawned %d enemies over 10s at 0.5s interval, want 20", got)
	}
}

// TestSpawnerOvershootPreserved verifies the accumulator subtracts the
// interval rather than resetting, so fractional overshoot carries over.
func TestSpawnerOvershootPreserved(t *testing.T) {
	cfg := spawnTestConfig()
	cfg.EnemyInterval = 0.25
	cfg.EnemyIntervalStep = 0
	cfg.EnemyIntervalFloor = 0.25
	cfg.CollectibleInterval = 1e9

	store := NewStore()
	state := NewGameState(cfg)
	player := &Player{Body: Body{X: 0, Y: 0, Radius: 15}}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	// Two 0.3s frames: 0.3 -> spawn, leftover 0.05; 0.35 -> spawn,
	// leftover 0.1. A reset-to-zero accumulator would also give 2 here,
	// but a third 0.16s frame only spawns with the preserved 0.1.
	sp.Tick(0.3, store, state, player)
	sp.Tick(0.3, store, state, player)
	if got := store.Enemies.ActiveCount(); got != 2 {
		t.Fatalf("spawned %d after 0.6s, want 2", got)
	}
	sp.Tick(0.16, store, state, player)
	if got := store.Enemies.ActiveCount(); got != 3 {
		t.Fatalf("spawned %d after 0.76s, want 3 (overshoot lost)", got)
	}
}

// TestSpawnerLargeFrame verifies a single oversized delta spawns every
// interval it contains.
func TestSpawnerLargeFrame(t *testing.T) {
	cfg := spawnTestConfig()
	cfg.EnemyInterval = 0.5
	cfg.EnemyIntervalStep = 0
	cfg.EnemyIntervalFloor = 0.5
	cfg.CollectibleInterval = 1e9

	store := NewStore()
	state := NewGameState(cfg)
	player := &Player{Body: Body{X: 0, Y: 0, Radius: 15}}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	sp.Tick(2.0, store, state, player)
	if got := store.Enemies.ActiveCount(); got != 4 {
		t.Fatalf("spawned %d from one 2s frame at 0.5s interval, want 4", got)
	}
}

// TestSpawnerCapSuppression verifies the device-tier cap bounds concurrent
// enemies while the accumulator keeps draining.
func TestSpawnerCapSuppression(t *testing.T) {
	cfg := spawnTestConfig()
	cfg.Tiers[TierMid] = TierCaps{MaxEnemies: 3, MaxBullets: 10, MaxCollectibles: 10, MaxParticles: 10}
	cfg.EnemyInterval = 0.1
	cfg.EnemyIntervalStep = 0
	cfg.EnemyIntervalFloor = 0.1
	cfg.CollectibleInterval = 1e9

	store := NewStore()
	state := NewGameState(cfg)
	player := &Player{Body: Body{X: 0, Y: 0, Radius: 15}}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		sp.Tick(0.25, store, state, player)
	}
	if got := store.Enemies.ActiveCount(); got != 3 {
		t.Fatalf("active enemies = %d under cap 3", got)
	}
}

// TestEnemyIntervalScaling verifies the interval shrinks linearly with
// difficulty and floors out.
func TestEnemyIntervalScaling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyInterval = 2.0
	cfg.EnemyIntervalStep = 0.3
	cfg.EnemyIntervalFloor = 0.5

	cases := []struct {
		level int
		want  float64
	}{
		{0, 2.0},
		{1, 1.7},
		{3, 1.1},
		{5, 0.5},  // 0.5 exactly at the floor
		{50, 0.5}, // deep into the floor
	}
	for _, tc := range cases {
		if got := cfg.EnemyIntervalAt(tc.level); got != tc.want {
			t.Fatalf("interval at level %d = %v, want %v", tc.level, got, tc.want)
		}
	}
}

// TestCollectibleIntervalScaling verifies the collectible interval shrinks
// linearly with difficulty and floors out, independently of the enemy
// interval.
func TestCollectibleIntervalScaling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollectibleInterval = 4.0
	cfg.CollectibleIntervalStep = 0.5
	cfg.CollectibleIntervalFloor = 1.5

	cases := []struct {
		level int
		want  float64
	}{
		{0, 4.0},
		{1, 3.5},
		{4, 2.0},
		{5, 1.5},  // 1.5 exactly at the floor
		{50, 1.5}, // deep into the floor
	}
	for _, tc := range cases {
		if got := cfg.CollectibleIntervalAt(tc.level); got != tc.want {
			t.Fatalf("interval at level %d = %v, want %v", tc.level, got, tc.want)
		}
	}
}

// TestCollectibleSpawnRateRises verifies higher difficulty produces more
// collectible spawns over the same elapsed time.
func TestCollectibleSpawnRateRises(t *testing.T) {
	count := func(difficulty int) int {
		cfg := spawnTestConfig()
		cfg.EnemyInterval = 1e9 // keep enemies out of the count
		cfg.EnemyIntervalFloor = 1e9
		cfg.CollectibleInterval = 4.0
		cfg.CollectibleIntervalStep = 0.05
		cfg.CollectibleIntervalFloor = 1.5

		store := NewStore()
		state := NewGameState(cfg)
		state.Difficulty = difficulty
		player := &Player{Body: Body{X: 400, Y: 300, Radius: 15}}
		sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

		// 480 frames of 0.125s each: 60s exactly in binary arithmetic.
		for i := 0; i < 480; i++ {
			sp.Tick(0.125, store, state, player)
		}
		return store.Collectibles.ActiveCount()
	}

	// 60s at interval 4.0 -> 15 spawns; at difficulty 50 the interval is
	// floored at 1.5 -> 40 spawns.
	low, high := count(0), count(50)
	if low != 15 {
		t.Fatalf("spawns at difficulty 0 = %d, want 15", low)
	}
	if high != 40 {
		t.Fatalf("spawns at difficulty 50 = %d, want 40", high)
	}
}

// TestSpawnerZeroIntervalDisabled verifies a non-positive interval turns
// the spawn type off instead of spinning the accumulator loop forever.
func TestSpawnerZeroIntervalDisabled(t *testing.T) {
	cfg := spawnTestConfig()
	cfg.EnemyInterval = 0
	cfg.EnemyIntervalStep = 0
	cfg.EnemyIntervalFloor = 0
	cfg.CollectibleInterval = 0
	cfg.CollectibleIntervalStep = 0
	cfg.CollectibleIntervalFloor = 0

	store := NewStore()
	state := NewGameState(cfg)
	player := &Player{Body: Body{X: 0, Y: 0, Radius: 15}}
	sp := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	sp.Tick(1.0, store, state, player) // must return
	if got := store.Enemies.ActiveCount() + store.Collectibles.ActiveCount(); got != 0 {
		t.Fatalf("zero interval spawned %d entities", got)
	}
}

// TestWeightedPowerup pins the weighted draw boundaries.
func TestWeightedPowerup(t *testing.T) {
	cases := []struct {
		roll float64
		want CollectibleKind
	}{
		{0.0, CollectRapidFire},
		{0.44, CollectRapidFire},
		{0.45, CollectShield},
		{0.79, CollectShield},
		{0.80, CollectDoubler},
		{0.999, CollectDoubler},
	}
	for _, tc := range cases {
		if got := weightedPowerup(tc.roll); got != tc.want {
			t.Fatalf("weightedPowerup(%v) = %v, want %v", tc.roll, got, tc.want)
		}
	}
}

// TestEnemySpawnPlacement verifies enemies appear on the playfield edge.
func TestEnemySpawnPlacement(t *testing.T) {
	cfg := spawnTestConfig()
	store := NewStore()
	state := NewGameState(cfg)
	sp := NewSpawner(cfg, rand.New(rand.NewSource(11)))

	for i := 0; i < 50; i++ {
		sp.spawnEnemy(store, state)
	}
	for _, e := range store.Enemies.Active() {
		onEdge := e.X <= 0 || e.X >= cfg.FieldWidth || e.Y <= 0 || e.Y >= cfg.FieldHeight
		if !onEdge {
			t.Fatalf("enemy spawned inside the field at (%v,%v)", e.X, e.Y)
		}
	}
}
