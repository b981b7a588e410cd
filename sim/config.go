package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceTier selects entity caps for the detected device class.
type DeviceTier int

const (
	TierLow DeviceTier = iota
	TierMid
	TierHigh
)

// TierCaps bounds the number of concurrent entities per type for one tier.
type TierCaps struct {
	MaxEnemies      int `yaml:"max_enemies"`
	MaxBullets      int `yaml:"max_bullets"`
	MaxCollectibles int `yaml:"max_collectibles"`
	MaxParticles    int `yaml:"max_particles"`
}

// Config holds all simulation tuning constants.
type Config struct {
	// Playfield dimensions in world units
	FieldWidth  float64 `yaml:"field_width"`
	FieldHeight float64 `yaml:"field_height"`

	// Player
	PlayerRadius   float64 `yaml:"player_radius"`
	PlayerSpeed    float64 `yaml:"player_speed"`
	PlayerFriction float64 `yaml:"player_friction"`
	MaxLives       int     `yaml:"max_lives"`
	InvulnTime     float64 `yaml:"invuln_time"` // seconds after losing a life

	// Bullets
	BulletRadius   float64 `yaml:"bullet_radius"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletDamage   float64 `yaml:"bullet_damage"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`
	FireCooldown   float64 `yaml:"fire_cooldown"`
	RapidCooldown  float64 `yaml:"rapid_cooldown"` // cooldown while rapid-fire powerup is active

	// Enemies
	EnemyRadius    float64 `yaml:"enemy_radius"`
	EnemySpeed     float64 `yaml:"enemy_speed"`
	EnemyHealth    float64 `yaml:"enemy_health"`
	EnemyKillScore int     `yaml:"enemy_kill_score"`

	// Collectibles
	CollectibleRadius   float64 `yaml:"collectible_radius"`
	CollectibleLifetime float64 `yaml:"collectible_lifetime"`
	CollectibleScore    int     `yaml:"collectible_score"`
	AttractionDistance  float64 `yaml:"attraction_distance"`
	AttractionSpeed     float64 `yaml:"attraction_speed"` // world units per second

	// Particles
	ParticleGravity  float64 `yaml:"particle_gravity"`
	ParticleLifetime float64 `yaml:"particle_lifetime"`
	ExplosionBurst   int     `yaml:"explosion_burst"` // particles per kill

	// Spawning
	EnemyInterval            float64 `yaml:"enemy_interval"`       // base seconds between enemy spawns
	EnemyIntervalFloor       float64 `yaml:"enemy_interval_floor"` // minimum interval at high difficulty
	EnemyIntervalStep        float64 `yaml:"enemy_interval_step"`  // interval reduction per difficulty level
	CollectibleInterval      float64 `yaml:"collectible_interval"`
	CollectibleIntervalFloor float64 `yaml:"collectible_interval_floor"`
	CollectibleIntervalStep  float64 `yaml:"collectible_interval_step"`
	PowerupSpawnChance       float64 `yaml:"powerup_spawn_chance"` // chance a collectible spawn is a powerup
	DifficultyRamp           float64 `yaml:"difficulty_ramp"`      // seconds of play per difficulty level

	// Powerup effect durations in seconds
	RapidFireDuration float64 `yaml:"rapid_fire_duration"`
	ShieldDuration    float64 `yaml:"shield_duration"`
	DoublerDuration   float64 `yaml:"doubler_duration"`

	// Combo
	ComboTimeout   float64 `yaml:"combo_timeout"` // seconds without a kill before the combo resets
	ComboIncrement float64 `yaml:"combo_increment"`
	ComboCap       float64 `yaml:"combo_cap"`

	// Frenzy
	FrenzyThresholds []int     `yaml:"frenzy_thresholds"` // ascending kill-streak thresholds
	FrenzyBonusTimes []float64 `yaml:"frenzy_bonus_times"` // bonus duration per tier, seconds

	// Entity caps per device tier
	Tiers map[DeviceTier]TierCaps `yaml:"-"`
	Tier  DeviceTier              `yaml:"tier"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  800,
		FieldHeight: 600,

		PlayerRadius:   15,
		PlayerSpeed:    240,
		PlayerFriction: 0.90,
		MaxLives:       3,
		InvulnTime:     2.0,

		BulletRadius:   4,
		BulletSpeed:    720,
		BulletDamage:   1,
		BulletLifetime: 2.0,
		FireCooldown:   0.22,
		RapidCooldown:  0.08,

		EnemyRadius:    10,
		EnemySpeed:     80,
		EnemyHealth:    1,
		EnemyKillScore: 100,

		CollectibleRadius:   8,
		CollectibleLifetime: 10.0,
		CollectibleScore:    25,
		AttractionDistance:  150,
		AttractionSpeed:     120,

		ParticleGravity:  90,
		ParticleLifetime: 0.8,
		ExplosionBurst:   12,

		EnemyInterval:            2.0,
		EnemyIntervalFloor:       0.4,
		EnemyIntervalStep:        0.15,
		CollectibleInterval:      4.0,
		CollectibleIntervalFloor: 1.5,
		CollectibleIntervalStep:  0.2,
		PowerupSpawnChance:       0.15,
		DifficultyRamp:           15.0,

		RapidFireDuration: 6.0,
		ShieldDuration:    5.0,
		DoublerDuration:   8.0,

		ComboTimeout:   3.0,
		ComboIncrement: 0.5,
		ComboCap:       8.0,

		FrenzyThresholds: []int{5, 15, 30, 50},
		FrenzyBonusTimes: []float64{3.0, 5.0, 8.0, 12.0},

		Tiers: map[DeviceTier]TierCaps{
			TierLow:  {MaxEnemies: 20, MaxBullets: 40, MaxCollectibles: 8, MaxParticles: 150},
			TierMid:  {MaxEnemies: 40, MaxBullets: 80, MaxCollectibles: 15, MaxParticles: 400},
			TierHigh: {MaxEnemies: 80, MaxBullets: 160, MaxCollectibles: 25, MaxParticles: 1000},
		},
		Tier: TierMid,
	}
}

// Caps returns the entity caps for the configured device tier.
func (c Config) Caps() TierCaps {
	if caps, ok := c.Tiers[c.Tier]; ok {
		return caps
	}
	return c.Tiers[TierMid]
}

// MaxTier returns the highest reachable frenzy tier.
func (c Config) MaxTier() int {
	return len(c.FrenzyThresholds)
}

// EnemyIntervalAt returns the enemy spawn interval for a difficulty level.
// The interval shrinks linearly with level and is floored so spawn pressure
// stays bounded.
func (c Config) EnemyIntervalAt(level int) float64 {
	interval := c.EnemyInterval - float64(level)*c.EnemyIntervalStep
	if interval < c.EnemyIntervalFloor {
		interval = c.EnemyIntervalFloor
	}
	return interval
}

// CollectibleIntervalAt returns the collectible spawn interval for a
// difficulty level, shrinking linearly with its own step and floor.
func (c Config) CollectibleIntervalAt(level int) float64 {
	interval := c.CollectibleInterval - float64(level)*c.CollectibleIntervalStep
	if interval < c.CollectibleIntervalFloor {
		interval = c.CollectibleIntervalFloor
	}
	return interval
}

// LoadConfig reads YAML overrides from path on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
