package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the flat bootstrap configuration for a run. It is read once
// at startup and treated as immutable afterwards.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Sim     SimConfig     `toml:"sim"`
	Player  PlayerConfig  `toml:"player"`
	Spawner SpawnerConfig `toml:"spawner"`
	Combat  CombatConfig  `toml:"combat"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "json" or "console"
}

type SimConfig struct {
	TicksPerSecond int `toml:"ticks_per_second"`
}

type PlayerConfig struct {
	MaxHealth  float64 `toml:"max_health"`
	MoveSpeed  float64 `toml:"move_speed"`  // world units per second
	BodyRadius float64 `toml:"body_radius"` // used for enemy contact overlap
}

type SpawnerConfig struct {
	Radius     float64 `toml:"radius"`       // spawn ring distance from the player
	BaseRate   float64 `toml:"base_rate"`    // spawns per second at t=0
	RatePerMin float64 `toml:"rate_per_min"` // extra spawns per second per elapsed minute
	MaxAlive   int     `toml:"max_alive"`    // live enemy cap, 0 = uncapped
	Seed       uint32  `toml:"seed"`         // PRNG seed, 0 picks the built-in fallback
}

type CombatConfig struct {
	FireCooldown       float64 `toml:"fire_cooldown"`        // seconds between shots
	FireRange          float64 `toml:"fire_range"`           // max targeting distance
	ProjectileSpeed    float64 `toml:"projectile_speed"`     // world units per second
	ProjectileDamage   float64 `toml:"projectile_damage"`    // health removed per hit
	ProjectileHitRad   float64 `toml:"projectile_hit_radius"`
	ProjectileLifetime float64 `toml:"projectile_lifetime"` // seconds before a shot expires
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in tuning, good enough to play without a
// config file on disk.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 720,
			Title:  "MStory",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Sim: SimConfig{
			TicksPerSecond: 60,
		},
		Player: PlayerConfig{
			MaxHealth:  100,
			MoveSpeed:  170,
			BodyRadius: 12,
		},
		Spawner: SpawnerConfig{
			Radius:     420,
			BaseRate:   1.2,
			RatePerMin: 0.8,
			MaxAlive:   120,
			Seed:       1337,
		},
		Combat: CombatConfig{
			FireCooldown:       0.35,
			FireRange:          280,
			ProjectileSpeed:    420,
			ProjectileDamage:   25,
			ProjectileHitRad:   10,
			ProjectileLifetime: 1.2,
		},
	}
}
