package components

import "github.com/luyipei/MStory/mathx"

// Position is an entity's location on the unbounded world plane.
type Position struct {
	X, Y float64
}

// Velocity moves an entity by a fixed amount per second. Projectiles use
// it; steered entities (player, enemies) are integrated by their systems
// instead.
type Velocity struct {
	X, Y float64
}

// MoveInput is the current movement intent, written each tick by the
// input system. Magnitude is within [0, 1]; the zero vector means no
// input.
type MoveInput struct {
	X, Y float64
}

// MoveSpeed caps how many world units an entity covers per second.
type MoveSpeed struct {
	UnitsPerSec float64
}

// Health tracks damage state. An entity whose Current drops to zero or
// below is dead and will be collected by the cleanup pass; nothing else
// destroys it.
type Health struct {
	Current float64
	Max     float64
}

// Lifetime counts down an entity's remaining seconds. At or below zero
// the cleanup pass collects it; systems set a negative value to request
// removal ahead of the natural expiry.
type Lifetime struct {
	Remaining float64
}

// Projectile carries the combat payload of a fired shot. Owner records
// the id of the entity that fired it.
type Projectile struct {
	Damage    float64
	HitRadius float64
	Owner     uint32
}

// EnemySpawner schedules enemy creation around the player. The rate
// ramps with survival time: effective spawns/sec is BaseRate plus
// elapsed minutes times RatePerMin, never below zero. Accum banks the
// fractional spawn budget between ticks so low rates still pay out;
// MaxAlive caps live enemies, zero meaning uncapped. Rng is the
// spawner's private PRNG stream for placement angles and archetype
// picks.
type EnemySpawner struct {
	Radius     float64 // distance from the player at which enemies appear
	BaseRate   float64 // spawns per second at the start of a run
	RatePerMin float64 // extra spawns per second gained per elapsed minute
	MaxAlive   int     // live enemy cap, 0 = uncapped
	Elapsed    float64 // seconds this spawner has been live
	Accum      float64 // banked fractional spawns
	Rng        mathx.XorShift32
}

// NewEnemySpawner returns a spawner component with its PRNG seeded.
func NewEnemySpawner(radius, baseRate, ratePerMin float64, maxAlive int, seed uint32) EnemySpawner {
	return EnemySpawner{
		Radius:     radius,
		BaseRate:   baseRate,
		RatePerMin: ratePerMin,
		MaxAlive:   maxAlive,
		Rng:        mathx.NewXorShift32(seed),
	}
}

// ContactDamage makes an enemy hurt the player on overlap, draining
// PerSecond health for every second the bodies intersect.
type ContactDamage struct {
	PerSecond float64
	Radius    float64 // body radius used for the overlap test
}

// PlayerTag marks the player entity.
type PlayerTag struct{}

// EnemyTag marks hostile entities.
type EnemyTag struct{}

// ProjectileTag marks fired shots.
type ProjectileTag struct{}
