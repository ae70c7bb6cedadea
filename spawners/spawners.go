package spawners

import (
	"go.uber.org/zap"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/data"
	"github.com/luyipei/MStory/ecs"
)

// EntitySpawner composes game entities from config tuning and archetype
// data. Every entity kind is assembled here so the component sets stay
// in one place.
type EntitySpawner struct {
	world *ecs.World
	cfg   *config.Config
	log   *zap.Logger
}

// NewEntitySpawner creates a spawner bound to a world. A nil logger is
// replaced with a no-op one.
func NewEntitySpawner(world *ecs.World, cfg *config.Config, log *zap.Logger) *EntitySpawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntitySpawner{world: world, cfg: cfg, log: log}
}

// CreatePlayer creates the player entity at the given position.
func (s *EntitySpawner) CreatePlayer(x, y float64) ecs.Entity {
	e := s.world.Create()
	ecs.Add(s.world, e, components.PlayerTag{})
	ecs.Add(s.world, e, components.Position{X: x, Y: y})
	ecs.Add(s.world, e, components.MoveInput{})
	ecs.Add(s.world, e, components.MoveSpeed{UnitsPerSec: s.cfg.Player.MoveSpeed})
	ecs.Add(s.world, e, components.Health{
		Current: s.cfg.Player.MaxHealth,
		Max:     s.cfg.Player.MaxHealth,
	})

	s.log.Debug("player created",
		zap.Uint32("id", e.ID),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return e
}

// CreateSpawner creates the enemy spawner entity from config tuning.
func (s *EntitySpawner) CreateSpawner() ecs.Entity {
	e := s.world.Create()
	sp := s.cfg.Spawner
	ecs.Add(s.world, e, components.NewEnemySpawner(
		sp.Radius, sp.BaseRate, sp.RatePerMin, sp.MaxAlive, sp.Seed))

	s.log.Debug("enemy spawner created",
		zap.Uint32("id", e.ID),
		zap.Float64("radius", sp.Radius),
		zap.Float64("base_rate", sp.BaseRate),
		zap.Int("max_alive", sp.MaxAlive))
	return e
}

// CreateEnemy creates an enemy of the given archetype at a position.
func (s *EntitySpawner) CreateEnemy(x, y float64, a *data.EnemyArchetype) ecs.Entity {
	e := s.world.Create()
	ecs.Add(s.world, e, components.EnemyTag{})
	ecs.Add(s.world, e, components.Position{X: x, Y: y})
	ecs.Add(s.world, e, components.MoveSpeed{UnitsPerSec: a.MoveSpeed})
	ecs.Add(s.world, e, components.Health{Current: a.Health, Max: a.Health})
	ecs.Add(s.world, e, components.ContactDamage{
		PerSecond: a.ContactDamage,
		Radius:    a.BodyRadius,
	})
	return e
}

// CreateProjectile creates a shot at a position with the given velocity,
// owned by the firing entity. Combat tuning fills in damage, hit radius
// and lifetime.
func (s *EntitySpawner) CreateProjectile(x, y, vx, vy float64, owner uint32) ecs.Entity {
	e := s.world.Create()
	c := s.cfg.Combat
	ecs.Add(s.world, e, components.ProjectileTag{})
	ecs.Add(s.world, e, components.Position{X: x, Y: y})
	ecs.Add(s.world, e, components.Velocity{X: vx, Y: vy})
	ecs.Add(s.world, e, components.Projectile{
		Damage:    c.ProjectileDamage,
		HitRadius: c.ProjectileHitRad,
		Owner:     owner,
	})
	ecs.Add(s.world, e, components.Lifetime{Remaining: c.ProjectileLifetime})
	return e
}
