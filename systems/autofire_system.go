package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/mathx"
	"github.com/luyipei/MStory/spawners"
)

// AutoFireSystem fires a projectile from the player at the nearest
// enemy in range, on a fixed cooldown. The cooldown timer counts down
// every tick whether or not a shot is possible, so a shot goes out the
// moment a target appears.
type AutoFireSystem struct {
	spawner *spawners.EntitySpawner
	combat  config.CombatConfig
	view    View
	timer   float64
}

// NewAutoFireSystem creates the auto-fire stage. The timer starts
// expired, so the first target in range is shot immediately.
func NewAutoFireSystem(spawner *spawners.EntitySpawner, combat config.CombatConfig, view View) *AutoFireSystem {
	return &AutoFireSystem{spawner: spawner, combat: combat, view: view}
}

// Update advances the cooldown and fires when it allows.
func (s *AutoFireSystem) Update(world *ecs.World, dt float64) {
	s.timer -= dt
	if s.timer > 0 {
		return
	}

	playerID, playerPos, ok := player(world)
	if !ok {
		return
	}

	enemyTags := ecs.StoreFor[components.EnemyTag](world)
	positions := ecs.StoreFor[components.Position](world)

	rangeSq := s.combat.FireRange * s.combat.FireRange
	var targetID uint32
	bestDist := 0.0
	found := false
	for _, id := range enemyTags.Entities() {
		epos, ok := positions.Get(id)
		if !ok {
			continue
		}
		d := mathx.DistSq(playerPos.X, playerPos.Y, epos.X, epos.Y)
		if d > rangeSq {
			continue
		}
		// Strict less-than keeps the first-found enemy on ties.
		if !found || d < bestDist {
			found = true
			targetID = id
			bestDist = d
		}
	}
	if !found {
		return // timer stays expired until something comes in range
	}

	tpos, _ := positions.Get(targetID)
	dx, dy := mathx.Normalize(tpos.X-playerPos.X, tpos.Y-playerPos.Y)
	if dx == 0 && dy == 0 {
		dx = 1 // target sits exactly on the player, pick a fixed direction
	}

	e := s.spawner.CreateProjectile(
		playerPos.X, playerPos.Y,
		dx*s.combat.ProjectileSpeed, dy*s.combat.ProjectileSpeed,
		playerID)
	AttachView(world, s.view, e, components.ViewProjectile,
		playerPos.X, playerPos.Y, s.combat.ProjectileHitRad)

	s.timer = s.combat.FireCooldown
}
