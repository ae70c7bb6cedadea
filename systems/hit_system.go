package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/mathx"
)

// consumedLifetime marks a projectile for removal on the current tick,
// ahead of its natural expiry.
const consumedLifetime = -1.0

// HitSystem resolves projectile impacts. Each live projectile damages
// at most one enemy per tick: the first one in store order inside its
// hit radius takes the full damage, then the projectile is consumed.
// There is no piercing. Several projectiles may hit the same enemy on
// the same tick; each applies its damage independently.
type HitSystem struct{}

// NewHitSystem creates the hit resolution stage.
func NewHitSystem() *HitSystem {
	return &HitSystem{}
}

// Update checks every live projectile against every enemy.
func (s *HitSystem) Update(world *ecs.World, dt float64) {
	projectiles := ecs.StoreFor[components.Projectile](world)
	lifetimes := ecs.StoreFor[components.Lifetime](world)
	positions := ecs.StoreFor[components.Position](world)
	enemyTags := ecs.StoreFor[components.EnemyTag](world)
	healths := ecs.StoreFor[components.Health](world)

	ids := projectiles.Entities()
	vals := projectiles.Values()
	for i, id := range ids {
		life, ok := lifetimes.Mut(id)
		if !ok || life.Remaining <= 0 {
			continue // already expired this tick, lets the cull take it
		}
		ppos, ok := positions.Get(id)
		if !ok {
			continue
		}

		pr := vals[i]
		radSq := pr.HitRadius * pr.HitRadius
		for _, enemyID := range enemyTags.Entities() {
			epos, ok := positions.Get(enemyID)
			if !ok {
				continue
			}
			if mathx.DistSq(ppos.X, ppos.Y, epos.X, epos.Y) > radSq {
				continue
			}
			if hp, ok := healths.Mut(enemyID); ok {
				hp.Current -= pr.Damage
			}
			life.Remaining = consumedLifetime
			break
		}
	}
}
