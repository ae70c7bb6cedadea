package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// ProjectileSystem integrates velocity into position and burns down
// lifetimes. Expiry is only marked here (Remaining reaching zero); the
// cleanup stage performs the actual destruction.
type ProjectileSystem struct{}

// NewProjectileSystem creates the projectile motion stage.
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Update moves everything with a Velocity and decrements every Lifetime.
func (s *ProjectileSystem) Update(world *ecs.World, dt float64) {
	velocities := ecs.StoreFor[components.Velocity](world)
	positions := ecs.StoreFor[components.Position](world)

	ids := velocities.Entities()
	vals := velocities.Values()
	for i, id := range ids {
		v := vals[i]
		pos, ok := positions.Mut(id)
		if !ok {
			continue
		}
		pos.X += v.X * dt
		pos.Y += v.Y * dt
	}

	lifetimes := ecs.StoreFor[components.Lifetime](world)
	remaining := lifetimes.Values()
	for i := range remaining {
		remaining[i].Remaining -= dt
	}
}
