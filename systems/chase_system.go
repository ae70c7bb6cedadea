package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/mathx"
)

// ChaseSystem steers every enemy straight at the player's current
// position at its own constant speed. No pathfinding, no separation;
// enemies walk through each other.
type ChaseSystem struct{}

// NewChaseSystem creates the chase stage.
func NewChaseSystem() *ChaseSystem {
	return &ChaseSystem{}
}

// Update moves enemies toward the player.
func (s *ChaseSystem) Update(world *ecs.World, dt float64) {
	_, playerPos, ok := player(world)
	if !ok {
		return
	}

	enemyTags := ecs.StoreFor[components.EnemyTag](world)
	speeds := ecs.StoreFor[components.MoveSpeed](world)
	positions := ecs.StoreFor[components.Position](world)

	for _, id := range enemyTags.Entities() {
		speed, ok := speeds.Get(id)
		if !ok {
			continue
		}
		pos, ok := positions.Mut(id)
		if !ok {
			continue
		}
		dx, dy := mathx.Normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
		pos.X += dx * speed.UnitsPerSec * dt
		pos.Y += dy * speed.UnitsPerSec * dt
	}
}
