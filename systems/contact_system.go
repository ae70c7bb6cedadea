package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/mathx"
)

// ContactSystem drains player health for every enemy whose body overlaps
// the player's, scaled by the tick so the pressure is per second of
// contact. Death is only marked (Current reaching zero); the cleanup
// stage collects it.
type ContactSystem struct {
	playerRadius float64
}

// NewContactSystem creates the contact damage stage.
func NewContactSystem(player config.PlayerConfig) *ContactSystem {
	return &ContactSystem{playerRadius: player.BodyRadius}
}

// Update applies overlap damage to the player.
func (s *ContactSystem) Update(world *ecs.World, dt float64) {
	playerID, playerPos, ok := player(world)
	if !ok {
		return
	}

	healths := ecs.StoreFor[components.Health](world)
	playerHP, ok := healths.Mut(playerID)
	if !ok {
		return
	}

	contacts := ecs.StoreFor[components.ContactDamage](world)
	positions := ecs.StoreFor[components.Position](world)

	ids := contacts.Entities()
	vals := contacts.Values()
	for i, id := range ids {
		epos, ok := positions.Get(id)
		if !ok {
			continue
		}
		reach := vals[i].Radius + s.playerRadius
		if mathx.DistSq(playerPos.X, playerPos.Y, epos.X, epos.Y) > reach*reach {
			continue
		}
		playerHP.Current -= vals[i].PerSecond * dt
	}
}
