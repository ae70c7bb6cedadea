package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// MovementSystem integrates Position from MoveInput for every entity
// carrying both an input and a speed. Input magnitude scales the speed,
// so analog sources move slower than a full deflection.
type MovementSystem struct{}

// NewMovementSystem creates the movement stage.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update applies MoveInput times MoveSpeed to Position.
func (s *MovementSystem) Update(world *ecs.World, dt float64) {
	inputs := ecs.StoreFor[components.MoveInput](world)
	speeds := ecs.StoreFor[components.MoveSpeed](world)
	positions := ecs.StoreFor[components.Position](world)

	ids := inputs.Entities()
	vals := inputs.Values()
	for i, id := range ids {
		in := vals[i]
		if in.X == 0 && in.Y == 0 {
			continue
		}
		speed, ok := speeds.Get(id)
		if !ok {
			continue
		}
		pos, ok := positions.Mut(id)
		if !ok {
			continue
		}
		pos.X += in.X * speed.UnitsPerSec * dt
		pos.Y += in.Y * speed.UnitsPerSec * dt
	}
}
