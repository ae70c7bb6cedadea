package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// InputSource supplies the player's movement intent for the current
// tick as a direction with magnitude in [0, 1]. The zero vector means
// no input.
type InputSource interface {
	Direction() (x, y float64)
}

// InputSystem copies the external movement direction into the player's
// MoveInput each tick. It runs first so every later stage sees this
// tick's intent.
type InputSystem struct {
	source InputSource
}

// NewInputSystem creates the input stage. A nil source leaves MoveInput
// untouched, which headless drivers use to script movement directly.
func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// Update writes the current direction to every player-tagged entity.
func (s *InputSystem) Update(world *ecs.World, dt float64) {
	if s.source == nil {
		return
	}
	x, y := s.source.Direction()

	players := ecs.StoreFor[components.PlayerTag](world)
	inputs := ecs.StoreFor[components.MoveInput](world)
	for _, id := range players.Entities() {
		if in, ok := inputs.Mut(id); ok {
			in.X, in.Y = x, y
		}
	}
}
