package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// ViewSyncSystem pushes simulation positions into the presentation
// layer. It runs last, after cleanup, so it never moves a visual whose
// entity died this tick.
type ViewSyncSystem struct {
	view View
}

// NewViewSyncSystem creates the view sync stage.
func NewViewSyncSystem(view View) *ViewSyncSystem {
	return &ViewSyncSystem{view: view}
}

// Update mirrors every ViewRef entity's position to its visual.
func (s *ViewSyncSystem) Update(world *ecs.World, dt float64) {
	if s.view == nil {
		return
	}
	refs := ecs.StoreFor[components.ViewRef](world)
	positions := ecs.StoreFor[components.Position](world)

	ids := refs.Entities()
	vals := refs.Values()
	for i, id := range ids {
		pos, ok := positions.Get(id)
		if !ok {
			continue
		}
		s.view.Move(vals[i].Handle, pos.X, pos.Y)
	}
}
