package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// View is the presentation capability injected into the systems that own
// visual side effects. Handles are opaque to the simulation. A nil View
// is legal everywhere and means the world runs headless.
type View interface {
	// Instantiate builds a visual for a new entity and returns its handle.
	Instantiate(kind components.ViewKind, x, y, radius float64) any
	// Move repositions an existing visual.
	Move(handle any, x, y float64)
	// Destroy releases a visual. Called exactly once per handle.
	Destroy(handle any)
}

// AttachView gives an entity a presentation visual. Without a view layer
// the entity simply never gains a ViewRef.
func AttachView(w *ecs.World, v View, e ecs.Entity, kind components.ViewKind, x, y, radius float64) {
	if v == nil {
		return
	}
	h := v.Instantiate(kind, x, y, radius)
	if h == nil {
		return
	}
	ecs.Add(w, e, components.ViewRef{Handle: h})
}
