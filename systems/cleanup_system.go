package systems

import (
	"go.uber.org/zap"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/ecs"
)

// CleanupSystem is the only stage allowed to destroy entities. It
// collects everything whose Health or Lifetime has reached zero,
// releasing the entity's view handle through the callback before the id
// goes back to the pool. Running late in the tick keeps every earlier
// stage free of dangling ids.
type CleanupSystem struct {
	view  View
	log   *zap.Logger
	kills int
}

// NewCleanupSystem creates the cleanup stage.
func NewCleanupSystem(view View, log *zap.Logger) *CleanupSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupSystem{view: view, log: log}
}

// Kills returns how many enemies this run has destroyed.
func (s *CleanupSystem) Kills() int {
	return s.kills
}

// Update destroys every dead or expired entity.
//
// Both passes remove from the store they are scanning, so the cursor
// must not advance on removal: the swap pulls an unvisited element into
// the current slot. An entity dead by both health and lifetime is seen
// once; the first destroy removes it from the other store too.
func (s *CleanupSystem) Update(world *ecs.World, dt float64) {
	healths := ecs.StoreFor[components.Health](world)
	for i := 0; i < healths.Len(); {
		if healths.Values()[i].Current > 0 {
			i++
			continue
		}
		s.collect(world, healths.Entities()[i])
	}

	lifetimes := ecs.StoreFor[components.Lifetime](world)
	for i := 0; i < lifetimes.Len(); {
		if lifetimes.Values()[i].Remaining > 0 {
			i++
			continue
		}
		s.collect(world, lifetimes.Entities()[i])
	}
}

func (s *CleanupSystem) collect(world *ecs.World, id uint32) {
	if ecs.StoreFor[components.EnemyTag](world).Has(id) {
		s.kills++
	}
	if ecs.StoreFor[components.PlayerTag](world).Has(id) {
		s.log.Info("player died", zap.Int("kills", s.kills))
	}
	if ref, ok := ecs.StoreFor[components.ViewRef](world).Get(id); ok && s.view != nil {
		s.view.Destroy(ref.Handle)
	}
	world.DestroyID(id)
}
