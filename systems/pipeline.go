package systems

import (
	"go.uber.org/zap"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/data"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/spawners"
)

// Deps bundles everything the pipeline needs from the outside world.
// Input and View may be nil for headless runs; a nil Log is replaced
// with a no-op logger and a nil Enemies table with the built-ins.
type Deps struct {
	Config  *config.Config
	Enemies *data.EnemyTable
	Input   InputSource
	View    View
	Log     *zap.Logger
}

// Pipeline holds the long-lived handles the shell still needs after
// wiring: the spawner for seeding entities and the cleanup stage for
// run statistics.
type Pipeline struct {
	Spawner *spawners.EntitySpawner
	Cleanup *CleanupSystem
}

// RegisterAll builds every system and registers it on the world. The
// order is a gameplay contract: input must precede movement, spawn and
// chase must precede combat, cleanup must be the only destroyer and run
// before view sync.
func RegisterAll(w *ecs.World, deps Deps) *Pipeline {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	enemies := deps.Enemies
	if enemies == nil {
		enemies = data.DefaultTable()
	}
	sp := spawners.NewEntitySpawner(w, deps.Config, log)
	cleanup := NewCleanupSystem(deps.View, log)

	w.AddSystem(NewInputSystem(deps.Input))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewSpawnSystem(sp, enemies, deps.View, log))
	w.AddSystem(NewChaseSystem())
	w.AddSystem(NewAutoFireSystem(sp, deps.Config.Combat, deps.View))
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewHitSystem())
	w.AddSystem(NewContactSystem(deps.Config.Player))
	w.AddSystem(cleanup)
	w.AddSystem(NewViewSyncSystem(deps.View))

	return &Pipeline{Spawner: sp, Cleanup: cleanup}
}

// SeedWorld creates the starting entities: the player at the origin and
// the enemy spawner. It returns the player handle so the shell can watch
// for the run ending.
func SeedWorld(w *ecs.World, deps Deps, p *Pipeline) ecs.Entity {
	playerEntity := p.Spawner.CreatePlayer(0, 0)
	AttachView(w, deps.View, playerEntity, components.ViewPlayer, 0, 0, deps.Config.Player.BodyRadius)
	p.Spawner.CreateSpawner()
	return playerEntity
}

// player finds the player entity and its position. Systems tolerate its
// absence; after the player dies the world keeps ticking so surviving
// projectiles and enemies wind down naturally.
func player(w *ecs.World) (uint32, components.Position, bool) {
	tags := ecs.StoreFor[components.PlayerTag](w)
	if tags.Len() == 0 {
		return 0, components.Position{}, false
	}
	id := tags.Entities()[0]
	pos, ok := ecs.StoreFor[components.Position](w).Get(id)
	return id, pos, ok
}
