package systems

import (
	"math"

	"go.uber.org/zap"

	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/data"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/spawners"
)

// SpawnSystem creates enemies on a ring around the player. Each spawner
// entity banks a fractional spawn budget from its time-ramped rate and
// pays it out one enemy at a time, re-checking the live cap per enemy
// so bursts after a cull never overshoot it.
type SpawnSystem struct {
	spawner     *spawners.EntitySpawner
	enemies     *data.EnemyTable
	view        View
	log         *zap.Logger
	warnedEmpty bool
}

// NewSpawnSystem creates the spawn stage.
func NewSpawnSystem(spawner *spawners.EntitySpawner, enemies *data.EnemyTable, view View, log *zap.Logger) *SpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &SpawnSystem{spawner: spawner, enemies: enemies, view: view, log: log}
}

// Update advances every spawner and emits the enemies it owes.
func (s *SpawnSystem) Update(world *ecs.World, dt float64) {
	_, playerPos, ok := player(world)
	if !ok {
		return
	}

	enemyTags := ecs.StoreFor[components.EnemyTag](world)
	store := ecs.StoreFor[components.EnemySpawner](world)

	// Spawned enemies never carry an EnemySpawner, so the store cannot
	// grow under this loop and the value pointer stays put.
	for i := 0; i < store.Len(); i++ {
		sp := &store.Values()[i]

		sp.Elapsed += dt
		rate := sp.BaseRate + sp.Elapsed/60.0*sp.RatePerMin
		if rate < 0 {
			rate = 0
		}
		sp.Accum += rate * dt

		for sp.Accum >= 1 {
			if sp.MaxAlive > 0 && enemyTags.Len() >= sp.MaxAlive {
				break // budget stays banked until the cull frees room
			}
			sp.Accum--

			arch := s.enemies.Pick(sp.Rng.Float64())
			if arch == nil {
				if !s.warnedEmpty {
					s.log.Warn("enemy table is empty, spawner has nothing to emit")
					s.warnedEmpty = true
				}
				continue
			}

			angle := sp.Rng.Float64() * 2 * math.Pi
			x := playerPos.X + sp.Radius*math.Cos(angle)
			y := playerPos.Y + sp.Radius*math.Sin(angle)

			e := s.spawner.CreateEnemy(x, y, arch)
			AttachView(world, s.view, e, components.ViewEnemy, x, y, arch.BodyRadius)
		}
	}
}
