package systems

import (
	"github.com/luyipei/MStory/components"
	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/data"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/spawners"
)

// recordingView counts presentation callbacks so tests can assert the
// view contract without a real renderer.
type recordingView struct {
	nextHandle   int
	instantiated map[int]components.ViewKind
	moved        map[int]int // handle -> move call count
	destroyed    []int
}

func newRecordingView() *recordingView {
	return &recordingView{
		instantiated: make(map[int]components.ViewKind),
		moved:        make(map[int]int),
	}
}

func (v *recordingView) Instantiate(kind components.ViewKind, x, y, radius float64) any {
	v.nextHandle++
	v.instantiated[v.nextHandle] = kind
	return v.nextHandle
}

func (v *recordingView) Move(handle any, x, y float64) {
	v.moved[handle.(int)]++
}

func (v *recordingView) Destroy(handle any) {
	v.destroyed = append(v.destroyed, handle.(int))
}

// destroyCount returns how many times one handle was released.
func (v *recordingView) destroyCount(handle int) int {
	n := 0
	for _, h := range v.destroyed {
		if h == handle {
			n++
		}
	}
	return n
}

// scriptedInput is a fixed-direction input source.
type scriptedInput struct {
	x, y float64
}

func (s *scriptedInput) Direction() (float64, float64) {
	return s.x, s.y
}

const testDT = 1.0 / 60.0

// testConfig returns tuning with deterministic, test-friendly numbers.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Player = config.PlayerConfig{MaxHealth: 100, MoveSpeed: 170, BodyRadius: 12}
	cfg.Spawner = config.SpawnerConfig{Radius: 100, BaseRate: 60, RatePerMin: 0, MaxAlive: 1, Seed: 1}
	cfg.Combat = config.CombatConfig{
		FireCooldown:       0,
		FireRange:          280,
		ProjectileSpeed:    420,
		ProjectileDamage:   25,
		ProjectileHitRad:   10,
		ProjectileLifetime: 1.2,
	}
	return cfg
}

// droneTable is a single-archetype table so spawn picks are fully
// deterministic.
func droneTable() *data.EnemyTable {
	t, err := data.NewEnemyTable([]data.EnemyArchetype{
		{ID: "drone", Health: 30, MoveSpeed: 55, BodyRadius: 11, ContactDamage: 8, SpawnWeight: 1},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// addPlayer hand-builds a minimal player for single-system tests.
func addPlayer(w *ecs.World, x, y float64) ecs.Entity {
	e := w.Create()
	ecs.Add(w, e, components.PlayerTag{})
	ecs.Add(w, e, components.Position{X: x, Y: y})
	ecs.Add(w, e, components.MoveInput{})
	ecs.Add(w, e, components.MoveSpeed{UnitsPerSec: 170})
	ecs.Add(w, e, components.Health{Current: 100, Max: 100})
	return e
}

// addEnemy hand-builds a minimal enemy for single-system tests.
func addEnemy(w *ecs.World, x, y float64, hp float64) ecs.Entity {
	e := w.Create()
	ecs.Add(w, e, components.EnemyTag{})
	ecs.Add(w, e, components.Position{X: x, Y: y})
	ecs.Add(w, e, components.MoveSpeed{UnitsPerSec: 55})
	ecs.Add(w, e, components.Health{Current: hp, Max: hp})
	return e
}

func newTestSpawner(w *ecs.World, cfg *config.Config) *spawners.EntitySpawner {
	return spawners.NewEntitySpawner(w, cfg, nil)
}
