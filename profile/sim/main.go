// Profiling:
// go build ./profile/sim
// go tool pprof -http=":8000" -nodefraction=0.001 ./sim cpu.pprof

package main

import (
	"math"

	"github.com/pkg/profile"

	"github.com/luyipei/MStory/config"
	"github.com/luyipei/MStory/ecs"
	"github.com/luyipei/MStory/systems"
)

// circler drives the player in a slow loop so the enemy crowd keeps
// reshaping instead of settling into a ball around a fixed point.
type circler struct {
	tick int
}

func (c *circler) Direction() (float64, float64) {
	c.tick++
	a := float64(c.tick) * 2 * math.Pi / 600
	return math.Cos(a), math.Sin(a)
}

func main() {
	rounds := 10
	ticks := 20000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks)
	p.Stop()
}

func run(rounds, ticks int) {
	cfg := config.Default()
	cfg.Player.MaxHealth = 1e12 // the run must not end while sampling
	cfg.Spawner.BaseRate = 40
	cfg.Spawner.RatePerMin = 10
	cfg.Spawner.MaxAlive = 2000
	dt := 1.0 / float64(cfg.Sim.TicksPerSecond)

	for range rounds {
		w := ecs.NewWorld()
		deps := systems.Deps{Config: cfg, Input: &circler{}}
		pipe := systems.RegisterAll(w, deps)
		systems.SeedWorld(w, deps, pipe)
		for range ticks {
			w.Update(dt)
		}
	}
}
