package ecs

// System is one stage of the update pipeline. Systems run once per tick,
// in registration order, and mutate world state directly.
type System interface {
	Update(world *World, dt float64)
}
