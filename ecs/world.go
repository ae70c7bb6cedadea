package ecs

import "reflect"

// World owns every entity and component store and drives the system
// pipeline. It is built once by the bootstrap and passed by reference
// into systems; there is no package-level state. All access is
// single-threaded: system order is the only synchronization.
type World struct {
	gens  []uint32 // generation per id, starts at 1, bumped on destroy
	alive []bool   // live flag per id
	free  []uint32 // recycled ids, popped LIFO
	live  int

	stores  map[reflect.Type]AnyStore
	cascade []AnyStore // registration order, swept on destroy

	systems []System
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores: make(map[reflect.Type]AnyStore),
	}
}

// Create allocates an entity, reusing the most recently freed id when
// one is available.
func (w *World) Create() Entity {
	var id uint32
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id] = true
	} else {
		id = uint32(len(w.gens))
		w.gens = append(w.gens, 1)
		w.alive = append(w.alive, true)
	}
	w.live++
	return Entity{ID: id, Gen: w.gens[id]}
}

// Alive reports whether the handle still names a live entity. A handle
// kept across the entity's destruction stays dead forever, even after
// the id is recycled, because recycling bumps the generation.
func (w *World) Alive(e Entity) bool {
	return int(e.ID) < len(w.gens) && w.alive[e.ID] && w.gens[e.ID] == e.Gen
}

// AliveID is the id-only liveness check for ids taken from live store
// iteration, where the generation is already implied.
func (w *World) AliveID(id uint32) bool {
	return int(id) < len(w.alive) && w.alive[id]
}

// Destroy removes the entity from every store, invalidates all handles
// to it, and recycles the id. Destroying a stale handle is a no-op and
// returns false.
func (w *World) Destroy(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	w.destroy(e.ID)
	return true
}

// DestroyID is the id-only form of Destroy.
func (w *World) DestroyID(id uint32) bool {
	if !w.AliveID(id) {
		return false
	}
	w.destroy(id)
	return true
}

func (w *World) destroy(id uint32) {
	for _, s := range w.cascade {
		s.Remove(id)
	}
	w.alive[id] = false
	w.gens[id]++
	w.free = append(w.free, id)
	w.live--
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.live
}

// AddSystem appends a system to the pipeline. Registration order is
// execution order; the order is part of the gameplay contract.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Update runs one tick: every system once, in registration order.
func (w *World) Update(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// StoreFor returns the world's store for component type T, creating and
// registering it on first use. The concrete store type is recovered here
// from the type-erased registry, so call sites keep full static typing.
func StoreFor[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := &Store[T]{}
	w.stores[t] = s
	w.cascade = append(w.cascade, s)
	return s
}

// Add sets component T on the entity. Stale handles are ignored.
func Add[T any](w *World, e Entity, v T) bool {
	if !w.Alive(e) {
		return false
	}
	StoreFor[T](w).Add(e.ID, v)
	return true
}

// Get returns a copy of component T from the entity. It fails on stale
// handles and on live entities lacking the component.
func Get[T any](w *World, e Entity) (T, bool) {
	if !w.Alive(e) {
		var zero T
		return zero, false
	}
	return StoreFor[T](w).Get(e.ID)
}

// Has reports whether the entity is alive and holds component T.
func Has[T any](w *World, e Entity) bool {
	return w.Alive(e) && StoreFor[T](w).Has(e.ID)
}

// Remove drops component T from the entity. Stale handles are ignored.
func Remove[T any](w *World, e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	return StoreFor[T](w).Remove(e.ID)
}
