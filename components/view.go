package components

// ViewKind tells the presentation layer what kind of visual to build for
// an entity. The simulation never interprets it.
type ViewKind uint8

const (
	ViewPlayer ViewKind = iota
	ViewEnemy
	ViewProjectile
)

// ViewRef ties an entity to its presentation resource. Handle is opaque
// to the simulation; it is created when the entity gains a visual and
// released exactly once by the cleanup pass, through the view callback,
// before the entity id is recycled.
type ViewRef struct {
	Handle any
}
