package ecs

// Entity is a generational handle to a world entity. Ids are recycled
// after destruction, so an id alone does not name an entity over time;
// the generation disambiguates a live entity from every earlier owner
// of the same id. The zero Entity is never alive.
type Entity struct {
	ID  uint32
	Gen uint32
}
