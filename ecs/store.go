package ecs

import (
	"errors"
	"fmt"
)

// ErrNotFound reports strict component access on an id that does not hold
// the component. Reaching it is a programming error: gameplay code checks
// existence (or iterates the store) before touching values.
var ErrNotFound = errors.New("ecs: component not found")

// AnyStore is the type-erased face of a component store. The world keeps
// one per registered type so entity destruction can sweep every store
// without knowing component types; call sites recover the concrete store
// with StoreFor.
type AnyStore interface {
	// Remove drops the component for id, reporting whether it was present.
	Remove(id uint32) bool
	// Has reports whether id holds the component.
	Has(id uint32) bool
	// Len returns the number of stored components.
	Len() int
}

// Store is a sparse-set keyed by entity id: a packed array of ids, a
// parallel packed array of values, and a sparse id index. Packed storage
// keeps iteration cache-friendly and every membership operation O(1).
//
// Iteration order is insertion order disturbed by swap-removal, and is
// not stable across removals. Entities and Values expose the live packed
// arrays; a pass that removes while scanning must follow the
// non-advancing cursor rule described on Remove.
type Store[T any] struct {
	dense  []uint32 // packed entity ids
	values []T      // packed values, parallel to dense
	sparse []uint32 // id -> dense index + 1, 0 means absent
}

// Len returns the number of entities holding the component.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Has reports whether id holds the component.
func (s *Store[T]) Has(id uint32) bool {
	return int(id) < len(s.sparse) && s.sparse[id] != 0
}

// Add sets the component for id, overwriting any existing value.
func (s *Store[T]) Add(id uint32, v T) {
	s.grow(id)
	if i := s.sparse[id]; i != 0 {
		s.values[i-1] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id] = uint32(len(s.dense))
}

// Get returns a copy of the component for id.
func (s *Store[T]) Get(id uint32) (T, bool) {
	if int(id) < len(s.sparse) {
		if i := s.sparse[id]; i != 0 {
			return s.values[i-1], true
		}
	}
	var zero T
	return zero, false
}

// Mut returns a pointer to the component for id. The pointer is only
// valid until the next Add to this store; hold dense indices across
// mutations, not pointers.
func (s *Store[T]) Mut(id uint32) (*T, bool) {
	if int(id) < len(s.sparse) {
		if i := s.sparse[id]; i != 0 {
			return &s.values[i-1], true
		}
	}
	return nil, false
}

// Must is the strict form of Mut. It panics with an error wrapping
// ErrNotFound when id does not hold the component.
func (s *Store[T]) Must(id uint32) *T {
	v, ok := s.Mut(id)
	if !ok {
		var zero T
		panic(fmt.Errorf("%w: %T for entity %d", ErrNotFound, zero, id))
	}
	return v
}

// Remove drops the component for id by swapping the last packed element
// into its slot, reporting whether it was present.
//
// The swap moves a not-yet-visited element into the vacated index, so a
// forward scan that removes the current element must re-test the same
// index instead of advancing. Growth never shifts packed elements;
// positional indices held by an in-flight pass stay valid.
func (s *Store[T]) Remove(id uint32) bool {
	if int(id) >= len(s.sparse) {
		return false
	}
	i := s.sparse[id]
	if i == 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[i-1] = moved
	s.values[i-1] = s.values[last]
	s.sparse[moved] = i
	s.sparse[id] = 0

	var zero T
	s.values[last] = zero // release anything the vacated slot referenced
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	return true
}

// Entities returns the live packed id array. Valid indices are
// [0, Len()); the slice header is refreshed by growth, so re-fetch it
// after adds rather than caching across mutations.
func (s *Store[T]) Entities() []uint32 {
	return s.dense
}

// Values returns the live packed value array, parallel to Entities.
func (s *Store[T]) Values() []T {
	return s.values
}

// grow doubles the sparse index until it covers id.
func (s *Store[T]) grow(id uint32) {
	if int(id) < len(s.sparse) {
		return
	}
	n := len(s.sparse)
	if n == 0 {
		n = 8
	}
	for n <= int(id) {
		n *= 2
	}
	grown := make([]uint32, n)
	copy(grown, s.sparse)
	s.sparse = grown
}
