package widget

import (
	"slices"

	"github.com/google/uuid"
)

// Entry is one registered value.
type Entry[T any] struct {
	ID    uuid.UUID
	Value T
}

// Registry is an ordered list of registered values. It is not safe for
// concurrent use; owners serialize access.
type Registry[T any] struct {
	entries []Entry[T]
}

// Add appends v and returns its ID.
func (r *Registry[T]) Add(v T) uuid.UUID {
	id := uuid.New()
	r.entries = append(r.entries, Entry[T]{ID: id, Value: v})
	return id
}

// Remove deletes the entry with the given ID and reports whether it existed.
func (r *Registry[T]) Remove(id uuid.UUID) bool {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = slices.Delete(r.entries, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int { return len(r.entries) }

// Entries returns a copy of the entries in registration order.
func (r *Registry[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(r.entries))
	copy(out, r.entries)
	return out
}

// Handle identifies a registration and removes it on demand.
type Handle struct {
	id     uuid.UUID
	remove func(uuid.UUID) bool
}

// NewHandle returns a handle that calls remove with id.
func NewHandle(id uuid.UUID, remove func(uuid.UUID) bool) Handle {
	return Handle{id: id, remove: remove}
}

// ID returns the registration ID.
func (h Handle) ID() uuid.UUID { return h.id }

// Remove deregisters the element. It reports false if the element was
// already removed.
func (h Handle) Remove() bool {
	if h.remove == nil {
		return false
	}
	return h.remove(h.id)
}
