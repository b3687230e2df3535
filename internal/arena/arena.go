// Package arena provides the bump allocator backing every long-lived syntax
// node in a compilation (§4.D); symbols are not allocated here. Ownership is
// modeled as a stable 1-based index into a pinned slice, never as a
// shared-ownership pointer: the arena's lifetime dominates all, and an index
// stays valid for as long as the Arena itself lives.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// ID is a 1-based handle into an Arena. The zero value means "no value" and
// is never returned by Alloc.
type ID uint32

// Arena is a generic bump allocator. Values are never removed or mutated
// through the arena once published; callers that need mutable scratch state
// should build it in a Pool (see pool.go) and copy the finished result in.
type Arena[T any] struct {
	data []T
}

// New creates an Arena with an initial capacity hint; zero is allowed.
func New[T any](capHint int) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Alloc appends value and returns its stable ID.
func (a *Arena[T]) Alloc(value T) ID {
	a.data = append(a.data, value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena: overflow allocating element %d: %w", len(a.data), err))
	}
	return ID(n)
}

// Get dereferences id. The zero ID panics, matching the convention that
// code holding a zero ID should have already checked it against Valid.
func (a *Arena[T]) Get(id ID) *T {
	if id == 0 {
		panic("arena: dereferenced the zero ID")
	}
	return &a.data[id-1]
}

// Valid reports whether id was produced by this Arena and is non-zero.
func (a *Arena[T]) Valid(id ID) bool {
	return id != 0 && int(id) <= len(a.data)
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() int {
	return len(a.data)
}

// All returns a read-only view over every allocated element, in allocation
// order. Callers must not mutate the returned slice.
func (a *Arena[T]) All() []T {
	return a.data
}
