package reflist

import (
	"github.com/wippyai/reflist/errors"
)

// cell is the shared storage behind every Handle clone. The borrow field
// implements the dynamic aliasing guard: 0 when free, the number of
// outstanding shared guards when positive, -1 while an exclusive guard is
// outstanding.
type cell[T any] struct {
	entry  Entry[T]
	refs   int
	borrow int
}

// Handle is a shareable, reference-counted view of one Entry. Clones alias
// the same entry: mutations through one clone are visible through all
// others, and detachment after a deletion batch is observed by every
// outstanding clone.
//
// Go has no destructors, so the count is managed by hand: Clone bumps it,
// Release drops it, and the entry's value is cleared once the count reaches
// zero. Handles are NOT safe for concurrent use; sharing here is aliasing
// within a single goroutine, not parallelism.
type Handle[T any] struct {
	c *cell[T]
}

// NewHandle wraps an entry in fresh shared storage with a reference count
// of one.
func NewHandle[T any](e Entry[T]) Handle[T] {
	return Handle[T]{c: &cell[T]{entry: e, refs: 1}}
}

// Clone returns a new handle aliasing the same entry. O(1).
func (h Handle[T]) Clone() Handle[T] {
	h.c.refs++
	return Handle[T]{c: h.c}
}

// Release drops one reference. When the last reference is gone the entry's
// value is cleared so the garbage collector can reclaim it. Releasing more
// references than exist faults.
func (h Handle[T]) Release() {
	if h.c.refs <= 0 {
		panic(errors.Released("Release", "reference count already zero"))
	}
	h.c.refs--
	if h.c.refs == 0 {
		var zero T
		h.c.entry.value = zero
	}
}

// Read acquires a shared guard on the entry. Any number of shared guards
// may be outstanding at once. Faults (panics with *errors.Error) while an
// exclusive guard is outstanding.
func (h Handle[T]) Read() *Ref[T] {
	r, err := h.TryRead()
	if err != nil {
		panic(err)
	}
	return r
}

// TryRead is the non-panicking variant of Read.
func (h Handle[T]) TryRead() (*Ref[T], *errors.Error) {
	if h.c.borrow < 0 {
		return nil, errors.AliasViolation("Read", "exclusive guard outstanding on this entry")
	}
	h.c.borrow++
	return &Ref[T]{c: h.c}, nil
}

// Write acquires an exclusive guard on the entry, the only way to mutate
// the wrapped value. Faults if any guard, shared or exclusive, is already
// outstanding. The check catches reentrant mutable aliasing within one
// goroutine; it is not a concurrency primitive.
func (h Handle[T]) Write() *RefMut[T] {
	m, err := h.TryWrite()
	if err != nil {
		panic(err)
	}
	return m
}

// TryWrite is the non-panicking variant of Write.
func (h Handle[T]) TryWrite() (*RefMut[T], *errors.Error) {
	if h.c.borrow != 0 {
		return nil, errors.AliasViolation("Write", "guard already outstanding on this entry")
	}
	h.c.borrow = -1
	return &RefMut[T]{c: h.c}, nil
}

// Order reports the entry's current position, reflecting the latest
// renumbering. ok is false once the entry is detached, which is a defined
// result, not a fault. Takes a transient shared borrow, so it faults while
// an exclusive guard is outstanding.
func (h Handle[T]) Order() (index int, ok bool) {
	if h.c.borrow < 0 {
		panic(errors.AliasViolation("Order", "exclusive guard outstanding on this entry"))
	}
	return h.c.entry.Order()
}

// LinkCount reports the number of live handle clones referencing this
// entry, minus one for the list's retained clone (or, once the list has
// dropped its clone, minus one for the receiver).
func (h Handle[T]) LinkCount() int {
	return h.c.refs - 1
}

// Ref is a shared read guard over an entry. Release it when done.
type Ref[T any] struct {
	c        *cell[T]
	released bool
}

// Value returns the guarded entry's value.
func (r *Ref[T]) Value() T {
	return r.c.entry.Value()
}

// Order returns the guarded entry's current position.
func (r *Ref[T]) Order() (index int, ok bool) {
	return r.c.entry.Order()
}

// Release ends the shared borrow. Releasing twice faults.
func (r *Ref[T]) Release() {
	if r.released {
		panic(errors.Released("Ref.Release", "guard already released"))
	}
	r.released = true
	r.c.borrow--
}

// RefMut is an exclusive write guard over an entry. Release it when done.
type RefMut[T any] struct {
	c        *cell[T]
	released bool
}

// Value returns the guarded entry's value.
func (m *RefMut[T]) Value() T {
	return m.c.entry.Value()
}

// Set replaces the guarded entry's value. The origin is untouched.
func (m *RefMut[T]) Set(v T) {
	m.c.entry.set(v)
}

// Order returns the guarded entry's current position.
func (m *RefMut[T]) Order() (index int, ok bool) {
	return m.c.entry.Order()
}

// setIndex and detach are reserved for the list's renumbering pass.
func (m *RefMut[T]) setIndex(i int) { m.c.entry.setIndex(i) }
func (m *RefMut[T]) detach()        { m.c.entry.detach() }

// Release ends the exclusive borrow. Releasing twice faults.
func (m *RefMut[T]) Release() {
	if m.released {
		panic(errors.Released("RefMut.Release", "guard already released"))
	}
	m.released = true
	m.c.borrow = 0
}
