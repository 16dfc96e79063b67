package reflist

// Entry wraps a stored value together with its positional origin: either
// attached at an index within a List, or permanently detached once a
// deletion batch removed it. A detached entry's value stays readable; only
// its position is gone, and no entry is ever re-attached.
type Entry[T any] struct {
	value    T
	index    int
	detached bool
}

// NewEntry creates an entry attached at the given index.
func NewEntry[T any](value T, index int) Entry[T] {
	return Entry[T]{value: value, index: index}
}

// Order returns the entry's current position within its list.
// ok is false once the entry has been detached.
func (e *Entry[T]) Order() (index int, ok bool) {
	if e.detached {
		return 0, false
	}
	return e.index, true
}

// Value returns the wrapped value. Reading never changes the origin.
func (e *Entry[T]) Value() T {
	return e.value
}

func (e *Entry[T]) set(v T)        { e.value = v }
func (e *Entry[T]) setIndex(i int) { e.index = i }
func (e *Entry[T]) detach()        { e.detached = true }
