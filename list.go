package reflist

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/reflist/errors"
)

// List is an ordered collection of shared entry handles. Every live
// element's entry carries its current index, and batch deletions renumber
// all survivors in one pass, so outstanding handles always observe either
// the up-to-date position or permanent detachment.
//
// A List is exclusively owned by one caller at a time and is not safe for
// concurrent use.
type List[T any] struct {
	items []Handle[T]
	tx    *DeleteTransaction[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice creates a list seeded with a copy of each value in order.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Push appends a value at the end of the list and returns a handle to it.
// The returned handle's Order is the length before the push. The list
// retains its own clone, so the entry stays alive while the list does.
func (l *List[T]) Push(v T) Handle[T] {
	l.ensureNoTxn("Push")
	h := NewHandle(NewEntry(v, len(l.items)))
	l.items = append(l.items, h)
	return h.Clone()
}

// Get returns a clone of the handle at idx, or ok=false when idx is out of
// range. Never faults.
func (l *List[T]) Get(idx int) (Handle[T], bool) {
	if idx < 0 || idx >= len(l.items) {
		return Handle[T]{}, false
	}
	return l.items[idx].Clone(), true
}

// CloneRef returns a clone of the handle at idx. Faults when idx is out of
// range; use Get when the bounds are not already known to be valid.
func (l *List[T]) CloneRef(idx int) Handle[T] {
	if idx < 0 || idx >= len(l.items) {
		panic(errors.OutOfBounds(errors.PhaseIndex, "CloneRef", idx, len(l.items)))
	}
	return l.items[idx].Clone()
}

// GetRef returns the handle at idx without taking a new reference. The
// result is a borrow for transient use: the caller must not Release it.
// Faults when idx is out of range.
func (l *List[T]) GetRef(idx int) Handle[T] {
	if idx < 0 || idx >= len(l.items) {
		panic(errors.OutOfBounds(errors.PhaseIndex, "GetRef", idx, len(l.items)))
	}
	return l.items[idx]
}

// Len returns the number of live elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// All iterates over the live elements in index order. Handles are yielded
// as borrows (no reference is taken); Clone any handle kept past the loop.
// Each call starts a fresh traversal.
func (l *List[T]) All() iter.Seq2[int, Handle[T]] {
	return func(yield func(int, Handle[T]) bool) {
		for i, h := range l.items {
			if !yield(i, h) {
				return
			}
		}
	}
}

// BeginDelete opens a batch-deletion transaction. While the transaction is
// open the list is borrowed exclusively: Push, Delete, DeleteOne and
// BeginDelete fault until the transaction commits with Done or is
// abandoned with Discard.
func (l *List[T]) BeginDelete() *DeleteTransaction[T] {
	l.ensureNoTxn("BeginDelete")
	tx := &DeleteTransaction[T]{list: l}
	l.tx = tx
	return tx
}

// Delete removes the given indices in one atomic batch. Duplicates are
// tolerated and input order is irrelevant. Equivalent to a one-shot
// transaction.
func (l *List[T]) Delete(indices ...int) {
	l.ensureNoTxn("Delete")
	l.applyDelete("Delete", indices)
}

// DeleteOne removes a single index with the same atomic renumbering.
func (l *List[T]) DeleteOne(idx int) {
	l.ensureNoTxn("DeleteOne")
	l.applyDelete("DeleteOne", []int{idx})
}

func (l *List[T]) ensureNoTxn(op string) {
	if l.tx != nil {
		panic(errors.TxnConflict(op))
	}
}

// applyDelete is the deletion algorithm: normalize the batch, validate it
// in full before touching anything, detach the victims, then renumber the
// survivors in a single filter pass. A survivor's new index equals its old
// index minus the number of deleted indices below it.
func (l *List[T]) applyDelete(op string, batch []int) {
	if len(batch) == 0 {
		return
	}

	norm := slices.Clone(batch)
	slices.Sort(norm)
	norm = slices.Compact(norm)

	// Validate everything up front so a bad batch leaves no partial state.
	for _, idx := range norm {
		if idx < 0 || idx >= len(l.items) {
			panic(errors.OutOfBounds(errors.PhaseDelete, op, idx, len(l.items)))
		}
	}
	for _, h := range l.items {
		if h.c.borrow != 0 {
			panic(errors.AliasViolation(op, "guard outstanding on an entry during batch deletion"))
		}
	}

	deleted := make(map[int]struct{}, len(norm))
	for _, idx := range norm {
		deleted[idx] = struct{}{}
	}

	survivors := make([]Handle[T], 0, len(l.items)-len(norm))
	removed := 0
	for i, h := range l.items {
		if _, gone := deleted[i]; gone {
			m := h.Write()
			m.detach()
			m.Release()
			h.Release() // drop the list's retained clone
			removed++
			continue
		}
		m := h.Write()
		m.setIndex(i - removed)
		m.Release()
		survivors = append(survivors, h)
	}
	l.items = survivors

	Logger().Debug("applied delete batch",
		zap.String("op", op),
		zap.Ints("indices", norm),
		zap.Int("survivors", len(survivors)))
}
