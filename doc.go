// Package reflist provides an ordered in-memory container whose elements
// are held through stable, shareable handles that keep track of their own
// position as the collection shrinks.
//
// # Main Types
//
//   - List: the ordered container; push-only growth, batch deletion
//   - Handle: a reference-counted, aliasable view of one entry
//   - Entry: a stored value plus its positional origin
//   - DeleteTransaction: accumulates indices and removes them atomically
//
// # Position Tracking
//
// Every entry carries its current index. A committed deletion batch
// detaches the removed entries and renumbers every survivor in a single
// pass: a survivor's new index is its old index minus the number of removed
// indices below it. All handle clones observe the change immediately. A
// detached entry reports Order ok=false forever while its value stays
// readable; no entry is ever re-attached.
//
// # Aliasing Guard
//
// Handle.Read and Handle.Write return guards enforcing a dynamic
// no-reentrant-mutable-alias rule: any number of shared guards, or exactly
// one exclusive guard. Violations are caller logic errors and panic with a
// *errors.Error from this module's errors package; TryRead and TryWrite
// return the error instead. The guard catches single-goroutine aliasing
// bugs only.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Sharing handles is
// aliasing within one goroutine of control, not parallelism.
//
// # Example
//
//	list := reflist.New[string]()
//	a := list.Push("a")
//	b := list.Push("b")
//	c := list.Push("c")
//
//	list.BeginDelete().Push(1).Done()
//
//	a.Order() // 0, true
//	c.Order() // 1, true
//	b.Order() // 0, false: detached
package reflist
