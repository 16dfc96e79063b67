package reflist

import (
	"go.uber.org/zap"

	"github.com/wippyai/reflist/errors"
)

// DeleteTransaction accumulates a batch of indices to remove from a list
// and applies them atomically on Done. While open it holds an exclusive
// dynamic borrow of the list: no other mutation may interleave. Abandoning
// a transaction with Discard has no effect on the list's contents.
type DeleteTransaction[T any] struct {
	list    *List[T]
	indices []int
	done    bool
}

// Push queues one more index for removal and returns the transaction for
// chaining. Duplicates and arbitrary order are tolerated; the batch is
// normalized at commit time. Faults after Done or Discard.
func (tx *DeleteTransaction[T]) Push(idx int) *DeleteTransaction[T] {
	if tx.done {
		panic(errors.TxnFinished("Push"))
	}
	tx.indices = append(tx.indices, idx)
	return tx
}

// Done commits the transaction: the queued indices are removed and every
// surviving entry is renumbered in one pass. The transaction is consumed;
// further use faults. Commit is all-or-nothing: an invalid index faults
// before any state changes.
func (tx *DeleteTransaction[T]) Done() {
	if tx.done {
		panic(errors.TxnFinished("Done"))
	}
	tx.done = true
	tx.list.tx = nil
	tx.list.applyDelete("Done", tx.indices)
}

// Discard abandons the transaction, releasing the list with no effect on
// its contents. Faults if the transaction already finished.
func (tx *DeleteTransaction[T]) Discard() {
	if tx.done {
		panic(errors.TxnFinished("Discard"))
	}
	tx.done = true
	tx.list.tx = nil
	if len(tx.indices) > 0 {
		Logger().Warn("discarded delete transaction with queued indices",
			zap.Int("queued", len(tx.indices)))
	}
}
