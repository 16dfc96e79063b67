package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the fault occurred
type Phase string

const (
	PhaseAccess Phase = "access" // guard acquisition on a handle
	PhaseIndex  Phase = "index"  // positional lookup in a list
	PhaseDelete Phase = "delete" // batch deletion commit
	PhaseTxn    Phase = "txn"    // delete transaction lifecycle
)

// Kind categorizes the fault
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindAliasViolation Kind = "alias_violation"
	KindTxnConflict    Kind = "txn_conflict"
	KindTxnFinished    Kind = "txn_finished"
	KindReleased       Kind = "released"
)

// Error is the structured fault type used throughout the library.
// Every fault is a caller logic error (bad index, illegal aliasing,
// misused transaction), never a transient condition.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Index  int
	Length int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Index >= 0 {
		fmt.Fprintf(&b, ": index %d", e.Index)
		if e.Length >= 0 {
			fmt.Fprintf(&b, " (len %d)", e.Length)
		}
	}

	if e.Detail != "" {
		if e.Index >= 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Index:  -1,
			Length: -1,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Index sets the offending position
func (b *Builder) Index(idx int) *Builder {
	b.err.Index = idx
	return b
}

// Length sets the list length at fault time
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common fault patterns

// OutOfBounds creates a bounds fault for a positional lookup
func OutOfBounds(phase Phase, op string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Op:     op,
		Index:  index,
		Length: length,
		Detail: "index out of range",
	}
}

// AliasViolation creates an aliasing fault for illegal guard acquisition
func AliasViolation(op, detail string) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindAliasViolation,
		Op:     op,
		Index:  -1,
		Length: -1,
		Detail: detail,
	}
}

// TxnConflict creates a fault for mutating a list while a transaction is open
func TxnConflict(op string) *Error {
	return &Error{
		Phase:  PhaseTxn,
		Kind:   KindTxnConflict,
		Op:     op,
		Index:  -1,
		Length: -1,
		Detail: "a delete transaction is already open on this list",
	}
}

// TxnFinished creates a fault for using a committed or discarded transaction
func TxnFinished(op string) *Error {
	return &Error{
		Phase:  PhaseTxn,
		Kind:   KindTxnFinished,
		Op:     op,
		Index:  -1,
		Length: -1,
		Detail: "transaction already committed or discarded",
	}
}

// Released creates a fault for using a handle or guard after release
func Released(op, detail string) *Error {
	return &Error{
		Phase:  PhaseAccess,
		Kind:   KindReleased,
		Op:     op,
		Index:  -1,
		Length: -1,
		Detail: detail,
	}
}
