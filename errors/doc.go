// Package errors provides structured fault types for the reflist library.
//
// Faults are categorized by Phase (where the fault occurred) and Kind
// (fault category). The Error type carries the operation name, the
// offending index, and the list length at fault time.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseIndex, errors.KindOutOfBounds).
//		Op("CloneRef").
//		Index(5).
//		Length(3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseIndex, "CloneRef", 5, 3)
//	err := errors.AliasViolation("Write", "guard already outstanding")
//
// All errors implement the standard error interface and support errors.Is/As.
// Every fault in this library signals a caller programming error; none are
// transient or retryable.
package errors
