package ast

import (
	"fmt"

	"github.com/pkg/errors"
)

// DetachmentViolationError is returned when an operation requires a node to
// have a parent (or to not have one) and that precondition does not hold.
type DetachmentViolationError struct {
	cause error
}

func (e *DetachmentViolationError) Error() string { return e.cause.Error() }
func (e *DetachmentViolationError) Unwrap() error  { return e.cause }

func newDetachmentViolation(format string, args ...interface{}) *DetachmentViolationError {
	return &DetachmentViolationError{cause: errors.Wrap(fmt.Errorf(format, args...), "detachment violation")}
}

// UniquenessViolationError is returned by GetOne/GetUnique index accessors
// when zero or more-than-one matches were found but exactly one (or at most
// one) was required.
type UniquenessViolationError struct {
	cause error
}

func (e *UniquenessViolationError) Error() string { return e.cause.Error() }
func (e *UniquenessViolationError) Unwrap() error  { return e.cause }

func newUniquenessViolation(format string, args ...interface{}) *UniquenessViolationError {
	return &UniquenessViolationError{cause: errors.Wrap(fmt.Errorf(format, args...), "uniqueness violation")}
}

// IndexInvariantError signals that an attached node's indices disagree with
// its structural position. This indicates a core bug, not a client error.
type IndexInvariantError struct {
	cause error
}

func (e *IndexInvariantError) Error() string { return e.cause.Error() }
func (e *IndexInvariantError) Unwrap() error  { return e.cause }

func newIndexInvariantBroken(format string, args ...interface{}) *IndexInvariantError {
	return &IndexInvariantError{cause: errors.Wrap(fmt.Errorf(format, args...), "index invariant broken")}
}
