package match

import (
	"fmt"

	"github.com/pkg/errors"
)

// ShapeMismatchError signals that a Matcher/Template operand is not the
// parse shape (or kind) the caller expected.
type ShapeMismatchError struct{ cause error }

func (e *ShapeMismatchError) Error() string { return e.cause.Error() }
func (e *ShapeMismatchError) Unwrap() error  { return e.cause }

func newShapeMismatch(format string, args ...interface{}) *ShapeMismatchError {
	return &ShapeMismatchError{cause: errors.Wrap(fmt.Errorf(format, args...), "shape mismatch")}
}

// TemplateHoleError signals too few, too many, or mistyped substitution
// values supplied to Template.Instantiate.
type TemplateHoleError struct{ cause error }

func (e *TemplateHoleError) Error() string { return e.cause.Error() }
func (e *TemplateHoleError) Unwrap() error  { return e.cause }

func newTemplateHoleError(format string, args ...interface{}) *TemplateHoleError {
	return &TemplateHoleError{cause: errors.Wrap(fmt.Errorf(format, args...), "template hole error")}
}
