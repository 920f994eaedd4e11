package glslparse

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports malformed source. It is returned (never panicked)
// whenever throwParseErrors behavior is requested by the caller; callers
// that swallow errors get the best-effort partial AST instead.
type ParseError struct {
	cause error
	Line  int
	Col   int
}

func (e *ParseError) Error() string { return e.cause.Error() }
func (e *ParseError) Unwrap() error  { return e.cause }

func newParseError(line, col int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		cause: errors.Wrapf(fmt.Errorf(format, args...), "parse error at %d:%d", line, col),
		Line:  line, Col: col,
	}
}
