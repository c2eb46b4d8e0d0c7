package fragment

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index falls outside the stream.
	ErrOutOfRange = errors.New("fragment index out of range")

	// ErrStale is returned when a scan result is used after the stream it
	// was computed from has been mutated.
	ErrStale = errors.New("stale scan result")
)

// StructuralError reports fragment structure that a pass does not
// recognize. It aborts the current render.
type StructuralError struct {
	// Op is the operation that failed, e.g. "find table".
	Op string
	// Index is the approximate stream position of the problem.
	Index int
	// Detail describes the unrecognized structure.
	Detail string
	// Err is the sentinel classifying the failure.
	Err error
}

// NewStructuralError builds a StructuralError.
func NewStructuralError(op string, index int, err error, format string, args ...any) *StructuralError {
	return &StructuralError{
		Op:     op,
		Index:  index,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (e *StructuralError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v (near fragment %d)", e.Op, e.Err, e.Index)
	}
	return fmt.Sprintf("%s: %v (near fragment %d): %s", e.Op, e.Err, e.Index, e.Detail)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// IsStructural reports whether err is or wraps a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
