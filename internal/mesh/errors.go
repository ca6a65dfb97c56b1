package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is matched by every out-of-range error from this package.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrVertexInUse is returned when removing a vertex that an index still references.
	ErrVertexInUse = errors.New("vertex referenced by index buffer")
)

// IndexError describes an out-of-range access.
type IndexError struct {
	What  string // "vertex", "index", "region", ...
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mesh: %s %d out of range [0,%d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

func checkRange(what string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{What: what, Index: i, Len: n}
	}
	return nil
}
